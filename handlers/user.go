// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"go-traits-backend/database"   // Database connection
	"go-traits-backend/forms"      // Form declarations
	"go-traits-backend/middleware" // Token issuing
	"go-traits-backend/models"     // User model
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

func Register(c *gin.Context) { // Handler for user registration
	sub := validate(c, forms.Registration) // Validate the registration form
	if sub == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(sub.String(forms.FieldPassword)), bcrypt.DefaultCost) // Hash password
	if err != nil {
		respondError(c, err)
		return
	}
	user := models.User{ // Create user struct
		Username: sub.String(forms.FieldUsername),
		Name:     sub.String(forms.FieldName),
		Surname:  sub.String(forms.FieldSurname),
		Email:    sub.String(forms.FieldEmail),
		Password: string(hash),
	}
	if err := database.CreateUser(database.DB, &user); err != nil { // Save user to DB
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registration successful", "id": user.ID}) // Success response
}

func Login(c *gin.Context) { // Handler for user login
	sub := validate(c, forms.Login)
	if sub == nil {
		return
	}
	user, err := database.FindUserByUsername(database.DB, sub.String(forms.FieldUsername)) // Find user by username
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"}) // Return error if not found
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(sub.String(forms.FieldPassword))); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"}) // Return error if wrong
		return
	}

	ttl := middleware.TokenTTL
	if sub.Bool(forms.FieldRememberMe) {
		ttl = middleware.RememberTokenTTL
	}
	tokenString, err := middleware.IssueToken(user.ID, ttl) // Sign token
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString}) // Return token
}
