// auth.go - JWT authentication middleware
// This file implements authentication and authorization for the API
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Store user ID in context for handlers
//
// Authorization Flow (Admin):
// 1. Run authentication middleware first
// 2. Load the user behind the token
// 3. Allow access only to the admin role

package middleware // Declares the package name

import ( // Import required packages
	"go-traits-backend/config"   // Project config (for JWT secret)
	"go-traits-backend/database" // Database connection (for user queries)
	"net/http"                   // HTTP status codes (401, 403, etc.)
	"strings"                    // String operations (for header parsing)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// UserIDKey is the gin context key holding the authenticated user's ID.
const UserIDKey = "user_id"

// AuthMiddleware - Returns a Gin middleware function for JWT authentication
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		if !authenticate(c) {
			return
		}
		c.Next() // Continue to next handler (authentication successful)
	}
}

// authenticate validates the bearer token and stores the user ID. It aborts
// the request and returns false on failure.
func authenticate(c *gin.Context) bool {
	header := c.GetHeader("Authorization")                     // Get Authorization header
	if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"}) // Return 401 Unauthorized
		return false
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
	cfg := config.Load()                              // Load config for JWT secret
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil // Provide secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid { // If token is invalid or expired
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"}) // Return 401 Unauthorized
		return false
	}

	// JWT stores numbers as float64, the database uses uint
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return false
	}
	userID, ok := claims[UserIDKey].(float64)
	if !ok || userID < 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID format"})
		return false
	}
	c.Set(UserIDKey, uint(userID)) // Store user ID in Gin context
	return true
}

// CurrentUserID returns the ID stored by AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AdminMiddleware - Returns a Gin middleware function for admin access control
// It authenticates like AuthMiddleware, then checks the user's role in the database.
func AdminMiddleware() gin.HandlerFunc { // Returns a Gin middleware function for admin access
	return func(c *gin.Context) { // Middleware handler (runs before admin endpoints)
		if !authenticate(c) {
			return // Exit early - authentication failed
		}

		userID, ok := CurrentUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in token"})
			return
		}

		user, err := database.FindUser(database.DB, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		// Only users with role="admin" can access admin endpoints
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}
