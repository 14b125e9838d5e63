// password.go - Forgotten password and password reset forms

package handlers

import (
	"errors"
	"net/http"
	"time"

	"go-traits-backend/database"
	"go-traits-backend/forms"
	"go-traits-backend/mqtt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// passwordEvent is published for the mailer that delivers reminders and
// reset links.
type passwordEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
}

// ForgottenPassword - Handles both actions of the forgotten password form
// The response is the same whether or not the address is known.
func ForgottenPassword(c *gin.Context) {
	sub := validate(c, forms.ForgottenPassword)
	if sub == nil {
		return
	}

	var topic string
	switch sub.Action() {
	case forms.FieldSubmit:
		topic = mqtt.TopicPasswordRemind
	case forms.FieldForgottenPassword:
		topic = mqtt.TopicPasswordReset
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no action selected"})
		return
	}

	email := sub.String(forms.FieldEmail)
	user, err := database.FindUserByEmail(database.DB, email)
	switch {
	case errors.Is(err, database.ErrNotFound):
	case err != nil:
		respondError(c, err)
		return
	default:
		event := passwordEvent{UserID: user.ID, Email: email}
		if topic == mqtt.TopicPasswordReset {
			reset, err := database.CreatePasswordReset(database.DB, user.ID, ResetTokenTTL) // Stored so ResetPassword can redeem it
			if err != nil {
				respondError(c, err)
				return
			}
			event.Token = reset.Token
		}
		if err := mqtt.Publish(topic, event); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the address is registered, a message is on its way"})
}

// ResetPassword - Redeems a reset token and sets the new password
func ResetPassword(c *gin.Context) {
	sub := validate(c, forms.PasswordReset)
	if sub == nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(sub.String(forms.FieldPassword)), bcrypt.DefaultCost) // Hash new password
	if err != nil {
		respondError(c, err)
		return
	}
	if err := database.ResetPassword(database.DB, sub.String(forms.FieldToken), string(hash)); err != nil {
		respondError(c, err) // Unknown, used or expired token → 400
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
