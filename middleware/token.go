// token.go - JWT generation

package middleware

import (
	"time"

	"go-traits-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes for a normal login and a "remember me" login.
const (
	TokenTTL         = 72 * time.Hour
	RememberTokenTTL = 30 * 24 * time.Hour
)

// IssueToken signs a token for userID, valid for ttl, with the configured
// secret.
func IssueToken(userID uint, ttl time.Duration) (string, error) {
	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		UserIDKey: userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}
