// auth_test.go - Tests for the JWT and admin middleware

package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go-traits-backend/config"
	"go-traits-backend/database"
	"go-traits-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, database.Connect(filepath.Join(t.TempDir(), "test.db"), models.NewSchema()))
	t.Cleanup(func() { _ = database.Close(database.DB) })
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)

	token, err := IssueToken(7, TokenTTL)
	require.NoError(t, err)
	w := get(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		UserIDKey: 1,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.Load().JWTSecret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", signed).Code)
}

func TestAdminMiddleware(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	admin := models.User{Username: "admin@test.com", Password: "x", Role: "admin"}
	regular := models.User{Username: "user@test.com", Password: "x"}
	require.NoError(t, database.CreateUser(database.DB, &admin))
	require.NoError(t, database.CreateUser(database.DB, &regular))

	adminToken, err := IssueToken(admin.ID, TokenTTL)
	require.NoError(t, err)
	userToken, err := IssueToken(regular.ID, TokenTTL)
	require.NoError(t, err)
	ghostToken, err := IssueToken(999, TokenTTL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, get(r, "/admin", adminToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", userToken).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", ghostToken).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", "").Code)
}
