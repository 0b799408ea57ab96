package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"train-console-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(NewTokenVerifier(&config.Config{JWTSecret: testSecret}))

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, identity)
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireAuthValidToken(t *testing.T) {
	router := setupAuthRouter(t)
	tokenString := signToken(t, Claims{
		Email: "jane@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	recorder := doRequest(router, "Bearer "+tokenString)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user-123")
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := setupAuthRouter(t)

	recorder := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router := setupAuthRouter(t)

	recorder := doRequest(router, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := setupAuthRouter(t)

	recorder := doRequest(router, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetIdentityAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	identity, ok := GetIdentity(c)

	assert.False(t, ok)
	assert.Nil(t, identity)
}
