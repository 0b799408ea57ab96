package auth

import (
	"testing"
	"time"

	"train-console-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-auth-tests"

func newTestVerifier() *TokenVerifier {
	return NewTokenVerifier(&config.Config{JWTSecret: testSecret})
}

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyTokenValid(t *testing.T) {
	verifier := newTestVerifier()
	tokenString := signToken(t, Claims{
		Email: "jane@example.com",
		Name:  "Jane Doe",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	identity, err := verifier.VerifyToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "jane@example.com", identity.Email)
	assert.Equal(t, "Jane Doe", identity.Name)
}

func TestVerifyTokenExpired(t *testing.T) {
	verifier := newTestVerifier()
	tokenString := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	identity, err := verifier.VerifyToken(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	verifier := newTestVerifier()
	tokenString := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "some-other-secret")

	identity, err := verifier.VerifyToken(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestVerifyTokenMissingSubject(t *testing.T) {
	verifier := newTestVerifier()
	tokenString := signToken(t, Claims{
		Email: "nobody@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	identity, err := verifier.VerifyToken(tokenString)

	assert.Nil(t, identity)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	verifier := newTestVerifier()

	identity, err := verifier.VerifyToken("not-a-jwt")

	assert.Nil(t, identity)
	assert.Error(t, err)
}
