package auth

import (
	"fmt"

	"train-console-backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the identity provider asserts about a caller. The user id
// is the token subject; email and name are optional profile claims.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Claims is the expected shape of identity-provider tokens
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates identity-provider bearer tokens
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(cfg *config.Config) *TokenVerifier {
	return &TokenVerifier{secret: []byte(cfg.JWTSecret)}
}

// VerifyToken validates and parses a bearer token into an Identity
func (v *TokenVerifier) VerifyToken(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
