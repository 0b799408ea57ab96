package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides bearer-token authentication middleware
type AuthMiddleware struct {
	verifier *TokenVerifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier *TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth validates bearer tokens and sets the caller identity on the
// request context. Unauthenticated requests never reach org resolution.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		identity, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", identity.UserID)
		c.Set("email", identity.Email)
		c.Set("name", identity.Name)
		c.Set("identity", identity)

		c.Next()
	}
}

// GetIdentity extracts the verified caller identity from the request context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get("identity")
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok
}
