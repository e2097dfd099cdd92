package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maazarain31-cmd/Heritage-Mist-Perfumery/models"
)

const IdentityContextKey = "identity"

type ITokenValidator interface {
	ValidateToken(tokenStr string) (models.Identity, error)
}

// RequireAuth resolves the bearer token into an identity and stores it in the
// request context. A missing, malformed or expired token is the same failure:
// the caller is simply not logged in.
func RequireAuth(tokens ITokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		identity, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := GetIdentity(c)
		if err != nil || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as an admin"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity set by RequireAuth.
func GetIdentity(c *gin.Context) (models.Identity, error) {
	if val, ok := c.Get(IdentityContextKey); ok {
		if identity, ok := val.(models.Identity); ok {
			return identity, nil
		}
	}
	return models.Identity{}, errors.New("identity not found in context")
}

// bearerToken extracts the token from the Authorization header. Only the
// Bearer scheme is accepted.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
