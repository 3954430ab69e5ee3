package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	adapterIdentity "github.com/solanera/ventaflow/internal/adapter/identity"
	pkgAuth "github.com/solanera/ventaflow/internal/pkg/auth"
)

const (
	// IdentityContextKey is a gin context key for the resolved acting identity.
	IdentityContextKey = "identity"
	authCookieName     = "ventaflow_token"
)

// IdentityResolver resolves an auth token into an acting identity.
type IdentityResolver interface {
	ResolveIdentity(token string) (adapterIdentity.Identity, error)
}

// IdentityRequired ensures the caller's identity is resolved before the
// handler runs.
func IdentityRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ident, err := resolver.ResolveIdentity(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, ident)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
