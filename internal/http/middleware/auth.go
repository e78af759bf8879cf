// README: Session-token auth middleware.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/types"
)

// UserIDKey is the gin context key under which the authenticated user's id is stored.
const UserIDKey = "user_id"

// SessionResolver maps a session token to the authenticated user's id.
// The user service is the production implementation.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (types.ID, error)
}

// Auth resolves the session token from the Authorization header (Bearer) or
// the "session" cookie and stores the user id in the request context.
// Requests without a valid session pass through unauthenticated; handlers
// that need an identity use Require.
func Auth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("session"); err == nil {
				token = cookie
			}
		}
		if token != "" {
			if uid, err := resolver.Resolve(c.Request.Context(), token); err == nil {
				c.Set(UserIDKey, uid)
			}
		}
		c.Next()
	}
}

// Require aborts with 401 when no authenticated user is present.
func Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserIDKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or "" when unauthenticated.
func UserID(c *gin.Context) types.ID {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(types.ID); ok {
			return id
		}
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
