package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/pkg/sessiontoken"
	"spendtrack/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// RequireSession verifies the signed session cookie and puts the principal on
// the request context. The store is never consulted here; a missing or
// unverifiable cookie is a 401 outright.
func RequireSession(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := sessiontoken.Parse(secret, raw)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// SessionUserID returns the authenticated user id set by RequireSession.
func SessionUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
