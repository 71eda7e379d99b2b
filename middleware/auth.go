package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"omnispa/utils"
)

const (
	ContextSubjectKey = "authSubject"
	ContextRoleKey    = "authRole"
)

// RequireAuth validates the bearer token and checks it against the Redis
// session allow-list, then admits only the listed roles. Admins pass every
// gate.
func RequireAuth(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing or malformed authorization header", nil)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		subject, role, err := utils.ExtractSubjectAndRole(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		ok, err := utils.VerifySessionToken(utils.GetAuthCacheClient(), role, subject, token)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to verify session", nil)
			c.Abort()
			return
		}
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "session expired or revoked", nil)
			c.Abort()
			return
		}

		if len(allowed) > 0 && !allowed[role] && role != "admin" {
			utils.JSONError(c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, subject)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}
