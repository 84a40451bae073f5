package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reservas-backend/services"
	"reservas-backend/utils"
)

// Context keys set by RequireAdmin for downstream handlers.
const (
	ContextAdminID      = "admin_id"
	ContextSessionToken = "session_token"
)

// RequireAdmin guards management routes. The request must carry a session
// token from a previous login; otherwise the caller gets 401 and should go
// back to the login flow.
func RequireAdmin(admins *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, services.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		adminID, ok := admins.ResolveSession(c.Request.Context(), token)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, services.ErrUnauthorized.Error())
			c.Abort()
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
