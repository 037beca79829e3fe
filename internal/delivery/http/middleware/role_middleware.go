package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talent-portal-backend/internal/delivery/http/response"
	"talent-portal-backend/internal/domain"
)

// RequireRole rejects requests whose authenticated user does not hold one
// of the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "Access denied", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
