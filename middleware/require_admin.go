package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles allows only the listed roles through. Must run after
// AuthMiddleware; applied once per route group so no handler can forget
// its own check.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing user role"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cannot resolve user role"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this resource"})
		c.Abort()
	}
}
