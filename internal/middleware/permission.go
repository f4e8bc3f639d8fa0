package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kubaGzk/eaty-backend/internal/authz"
)

// RequirePermission gates a route on the policy table. AuthMiddleware
// must have run first so the role is on the context.
func RequirePermission(policy authz.Policy, action authz.Action, resource authz.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(403, gin.H{"error": "role missing"})
			return
		}

		role, ok := roleVal.(string)
		if !ok || !policy.Can(role, action, resource) {
			c.AbortWithStatusJSON(403, gin.H{"error": "Not authorized to perform this action."})
			return
		}

		c.Next()
	}
}
