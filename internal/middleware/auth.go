package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kubaGzk/eaty-backend/internal/auth"
)

// AuthMiddleware resolves the bearer token into a caller identity and
// attaches it to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		identity, err := auth.ValidateToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Msg("rejected bearer token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("userEmail", identity.Email)
		c.Set("userRole", identity.Role)
		c.Next()
	}
}
