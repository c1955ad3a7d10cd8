package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"allride/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuthMiddleware guards the /api/admin surface with a static bearer
// token from configuration. An empty configured token disables the guard,
// which keeps development setups working.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminToken
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		presented := strings.TrimPrefix(header, "Bearer ")
		if header == presented || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			zap.L().Warn("Admin auth rejected", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
