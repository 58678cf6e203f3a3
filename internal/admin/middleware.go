package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет админ-ключ в заголовке X-Admin-Key
func AuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
