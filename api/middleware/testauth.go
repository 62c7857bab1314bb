package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TestAuthMiddleware - аутентификация по заголовку X-User-ID для тестов,
// без Redis и токенов. В боевых маршрутах не используется.
func TestAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDHeader := c.GetHeader("X-User-ID")
		if userIDHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required: provide X-User-ID header"})
			c.Abort()
			return
		}
		userID, err := strconv.ParseInt(userIDHeader, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid X-User-ID format"})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
