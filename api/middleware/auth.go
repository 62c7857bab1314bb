package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socialnet/services"
	"socialnet/store"
)

// AuthMiddleware разрешает токен сессии из Authorization: Bearer <token>,
// подгружает пользователя и кладёт user_id и user в контекст запроса.
// Заблокированные пользователи не проходят.
func AuthMiddleware(st store.SocialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := services.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session backend unavailable"})
			c.Abort()
			return
		}
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, ok := st.GetUser(userID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			c.Abort()
			return
		}
		if user.Banned {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is banned"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user", user)
		c.Next()
	}
}

// AdminMiddleware пускает только пользователей с административной
// способностью. Вешается после AuthMiddleware.
func AdminMiddleware(st store.SocialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		user, ok := st.GetUser(userID)
		if !ok || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
