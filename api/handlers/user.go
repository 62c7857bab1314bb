package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"socialnet/models"
	"socialnet/services"
)

// NAME_CHANGE_COOLDOWN - минимальный интервал между сменами отображаемого
// имени. Правило живёт здесь, в вызывающем слое: хранилище просто сохраняет
// переданный timestamp.
const NAME_CHANGE_COOLDOWN = 30 * 24 * time.Hour

// UserSearch ищет пользователей по подстроке имени или username.
func UserSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": Store.SearchUsers(query)})
}

// UserGet возвращает профиль вместе с его постами.
func UserGet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, ok := Store.GetUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"posts": Store.GetPostsByUser(id),
	})
}

// UserUpdate обновляет профиль текущего пользователя. Отсутствующие в JSON
// поля не трогаются. Смена имени ограничена кулдауном.
func UserUpdate(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	// Username и пароль через этот эндпоинт не меняются
	patch.Username = nil
	patch.Password = nil

	current, ok := Store.GetUser(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if patch.Name != nil && *patch.Name != current.Name {
		if current.LastNameChange != nil && time.Since(*current.LastNameChange) < NAME_CHANGE_COOLDOWN {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Name was changed recently, try later"})
			return
		}
		now := time.Now()
		patch.LastNameChange = &now
	} else {
		patch.Name = nil
	}

	user, ok := Store.UpdateUser(userID, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Профиль автора вшит в закешированные ленты друзей - сбрасываем их
	invalidateFeeds(c.Request.Context(), userID, "profile")

	c.JSON(http.StatusOK, user)
}

// UserDelete удаляет аккаунт текущего пользователя со всем его контентом.
func UserDelete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	friends := Store.GetFriends(userID)
	if !Store.DeleteUser(userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Посты пользователя пропали из лент его бывших друзей
	ids := make([]int64, 0, len(friends)+1)
	ids = append(ids, userID)
	for _, f := range friends {
		ids = append(ids, f.ID)
	}
	FeedCache.Invalidate(c.Request.Context(), ids...)

	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		_ = services.DeleteSession(c.Request.Context(), token)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
