package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateStoryRequest struct {
	Media string `json:"media" binding:"required"`
}

// CreateStory публикует историю. Живёт 24 часа с момента создания.
func CreateStory(c *gin.Context) {
	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	story := Store.CreateStory(c.GetInt64("user_id"), req.Media)
	c.JSON(http.StatusCreated, story)
}

// GetStories возвращает непросроченные истории друзей и самого пользователя.
func GetStories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stories": Store.GetStories(c.GetInt64("user_id"))})
}
