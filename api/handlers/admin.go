package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AdminListPosts возвращает все посты с авторами - административный обзор.
func AdminListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": Store.GetAllPostsWithAuthors()})
}

// AdminToggleBan переключает блокировку пользователя. Повторный вызов
// возвращает исходное состояние.
func AdminToggleBan(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, ok := Store.ToggleBan(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Флаг блокировки вшит в закешированные ленты - сбрасываем их
	invalidateFeeds(c.Request.Context(), userID, "profile")

	c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "banned": user.Banned})
}

// AdminDeleteUser удаляет пользователя со всем его контентом и связями.
func AdminDeleteUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	friends := Store.GetFriends(userID)
	if !Store.DeleteUser(userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ids := make([]int64, 0, len(friends)+1)
	ids = append(ids, userID)
	for _, f := range friends {
		ids = append(ids, f.ID)
	}
	FeedCache.Invalidate(c.Request.Context(), ids...)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// AdminDeletePost удаляет любой пост, независимо от автора.
func AdminDeletePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if !Store.DeletePost(postID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	invalidateFeeds(c.Request.Context(), post.UserID, "post")
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
