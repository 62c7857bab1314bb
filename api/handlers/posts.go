package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialnet/models"
	"socialnet/services"
)

type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Media   string `json:"media"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost создаёт пост и рассылает событие ленты друзьям автора.
func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetInt64("user_id")
	post := Store.CreatePost(userID, req.Content, req.Media)

	invalidateFeeds(c.Request.Context(), userID, "post")
	go fanoutPost(context.Background(), *post)

	c.JSON(http.StatusCreated, post)
}

// fanoutPost публикует событие о новом посте для автора и каждого его друга.
// При недоступном брокере опускаемся до прямого пуша в WebSocket.
func fanoutPost(ctx context.Context, post models.Post) {
	author, ok := Store.GetUser(post.UserID)
	if !ok {
		return
	}

	recipients := []int64{post.UserID}
	for _, friend := range Store.GetFriends(post.UserID) {
		recipients = append(recipients, friend.ID)
	}

	for _, userID := range recipients {
		event := services.FeedEvent{
			UserID:     userID,
			PostID:     post.ID,
			AuthorID:   post.UserID,
			AuthorName: author.Name,
			Content:    post.Content,
			Media:      post.Media,
			CreatedAt:  post.CreatedAt,
		}
		if err := services.PublishFeedEvent(ctx, event); err != nil {
			services.PushFeedEvent(event)
		}
	}
}

// GetPost возвращает один пост с обогащением (автор, лайки, комментарии).
func GetPost(c *gin.Context) {
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

	likes := Store.GetLikesByPost(postID)
	comments := Store.GetCommentsByPost(postID)
	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"likes":    len(likes),
		"comments": comments,
	})
}

// UpdatePost заменяет текст поста. Разрешено только автору.
func UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetInt64("user_id")
	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	updated, ok := Store.UpdatePost(postID, req.Content)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	invalidateFeeds(c.Request.Context(), userID, "post")
	c.JSON(http.StatusOK, updated)
}

// DeletePost удаляет пост вместе с лайками и комментариями.
// Разрешено автору; административное удаление - в admin.go.
func DeletePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID := c.GetInt64("user_id")
	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	if !Store.DeletePost(postID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	invalidateFeeds(c.Request.Context(), post.UserID, "post")
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// LikePost ставит лайк. Дубликат - ошибка вызывающего, проверяем до вставки;
// гонку двух одновременных лайков гасит само хранилище.
func LikePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID := c.GetInt64("user_id")
	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if _, exists := Store.GetLike(userID, postID); exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Already liked"})
		return
	}

	like, ok := Store.CreateLike(userID, postID)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Already liked"})
		return
	}

	invalidateFeeds(c.Request.Context(), post.UserID, "like")
	if post.UserID != userID {
		if err := services.SendWSNotify(post.UserID, services.NotifyPostLiked, userID, postID); err != nil {
			log.Printf("ERROR: failed to notify user %d: %v", post.UserID, err)
		}
	}

	c.JSON(http.StatusCreated, like)
}

// UnlikePost снимает лайк. Отсутствие лайка не ошибка.
func UnlikePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID := c.GetInt64("user_id")
	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	Store.RemoveLike(userID, postID)
	invalidateFeeds(c.Request.Context(), post.UserID, "like")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CommentPost добавляет комментарий к посту.
func CommentPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetInt64("user_id")
	post, ok := Store.GetPost(postID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := Store.CreateComment(userID, postID, req.Content)

	invalidateFeeds(c.Request.Context(), post.UserID, "comment")
	if post.UserID != userID {
		if err := services.SendWSNotify(post.UserID, services.NotifyPostCommented, userID, postID); err != nil {
			log.Printf("ERROR: failed to notify user %d: %v", post.UserID, err)
		}
	}

	c.JSON(http.StatusCreated, comment)
}

// GetPostComments возвращает комментарии поста от старых к новым.
func GetPostComments(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	if _, ok := Store.GetPost(postID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": Store.GetCommentsByPost(postID)})
}

// SavePost добавляет пост в закладки. Повторное сохранение - no-op.
func SavePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	if _, ok := Store.GetPost(postID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	Store.SavePost(c.GetInt64("user_id"), postID)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// UnsavePost убирает пост из закладок.
func UnsavePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}
	Store.UnsavePost(c.GetInt64("user_id"), postID)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSavedPosts возвращает закладки пользователя в порядке добавления.
func GetSavedPosts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": Store.GetSavedPosts(c.GetInt64("user_id"))})
}

// GetFeed возвращает ленту текущего пользователя: из кеша или пересчётом.
func GetFeed(c *gin.Context) {
	userID := c.GetInt64("user_id")
	c.JSON(http.StatusOK, gin.H{"posts": FeedCache.GetFeed(c.Request.Context(), userID)})
}
