package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialnet/models"
	"socialnet/services"
)

type FriendRequestBody struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// SendFriendRequest создаёт заявку в друзья. Самозаявка и дубликат (в любом
// направлении) отсекаются здесь, до обращения к хранилищу.
func SendFriendRequest(c *gin.Context) {
	var req FriendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID := c.GetInt64("user_id")
	if req.UserID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as friend"})
		return
	}
	if _, ok := Store.GetUser(req.UserID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if edge, exists := Store.GetFriendRequest(userID, req.UserID); exists {
		if edge.Status == models.FriendStatusAccepted {
			c.JSON(http.StatusConflict, gin.H{"error": "Already friends"})
		} else {
			c.JSON(http.StatusConflict, gin.H{"error": "Friend request already exists"})
		}
		return
	}

	edge, ok := Store.CreateFriendRequest(userID, req.UserID)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Friend request already exists"})
		return
	}

	if err := services.SendWSNotify(req.UserID, services.NotifyFriendRequest, userID, 0); err != nil {
		log.Printf("ERROR: failed to notify user %d: %v", req.UserID, err)
	}

	c.JSON(http.StatusCreated, edge)
}

// AcceptFriendRequest подтверждает входящую заявку. Подтвердить может только
// её адресат - хранилище эту проверку не делает.
func AcceptFriendRequest(c *gin.Context) {
	edgeID, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	userID := c.GetInt64("user_id")
	edge, ok := findPendingRequest(userID, edgeID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	if !Store.AcceptFriendRequest(edgeID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	// В лентах обеих сторон появились новые посты
	FeedCache.Invalidate(c.Request.Context(), edge.RequesterID, edge.AddresseeID)

	if err := services.SendWSNotify(edge.RequesterID, services.NotifyFriendAccepted, userID, 0); err != nil {
		log.Printf("ERROR: failed to notify user %d: %v", edge.RequesterID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// RejectFriendRequest отклоняет входящую заявку. Отказ не запрещает
// отправителю подать новую заявку позже.
func RejectFriendRequest(c *gin.Context) {
	edgeID, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	userID := c.GetInt64("user_id")
	if _, ok := findPendingRequest(userID, edgeID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	if !Store.RejectFriendRequest(edgeID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}

// findPendingRequest ищет входящую pending-заявку с данным id среди заявок
// пользователя: так заодно проверяется, что текущий пользователь - её адресат.
func findPendingRequest(userID, edgeID int64) (*models.FriendEdge, bool) {
	for _, req := range Store.GetFriendRequestsForUser(userID) {
		if req.RequestID == edgeID {
			return Store.GetFriendRequest(req.Requester.ID, userID)
		}
	}
	return nil, false
}

// GetFriends возвращает подтверждённых друзей текущего пользователя.
func GetFriends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"friends": Store.GetFriends(c.GetInt64("user_id"))})
}

// GetFriendRequests возвращает входящие заявки с профилями отправителей.
func GetFriendRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": Store.GetFriendRequestsForUser(c.GetInt64("user_id"))})
}

// GetFriendSuggestions возвращает до пяти кандидатов в друзья.
func GetFriendSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": Store.GetFriendSuggestions(c.GetInt64("user_id"))})
}
