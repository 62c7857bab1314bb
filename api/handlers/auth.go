package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socialnet/config"
	"socialnet/models"
	"socialnet/services"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio"`
	City     string `json:"city"`
	Hometown string `json:"hometown"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register регистрирует пользователя. Уникальность username проверяется до
// вставки - хранилище её не перепроверяет.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if _, exists := Store.GetUserByUsername(req.Username); exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := Store.CreateUser(models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: hash,
		Bio:      req.Bio,
		City:     req.City,
		Hometown: req.Hometown,
		IsAdmin:  isConfiguredAdmin(req.Username),
	})

	c.JSON(http.StatusCreated, user)
}

// isConfiguredAdmin проверяет, числится ли username в списке администраторов
// из конфигурации. Способность выдаётся один раз, при регистрации.
func isConfiguredAdmin(username string) bool {
	if config.AppConfig == nil {
		return false
	}
	for _, name := range config.AppConfig.Admins {
		if name == username {
			return true
		}
	}
	return false
}

// Login проверяет пароль и выпускает токен сессии.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, ok := Store.GetUserByUsername(req.Username)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if user.Banned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is banned"})
		return
	}

	valid, err := services.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := services.CreateSession(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session backend unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout гасит сессию текущего токена.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No token provided"})
		return
	}
	if err := services.DeleteSession(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
