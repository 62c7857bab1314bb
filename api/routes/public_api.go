package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialnet/api/handlers"
	"socialnet/api/middleware"
	"socialnet/store"
)

// PublicApi регистрирует все маршруты приложения.
func PublicApi(router *gin.Engine, st store.SocialStore) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1/")
	{
		api.POST("auth/register", handlers.Register)
		api.POST("auth/login", handlers.Login)
		api.POST("auth/logout", handlers.Logout)
	}

	authed := router.Group("/api/v1/", middleware.AuthMiddleware(st))
	{
		// Профили
		authed.GET("users/search", handlers.UserSearch)
		authed.GET("users/:id", handlers.UserGet)
		authed.PUT("users/me", handlers.UserUpdate)
		authed.DELETE("users/me", handlers.UserDelete)

		// Посты
		authed.POST("posts", handlers.CreatePost)
		authed.GET("posts/saved", handlers.GetSavedPosts)
		authed.GET("posts/:post_id", handlers.GetPost)
		authed.PUT("posts/:post_id", handlers.UpdatePost)
		authed.DELETE("posts/:post_id", handlers.DeletePost)
		authed.POST("posts/:post_id/like", handlers.LikePost)
		authed.DELETE("posts/:post_id/like", handlers.UnlikePost)
		authed.POST("posts/:post_id/comments", handlers.CommentPost)
		authed.GET("posts/:post_id/comments", handlers.GetPostComments)
		authed.POST("posts/:post_id/save", handlers.SavePost)
		authed.DELETE("posts/:post_id/save", handlers.UnsavePost)

		// Лента
		authed.GET("feed", handlers.GetFeed)

		// Друзья
		authed.POST("friends/request", handlers.SendFriendRequest)
		authed.POST("friends/requests/:request_id/accept", handlers.AcceptFriendRequest)
		authed.POST("friends/requests/:request_id/reject", handlers.RejectFriendRequest)
		authed.GET("friends", handlers.GetFriends)
		authed.GET("friends/requests", handlers.GetFriendRequests)
		authed.GET("friends/suggestions", handlers.GetFriendSuggestions)

		// Истории
		authed.POST("stories", handlers.CreateStory)
		authed.GET("stories", handlers.GetStories)

		// Push-события
		authed.GET("ws", handlers.WSHandler)
	}

	admin := router.Group("/api/v1/admin/", middleware.AuthMiddleware(st), middleware.AdminMiddleware(st))
	{
		admin.GET("posts", handlers.AdminListPosts)
		admin.POST("users/:user_id/ban", handlers.AdminToggleBan)
		admin.DELETE("users/:user_id", handlers.AdminDeleteUser)
		admin.DELETE("posts/:post_id", handlers.AdminDeletePost)
	}
}
