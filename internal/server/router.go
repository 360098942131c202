package server

import (
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/navigation"
	sharing "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingService"
	handler "github.com/CHOWHITHA-ANANTHA/share-nest-01/services/sharing/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(sharingService *sharing.SharingService, nav *navigation.Navigator) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	sharingHandler := handler.NewSharingHandler(sharingService, nav)

	session := router.Group("/session")
	{
		session.POST("", sharingHandler.LoginHandler)
		session.DELETE("", sharingHandler.LogoutHandler)
		session.GET("", sharingHandler.GetSessionHandler)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", sharingHandler.ListPostsHandler)
		posts.POST("", sharingHandler.AddPostHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", sharingHandler.ListItemsHandler)
		items.POST("", sharingHandler.AddItemHandler)
		items.POST("/:item_id/request", sharingHandler.RequestItemHandler)
		items.POST("/:item_id/return", sharingHandler.ConfirmReturnHandler)
	}

	requests := router.Group("/requests")
	{
		requests.GET("", sharingHandler.ListRequestsHandler)
		requests.POST("", sharingHandler.AddRequestHandler)
	}

	router.GET("/profile", sharingHandler.ProfileHandler)
	router.GET("/impact", sharingHandler.ImpactHandler)

	page := router.Group("/page")
	{
		page.GET("", sharingHandler.CurrentPageHandler)
		page.PUT("", sharingHandler.NavigateHandler)
	}

	return router
}
