// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	CategoryHandler       *handler.CategoryHandler
	ProductHandler        *handler.ProductHandler
	OrderHandler          *handler.OrderHandler
	FeedbackHandler       *handler.FeedbackHandler
	NotificationHandler   *handler.NotificationHandler
	ChatHandler           *handler.ChatHandler
	RecommendationHandler *handler.RecommendationHandler
	ChatRelayHandler      *ws.ChatRelayHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	adminOnly := p.AuthMiddleware.RequireRole("admin")

	e.Use(p.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
	}

	// User routes; /users/me is self-service, the rest is admin-only
	userGroup := e.Group("/users")
	userGroup.Use(authed)
	{
		userGroup.GET("/me", p.UserHandler.GetMe)
		userGroup.PATCH("/me", p.UserHandler.UpdateMe)

		userGroup.GET("", p.UserHandler.ListUsers, adminOnly)
		userGroup.GET("/:id", p.UserHandler.GetUser, adminOnly)
		userGroup.PATCH("/:id", p.UserHandler.UpdateUser, adminOnly)
		userGroup.DELETE("/:id", p.UserHandler.DeleteUser, adminOnly)
	}

	// Category routes; reads are public, writes admin-gated
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", p.CategoryHandler.ListCategories)
		categoryGroup.GET("/:id", p.CategoryHandler.GetCategory)

		categoryGroup.POST("", p.CategoryHandler.CreateCategory, authed, adminOnly)
		categoryGroup.PUT("/:id", p.CategoryHandler.UpdateCategory, authed, adminOnly)
		categoryGroup.DELETE("/:id", p.CategoryHandler.DeleteCategory, authed, adminOnly)
	}

	// Product routes; catalog reads are public, writes admin-gated
	productGroup := e.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.ListProducts)
		productGroup.GET("/paged", p.ProductHandler.ListProductsPaged)
		productGroup.GET("/:id", p.ProductHandler.GetProduct)

		productGroup.POST("", p.ProductHandler.CreateProduct, authed, adminOnly)
		productGroup.PUT("/:id", p.ProductHandler.UpdateProduct, authed, adminOnly)
		productGroup.DELETE("/:id", p.ProductHandler.DeleteProduct, authed, adminOnly)

		// Ratings and comments live under the product they belong to
		productGroup.POST("/:id/rating", p.FeedbackHandler.RateProduct, authed)
		productGroup.DELETE("/:id/rating", p.FeedbackHandler.DeleteRating, authed)
		productGroup.GET("/:id/rating", p.FeedbackHandler.GetRatingStats)
		productGroup.GET("/:id/my-rating", p.FeedbackHandler.GetMyRating, authed)

		productGroup.POST("/:id/comments", p.FeedbackHandler.AddComment, authed)
		productGroup.GET("/:id/comments", p.FeedbackHandler.ListComments)
		productGroup.DELETE("/:id/comments/:cid", p.FeedbackHandler.DeleteComment, authed)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(authed)
	{
		orderGroup.POST("", p.OrderHandler.CreateOrder)
		orderGroup.GET("/me", p.OrderHandler.ListMyOrders)
		orderGroup.GET("/me/paged", p.OrderHandler.ListMyOrdersPaged)

		orderGroup.GET("", p.OrderHandler.ListAllOrders, adminOnly)
		orderGroup.GET("/paged", p.OrderHandler.ListAllOrdersPaged, adminOnly)
		orderGroup.PUT("/:id/status", p.OrderHandler.UpdateStatus, adminOnly)

		orderGroup.GET("/:id", p.OrderHandler.GetOrder)
		orderGroup.GET("/:id/qr", p.OrderHandler.OrderQR)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(authed)
	{
		notificationGroup.GET("", p.NotificationHandler.ListNotifications)
		notificationGroup.PATCH("/:id/read", p.NotificationHandler.MarkRead)
	}

	// Chat routes: REST persistence plus the WebSocket relay
	chatGroup := e.Group("/chat")
	chatGroup.Use(authed)
	{
		chatGroup.POST("/send", p.ChatHandler.SendMessage)
		chatGroup.GET("/with/:user_id", p.ChatHandler.GetConversation)
	}
	e.GET("/ws/chat", p.ChatRelayHandler.HandleChat)

	// Popularity rankings
	recommendationGroup := e.Group("/recommendations")
	{
		recommendationGroup.GET("/most-viewed", p.RecommendationHandler.MostViewed)
		recommendationGroup.GET("/most-sold", p.RecommendationHandler.MostSold)
	}
}
