// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/irabeny89/ebbs-io/internal/delivery/http/middleware"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	CatalogHandler    *handler.CatalogHandler
	OrderHandler      *handler.OrderHandler
	EngagementHandler *handler.EngagementHandler
	MessageHandler    *handler.MessageHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	catalogHandler    *handler.CatalogHandler
	orderHandler      *handler.OrderHandler
	engagementHandler *handler.EngagementHandler
	messageHandler    *handler.MessageHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		catalogHandler:    params.CatalogHandler,
		orderHandler:      params.OrderHandler,
		engagementHandler: params.EngagementHandler,
		messageHandler:    params.MessageHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/passcode", r.accountHandler.RequestPassCode)
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.Refresh)
		authGroup.POST("/logout", r.accountHandler.Logout)
		authGroup.POST("/password", r.accountHandler.ChangePassword)
	}

	// Public catalog routes
	servicesGroup := e.Group("/services")
	{
		servicesGroup.GET("", r.catalogHandler.ListServices)
		servicesGroup.GET("/:id", r.catalogHandler.GetService)
		servicesGroup.GET("/:id/qr", r.catalogHandler.ServiceQR)
		servicesGroup.GET("/:id/products", r.catalogHandler.ListServiceProducts)
		servicesGroup.GET("/:id/categories", r.catalogHandler.ServiceCategories)
		servicesGroup.GET("/:id/comments", r.engagementHandler.ListComments)
		servicesGroup.GET("/:id/favorites", r.engagementHandler.FavoriteCount)
		servicesGroup.POST("/scan", r.catalogHandler.ScanServiceQR)
	}
	e.GET("/products", r.catalogHandler.ListProducts)

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.accountHandler.Profile)
		userGroup.GET("/service", r.catalogHandler.MyService)
		userGroup.PUT("/service", r.catalogHandler.UpsertService)
		userGroup.POST("/products", r.catalogHandler.NewProduct)
		userGroup.PUT("/products/:id", r.catalogHandler.EditProduct)
		userGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.MyOrders)
		orderGroup.GET("/requests", r.orderHandler.MyRequests)
		orderGroup.GET("/stats", r.orderHandler.Stats)
		orderGroup.PATCH("/items/status", r.orderHandler.UpdateItemStatus)
		orderGroup.PATCH("/delivery-date", r.orderHandler.SetDeliveryDate)
	}

	// Engagement routes that require authentication
	engagementGroup := e.Group("/engagement")
	engagementGroup.Use(r.authMiddleware.Authenticate)
	{
		engagementGroup.POST("/comments", r.engagementHandler.PostComment)
		engagementGroup.DELETE("/comments/:id", r.engagementHandler.DeleteComment)
		engagementGroup.PUT("/favorites", r.engagementHandler.SetFavorite)
	}

	// Direct-message routes that require authentication
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.SendMessage)
		messageGroup.GET("", r.messageHandler.Correspondents)
		messageGroup.GET("/:id", r.messageHandler.Inbox)
	}
}
