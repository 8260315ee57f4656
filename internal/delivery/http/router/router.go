// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"librarium/internal/delivery/http/middleware"
	"librarium/internal/delivery/http/router/handler"
	"librarium/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ItemHandler    *handler.ItemHandler
	UserHandler    *handler.UserHandler
	RentalHandler  *handler.RentalHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	itemHandler    *handler.ItemHandler
	userHandler    *handler.UserHandler
	rentalHandler  *handler.RentalHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		itemHandler:    params.ItemHandler,
		userHandler:    params.UserHandler,
		rentalHandler:  params.RentalHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Routes for the logged-in member
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Catalog routes
	itemGroup := e.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.GET("", r.itemHandler.SearchItems)
		itemGroup.GET("/availability", r.itemHandler.GetAvailability)
		itemGroup.GET("/:id", r.itemHandler.GetItem)
	}

	// Catalog mutations are restricted to back-office accounts
	staffOnly := r.authMiddleware.RequireType(entity.UserTypeAdmin.String(), entity.UserTypeStaff.String())
	itemAdminGroup := e.Group("/items")
	itemAdminGroup.Use(r.authMiddleware.Authenticate)
	itemAdminGroup.Use(staffOnly)
	{
		itemAdminGroup.POST("/films", r.itemHandler.CreateFilm)
		itemAdminGroup.POST("/literature", r.itemHandler.CreateLiterature)
		itemAdminGroup.PUT("/:id", r.itemHandler.UpdateItem)
		itemAdminGroup.DELETE("/:id", r.itemHandler.DeleteItem)
		itemAdminGroup.POST("/:id/recover", r.itemHandler.RecoverItem)
		itemAdminGroup.DELETE("/:id/permanent", r.itemHandler.HardDeleteItem)
	}

	// Reference data routes
	authorGroup := e.Group("/authors")
	authorGroup.Use(r.authMiddleware.Authenticate)
	{
		authorGroup.GET("", r.itemHandler.ListAuthors)
		authorGroup.POST("", r.itemHandler.CreateAuthor, staffOnly)
	}

	classificationGroup := e.Group("/classifications")
	classificationGroup.Use(r.authMiddleware.Authenticate)
	{
		classificationGroup.GET("", r.itemHandler.ListClassifications)
		classificationGroup.POST("", r.itemHandler.CreateClassification, staffOnly)
	}

	// Member administration routes
	memberGroup := e.Group("/users")
	memberGroup.Use(r.authMiddleware.Authenticate)
	memberGroup.Use(staffOnly)
	{
		memberGroup.GET("/:id", r.userHandler.GetUser)
		memberGroup.PUT("/:id", r.userHandler.UpdateUser)
		memberGroup.DELETE("/:id", r.userHandler.DeleteUser)
		memberGroup.POST("/:id/recover", r.userHandler.RecoverUser)
		memberGroup.DELETE("/:id/permanent", r.userHandler.HardDeleteUser)
		memberGroup.PUT("/:id/late-fee", r.userHandler.SetLateFee)
		memberGroup.GET("/:id/rentals", r.rentalHandler.ListUserRentals)
	}

	// Rental lifecycle routes
	rentalGroup := e.Group("/rentals")
	rentalGroup.Use(r.authMiddleware.Authenticate)
	{
		rentalGroup.POST("", r.rentalHandler.CreateRental)
		rentalGroup.GET("/overdue", r.rentalHandler.ListOverdueRentals)
		rentalGroup.GET("/:id", r.rentalHandler.GetRental)
		rentalGroup.POST("/:id/return", r.rentalHandler.ReturnRental)
		rentalGroup.GET("/:id/receipt/qr", r.rentalHandler.GetReceiptQR)
		rentalGroup.PUT("/:id", r.rentalHandler.UpdateRental, staffOnly)
		rentalGroup.DELETE("/:id", r.rentalHandler.DeleteRental, staffOnly)
		rentalGroup.POST("/:id/recover", r.rentalHandler.RecoverRental, staffOnly)
		rentalGroup.DELETE("/:id/permanent", r.rentalHandler.HardDeleteRental, staffOnly)
	}
}
