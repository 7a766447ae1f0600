// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zenvira/internal/delivery/api/middleware"
	"zenvira/internal/delivery/api/router/handler"
	"zenvira/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	MedicineHandler *handler.MedicineHandler
	ReviewHandler   *handler.ReviewHandler
	OrderHandler    *handler.OrderHandler
	StatsHandler    *handler.StatsHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	medicineHandler *handler.MedicineHandler
	reviewHandler   *handler.ReviewHandler
	orderHandler    *handler.OrderHandler
	statsHandler    *handler.StatsHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		medicineHandler: params.MedicineHandler,
		reviewHandler:   params.ReviewHandler,
		orderHandler:    params.OrderHandler,
		statsHandler:    params.StatsHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Guarded groups chain RequireAuth, then RequireRole, then the handler.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.RequireAuth
	sellers := r.authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin)
	admins := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up/email", r.authHandler.SignUp)
		authGroup.POST("/sign-in/email", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/get-session", r.authHandler.GetSession, auth)
	}

	medicinesGroup := api.Group("/medicines")
	{
		// Static paths are registered before the :slug wildcard.
		medicinesGroup.GET("/seller/me", r.medicineHandler.ListMine, auth, sellers)
		medicinesGroup.GET("", r.medicineHandler.List)
		medicinesGroup.GET("/:slug", r.medicineHandler.GetBySlug)
		medicinesGroup.POST("", r.medicineHandler.Create, auth, sellers)
		medicinesGroup.PUT("/:id", r.medicineHandler.Update, auth, sellers)
		medicinesGroup.DELETE("/:id", r.medicineHandler.Delete, auth, sellers)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.GET("/:slug", r.categoryHandler.GetBySlug)
		categoriesGroup.POST("", r.categoryHandler.Create, auth, admins)
		categoriesGroup.PUT("/:id", r.categoryHandler.Update, auth, admins)
		categoriesGroup.DELETE("/:id", r.categoryHandler.Delete, auth, admins)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("/medicine/:medicineId", r.reviewHandler.ListByMedicine)
		reviewsGroup.POST("", r.reviewHandler.Create, auth)
		reviewsGroup.PUT("/:id", r.reviewHandler.Update, auth)
		reviewsGroup.DELETE("/:id", r.reviewHandler.Delete, auth)
	}

	ordersGroup := api.Group("/orders")
	ordersGroup.Use(auth)
	{
		ordersGroup.POST("", r.orderHandler.Place)
		ordersGroup.GET("", r.orderHandler.List)
		ordersGroup.GET("/seller", r.orderHandler.ListForSeller, sellers)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.PATCH("/:id/cancel", r.orderHandler.Cancel)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus, sellers)
		ordersGroup.PATCH("/:id/payment-status", r.orderHandler.UpdatePaymentStatus, admins)
	}

	statsGroup := api.Group("/stats")
	statsGroup.Use(auth)
	{
		statsGroup.GET("/seller", r.statsHandler.Seller, sellers)
		statsGroup.GET("/admin", r.statsHandler.Admin, admins)
	}

	usersGroup := api.Group("/users")
	usersGroup.Use(auth)
	{
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.PUT("/me", r.userHandler.UpdateMe)
		usersGroup.POST("/seller/apply", r.userHandler.ApplySeller)
		usersGroup.GET("/seller/application", r.userHandler.GetMyApplication)

		usersGroup.GET("", r.userHandler.List, admins)
		usersGroup.GET("/seller-applications", r.userHandler.ListApplications, admins)
		usersGroup.GET("/seller-applications/:id", r.userHandler.GetApplication, admins)
		usersGroup.PUT("/seller-applications/:id", r.userHandler.ReviewApplication, admins)
		usersGroup.PATCH("/:id/role", r.userHandler.UpdateRole, admins)
		usersGroup.PATCH("/:id/status", r.userHandler.UpdateStatus, admins)
	}
}
