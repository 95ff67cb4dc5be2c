// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planta/config"
	"planta/internal/delivery/http/middleware"
	"planta/internal/delivery/http/router/handler"
	"planta/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	PlantHandler      *handler.PlantHandler
	OrderHandler      *handler.OrderHandler
	ScheduleHandler   *handler.ScheduleHandler
	SuggestionHandler *handler.SuggestionHandler
	UserHandler       *handler.UserHandler
	ArticleHandler    *handler.ArticleHandler
	UploadHandler     *handler.UploadHandler
	AuthMiddleware    *middleware.AuthMiddleware
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
// Reads on the catalog, suggestions and articles are public; everything
// that writes requires authentication, and catalog management requires
// the admin role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.GET("/profile", r.params.UserHandler.Profile, authenticate)
	}

	// Plant catalog: public reads, admin writes
	plantGroup := api.Group("/plants")
	{
		plantGroup.GET("", r.params.PlantHandler.List)
		plantGroup.GET("/:id", r.params.PlantHandler.Get)
		plantGroup.GET("/:plantId/suggestions", r.params.SuggestionHandler.ListByPlant)
		plantGroup.GET("/:plantId/schedules", r.params.ScheduleHandler.ListByPlant, authenticate, requireAdmin)
		plantGroup.POST("", r.params.PlantHandler.Create, authenticate, requireAdmin)
		plantGroup.PUT("/:id", r.params.PlantHandler.Update, authenticate, requireAdmin)
		plantGroup.DELETE("/:id", r.params.PlantHandler.Delete, authenticate, requireAdmin)
	}

	// Orders: any authenticated user can place and read; status moves and
	// deletion are admin operations
	orderGroup := api.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.GET("/user/:userId", r.params.OrderHandler.ListByUser)
		orderGroup.GET("", r.params.OrderHandler.List, requireAdmin)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus, requireAdmin)
		orderGroup.DELETE("/:id", r.params.OrderHandler.Delete, requireAdmin)
	}

	// Maintenance schedules
	scheduleGroup := api.Group("/schedules", authenticate)
	{
		scheduleGroup.POST("", r.params.ScheduleHandler.Create)
		scheduleGroup.GET("", r.params.ScheduleHandler.List)
		scheduleGroup.GET("/:id", r.params.ScheduleHandler.Get)
		scheduleGroup.GET("/user/:userId", r.params.ScheduleHandler.ListByUser)
		scheduleGroup.PATCH("/:id/status", r.params.ScheduleHandler.UpdateStatus)
		scheduleGroup.DELETE("/:id", r.params.ScheduleHandler.Delete)
	}

	// Care suggestions: public reads, admin writes
	suggestionGroup := api.Group("/suggestions")
	{
		suggestionGroup.GET("", r.params.SuggestionHandler.List)
		suggestionGroup.GET("/:id", r.params.SuggestionHandler.Get)
		suggestionGroup.POST("", r.params.SuggestionHandler.Create, authenticate, requireAdmin)
		suggestionGroup.PUT("/:id", r.params.SuggestionHandler.Update, authenticate, requireAdmin)
		suggestionGroup.DELETE("/:id", r.params.SuggestionHandler.Delete, authenticate, requireAdmin)
	}

	// Care articles: public reads (with optional ?q= search), admin writes
	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", r.params.ArticleHandler.List)
		articleGroup.GET("/:id", r.params.ArticleHandler.Get)
		articleGroup.POST("", r.params.ArticleHandler.Create, authenticate, requireAdmin)
		articleGroup.PUT("/:id", r.params.ArticleHandler.Update, authenticate, requireAdmin)
		articleGroup.DELETE("/:id", r.params.ArticleHandler.Delete, authenticate, requireAdmin)
	}

	// User administration
	userGroup := api.Group("/users", authenticate, requireAdmin)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}

	// Image upload for plants and articles. Multipart bodies are exempt from
	// the global request body limit and bounded here instead.
	api.POST("/upload", r.params.UploadHandler.Upload, authenticate, requireAdmin,
		echomiddleware.BodyLimit(r.params.Config.Upload.MaxUploadBodySize))
}
