// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasktag/internal/delivery/http/middleware"
	"tasktag/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	TagHandler     *handler.TagHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	tagHandler     *handler.TagHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		tagHandler:     params.TagHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// The session check runs behind the same gate as every other protected
	// route.
	e.GET("/autologin", r.userHandler.AutoLogin, r.authMiddleware.Authenticate)

	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("/:id", r.taskHandler.Show)
		taskGroup.PATCH("/:id", r.taskHandler.Update)
		taskGroup.PUT("/:id", r.taskHandler.Update)
		taskGroup.DELETE("/:id", r.taskHandler.Delete)
	}

	tagGroup := e.Group("/tags")
	tagGroup.Use(r.authMiddleware.Authenticate)
	{
		tagGroup.GET("", r.tagHandler.List)
		tagGroup.POST("", r.tagHandler.Create)
		tagGroup.GET("/:id", r.tagHandler.Show)
		tagGroup.PATCH("/:id", r.tagHandler.Update)
		tagGroup.PUT("/:id", r.tagHandler.Update)
		tagGroup.DELETE("/:id", r.tagHandler.Delete)
	}
}
