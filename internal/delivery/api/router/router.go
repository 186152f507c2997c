// Package router registers the dashboard API routes.
package router

import (
	"vplmon/internal/delivery/api/middleware"
	"vplmon/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	AuthHandler       *handler.AuthHandler
	MonitorHandler    *handler.MonitorHandler
	LogHandler        *handler.LogHandler
	PreferenceHandler *handler.PreferenceHandler
	NoticeHandler     *handler.NoticeHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	monitorHandler    *handler.MonitorHandler
	logHandler        *handler.LogHandler
	preferenceHandler *handler.PreferenceHandler
	noticeHandler     *handler.NoticeHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		authHandler:       params.AuthHandler,
		monitorHandler:    params.MonitorHandler,
		logHandler:        params.LogHandler,
		preferenceHandler: params.PreferenceHandler,
		noticeHandler:     params.NoticeHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything under /api/v1 requires an operator token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/status", r.monitorHandler.Status)
	apiV1.POST("/commands", r.monitorHandler.SendCommand)
	apiV1.GET("/notices", r.noticeHandler.List)

	logsGroup := apiV1.Group("/logs")
	{
		logsGroup.GET("/export", r.logHandler.Export)
		logsGroup.GET("/:category", r.logHandler.List)
		logsGroup.DELETE("/:category", r.logHandler.Clear)
		logsGroup.POST("/:category/email", r.logHandler.Email)
	}

	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.Get)
		preferencesGroup.PUT("/channels/:channel", r.preferenceHandler.SetChannel)
		preferencesGroup.POST("/recipients/:channel", r.preferenceHandler.AddRecipient)
		preferencesGroup.DELETE("/recipients/:channel/:value", r.preferenceHandler.RemoveRecipient)
		preferencesGroup.POST("/test/:channel", r.preferenceHandler.SendTest)
	}
}
