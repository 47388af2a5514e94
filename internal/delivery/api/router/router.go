// Package router registers the account API routes.
package router

import (
	"blogauth/internal/delivery/api/middleware"
	"blogauth/internal/delivery/api/router/handler"
	"blogauth/internal/domain/entity"
	"blogauth/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	MirrorHandler  *handler.MirrorHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	mirrorHandler  *handler.MirrorHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		mirrorHandler:  params.MirrorHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Root aliases kept for existing clients.
	e.POST("/login", r.accountHandler.Login)
	e.POST("/register", r.accountHandler.Register)
	e.POST("/change-password", r.accountHandler.ChangePassword)
	e.POST("/reset-password", r.accountHandler.ResetPassword)

	accountGroup := e.Group("/api/account")
	{
		accountGroup.POST("", r.accountHandler.Login)
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/register", r.accountHandler.Register)
		accountGroup.POST("/change-password", r.accountHandler.ChangePassword)
		accountGroup.POST("/reset-password", r.accountHandler.ResetPassword)
		accountGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	adminGroup := e.Group("/api/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdministrator))
	{
		adminGroup.POST("/mirror/reconcile", r.mirrorHandler.Reconcile)
	}
}
