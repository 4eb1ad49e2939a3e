// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"secrets/internal/delivery/http/middleware"
	"secrets/internal/delivery/http/router/handler"
	"secrets/internal/delivery/http/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler    *handler.PageHandler
	AuthHandler    *handler.AuthHandler
	SecretHandler  *handler.SecretHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler    *handler.PageHandler
	authHandler    *handler.AuthHandler
	secretHandler  *handler.SecretHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:    params.PageHandler,
		authHandler:    params.AuthHandler,
		secretHandler:  params.SecretHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.StaticFS("/static", view.StaticFS())

	// Every page sees the restored session, if any.
	pages := e.Group("", r.authMiddleware.Authenticate)
	{
		pages.GET("/", r.pageHandler.Home)
		pages.GET("/login", r.pageHandler.LoginPage)
		pages.GET("/register", r.pageHandler.RegisterPage)

		pages.POST("/register", r.authHandler.Register)
		pages.POST("/login", r.authHandler.Login)
		pages.GET("/logout", r.authHandler.Logout)

		pages.GET("/secrets", r.secretHandler.ListSecrets)
		pages.GET("/submit", r.secretHandler.SubmitPage)
		pages.POST("/submit", r.secretHandler.Submit)
	}

	// Google OAuth2 authorization-code flow
	googleGroup := pages.Group("/auth/google")
	{
		googleGroup.GET("", r.authHandler.GoogleLogin)
		googleGroup.GET("/secrets", r.authHandler.GoogleCallback)
	}
}
