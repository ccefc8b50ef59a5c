package controllers

import (
	"github.com/gin-gonic/gin"

	"orthonova/handlers"
	"orthonova/middlewares"
	"orthonova/views"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no session required
	router.POST("/auth/login", ac.Handler.Login)
	router.GET("/auth/session", ac.Handler.Session)
	router.POST("/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/auth/reset-password", ac.Handler.ResetPassword)

	// Protected routes: requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logoff", ac.Handler.Logoff)
		authGroup.POST("/refresh-token", ac.Handler.RefreshToken)
	}

	// User management: requires the user-management view (admin only)
	adminGroup := router.Group("/auth/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RequireView(views.ViewUserManagement),
	)
	{
		adminGroup.GET("/users", ac.Handler.ListUsers)
		adminGroup.POST("/users", ac.Handler.CreateUser)
		adminGroup.POST("/users/change-password", ac.Handler.ChangePassword)
		adminGroup.DELETE("/users/:id", ac.Handler.DeleteUser)
	}
}
