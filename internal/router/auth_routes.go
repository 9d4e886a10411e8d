package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerAuthRoutes registers the authentication routes.
func (rt *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	// Public.
	auth.POST("/login", rt.handlers.Auth.Login)

	// Authenticated.
	authed := auth.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/me", rt.handlers.Auth.Me)
	}
}
