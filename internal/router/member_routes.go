package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerMemberRoutes registers the member registry routes. All require
// authentication; registry mutation additionally requires the admin role.
func (rt *Router) registerMemberRoutes(api *gin.RouterGroup) {
	members := api.Group("/members")
	members.Use(middleware.JWTAuth())
	{
		// Self-or-admin gating happens in the service.
		members.GET("/:id", rt.handlers.Member.Get)

		members.POST("/change-password", rt.handlers.Auth.ChangePassword)
	}

	// Own-profile photo management.
	profile := api.Group("/profile")
	profile.Use(middleware.JWTAuth())
	{
		profile.POST("/photo", rt.handlers.Member.UploadPhoto)
		profile.DELETE("/photo", rt.handlers.Member.DeletePhoto)
	}

	admin := members.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", rt.handlers.Member.List)
		admin.POST("", rt.handlers.Member.Create)
		admin.PUT("/:id", rt.handlers.Member.Update)
		admin.DELETE("/:id", rt.handlers.Member.Delete)
	}
}
