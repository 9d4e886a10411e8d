package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerAnnouncementRoutes registers the announcement board routes.
// Reading is open to every member; posting and removal are admin only.
func (rt *Router) registerAnnouncementRoutes(api *gin.RouterGroup) {
	announcements := api.Group("/announcements")
	announcements.Use(middleware.JWTAuth())
	{
		announcements.GET("", rt.handlers.Announcement.List)
	}

	admin := announcements.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", rt.handlers.Announcement.Create)
		admin.DELETE("/:id", rt.handlers.Announcement.Delete)
	}
}
