package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerStatsRoutes registers the savings statistics routes.
func (rt *Router) registerStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats")
	stats.Use(middleware.JWTAuth())
	{
		stats.GET("/:memberId", rt.handlers.Stats.Get)
	}
}
