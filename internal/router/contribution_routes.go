package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/middleware"
)

// registerContributionRoutes registers the ledger routes. All require
// authentication; ledger mutation requires the admin role except the
// proof upload, which members use on their own rows.
func (rt *Router) registerContributionRoutes(api *gin.RouterGroup) {
	contributions := api.Group("/contributions")
	contributions.Use(middleware.JWTAuth())
	{
		contributions.GET("", rt.handlers.Contribution.List)
		contributions.POST("/:id/proof", rt.handlers.Contribution.UploadProof)
	}

	admin := contributions.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", rt.handlers.Contribution.Create)
		admin.PUT("/:id", rt.handlers.Contribution.UpdateStatus)
	}
}
