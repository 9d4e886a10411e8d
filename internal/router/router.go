// Package router registers the HTTP routes.
// This file is the registration entry point; per-module route files hang
// their groups off the /api prefix defined here.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/handler"
)

// Router binds the handler aggregate to the route tree.
type Router struct {
	handlers *handler.Handlers
}

// NewRouter creates the route registrar.
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes registers every route under the /api prefix.
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	api := engine.Group("/api")

	// Unauthenticated liveness probe.
	api.GET("/health", handler.Health)

	rt.registerAuthRoutes(api)
	rt.registerMemberRoutes(api)
	rt.registerContributionRoutes(api)
	rt.registerAnnouncementRoutes(api)
	rt.registerChatRoutes(api)
	rt.registerStatsRoutes(api)
}
