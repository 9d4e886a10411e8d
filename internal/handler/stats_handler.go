// Package handler provides the HTTP request handlers.
// This file handles savings statistics requests.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
)

// StatsHandler handles savings statistics requests.
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler creates the stats handler.
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Get returns the derived savings figures for one member. Non-admins can
// only query themselves.
// GET /api/stats/:memberId
func (h *StatsHandler) Get(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	stats, err := h.statsSvc.GetStats(principal, c.Param("memberId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, stats)
}
