// Package handler provides the HTTP request handlers.
// This file handles the unauthenticated health probe.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Health answers the liveness probe.
// GET /api/health
func Health(c *gin.Context) {
	HandleSuccess(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
