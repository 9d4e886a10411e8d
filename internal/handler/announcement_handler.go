// Package handler provides the HTTP request handlers.
// This file handles announcement board requests.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
)

// AnnouncementHandler handles announcement board requests.
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler creates the announcement handler.
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// List returns every announcement, newest first.
// GET /api/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	rows, err := h.announcementSvc.ListAnnouncements()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rows)
}

// Create posts an announcement. Admin only.
// POST /api/announcements
// Body: request.CreateAnnouncementRequest
func (h *AnnouncementHandler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := h.announcementSvc.CreateAnnouncement(principal, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, respond.CreatedRespond{ID: id, Message: "announcement created"})
}

// Delete removes an announcement. Admin only.
// DELETE /api/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	if err := h.announcementSvc.DeleteAnnouncement(principal, id); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
