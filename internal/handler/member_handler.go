// Package handler provides the HTTP request handlers.
// This file handles member registry requests.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
)

// MemberHandler handles member registry requests.
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler creates the member handler.
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// List returns every member. Admin only.
// GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	members, err := h.memberSvc.ListMembers(principal)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, members)
}

// Get returns one member. Non-admins can only fetch themselves.
// GET /api/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	member, err := h.memberSvc.GetMember(principal, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, member)
}

// Create registers a member under a freshly allocated identifier. Admin only.
// POST /api/members
// Body: request.CreateMemberRequest
func (h *MemberHandler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := h.memberSvc.CreateMember(principal, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, respond.CreatedRespond{ID: id, Message: "member created"})
}

// Update overwrites a member's mutable attributes. Admin only.
// PUT /api/members/:id
// Body: request.UpdateMemberRequest
func (h *MemberHandler) Update(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.UpdateMember(principal, c.Param("id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Delete removes a member and its contributions. Admin only.
// DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	if err := h.memberSvc.DeleteMember(principal, c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadPhoto stores a profile photo for the caller.
// POST /api/profile/photo
// Multipart field: photo
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	data, mimeType, _, err := readUpload(c, "photo")
	if err != nil {
		HandleError(c, err)
		return
	}
	url, err := h.memberSvc.UploadProfilePhoto(principal, data, mimeType)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"photoUrl": url})
}

// DeletePhoto clears the caller's profile photo.
// DELETE /api/profile/photo
func (h *MemberHandler) DeletePhoto(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	if err := h.memberSvc.DeleteProfilePhoto(principal); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
