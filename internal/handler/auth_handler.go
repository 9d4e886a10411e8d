// Package handler provides the HTTP request handlers.
// This file handles authentication requests.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
)

// AuthHandler handles login and password management.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates a member.
// POST /api/auth/login
// Body: request.LoginRequest
// Response: respond.LoginRespond (token + member)
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.authSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ChangePassword replaces the caller's password after re-verifying the
// current one.
// POST /api/members/change-password
// Body: request.ChangePasswordRequest
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.authSvc.ChangePassword(principal, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Me returns the principal decoded from the presented token, letting the
// client validate a stored session without a second query.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	HandleSuccess(c, gin.H{
		"id":    principal.ID,
		"email": principal.Email,
		"role":  principal.Role,
		"name":  principal.Name,
		"photo": principal.Photo,
	})
}
