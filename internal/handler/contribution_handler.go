// Package handler provides the HTTP request handlers.
// This file handles contribution ledger requests.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// ContributionHandler handles ledger requests.
type ContributionHandler struct {
	contributionSvc service.ContributionService
}

// NewContributionHandler creates the contribution handler.
func NewContributionHandler(contributionSvc service.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionSvc: contributionSvc}
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errorx.New(errorx.CodeInvalidArgument, "invalid id")
	}
	return uint(id), nil
}

// List returns the ledger: all rows for admins, own rows otherwise.
// GET /api/contributions
func (h *ContributionHandler) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	rows, err := h.contributionSvc.ListContributions(principal)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rows)
}

// Create inserts a ledger row. Admin only.
// POST /api/contributions
// Body: request.CreateContributionRequest
func (h *ContributionHandler) Create(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req request.CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	id, err := h.contributionSvc.CreateContribution(principal, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, respond.CreatedRespond{ID: id, Message: "contribution created"})
}

// UpdateStatus transitions a row between Pending and Paid. Admin only.
// PUT /api/contributions/:id
// Body: request.UpdateContributionRequest
func (h *ContributionHandler) UpdateStatus(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.UpdateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	row, err := h.contributionSvc.UpdateStatus(principal, id, req.Status)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, row)
}

// UploadProof attaches a proof-of-payment file to a row.
// POST /api/contributions/:id/proof
// Multipart field: proof
func (h *ContributionHandler) UploadProof(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, err := pathID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	data, mimeType, name, err := readUpload(c, "proof")
	if err != nil {
		HandleError(c, err)
		return
	}
	row, err := h.contributionSvc.AttachProof(principal, id, data, mimeType, name)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ProofRespond{
		ProofOfPayment: row.Proof,
		URL:            row.Proof.URL,
	})
}
