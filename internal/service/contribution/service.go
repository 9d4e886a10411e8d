// Package contribution implements the contribution ledger and the
// proof-of-payment workflow.
package contribution

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/storage"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// proofMIMETypes are the accepted proof-of-payment uploads.
var proofMIMETypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// contributionService implements service.ContributionService.
type contributionService struct {
	repos    *repository.Repositories
	uploader storage.Uploader
}

// NewContributionService wires the ledger service onto the repository
// layer and the proof store.
func NewContributionService(repos *repository.Repositories, uploader storage.Uploader) *contributionService {
	return &contributionService{repos: repos, uploader: uploader}
}

// ListContributions returns all rows for admins, the caller's own rows
// otherwise, newest first.
func (s *contributionService) ListContributions(principal model.Principal) ([]model.Contribution, error) {
	var (
		rows []model.Contribution
		err  error
	)
	if principal.IsAdmin() {
		rows, err = s.repos.Contribution.FindAllDesc()
	} else {
		rows, err = s.repos.Contribution.FindByMemberDesc(principal.ID)
	}
	if err != nil {
		zap.L().Error("listing contributions failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}
	return rows, nil
}

// CreateContribution inserts a ledger row. Admin only. A row created as
// Paid carries the current timestamp as its payment date.
func (s *contributionService) CreateContribution(principal model.Principal, req request.CreateContributionRequest) (uint, error) {
	if !principal.IsAdmin() {
		return 0, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if _, err := s.repos.Member.FindByID(req.MemberID); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return 0, errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.String("memberId", req.MemberID), zap.Error(err))
		return 0, errorx.ErrInternal
	}

	status := req.Status
	if status == "" {
		status = model.ContributionPending
	}
	row := &model.Contribution{
		MemberID:    req.MemberID,
		Month:       req.Month,
		Amount:      req.Amount,
		Status:      status,
		PaymentDate: paymentDateFor(status),
	}
	if err := s.repos.Contribution.Create(row); err != nil {
		zap.L().Error("creating contribution failed", zap.Error(err))
		return 0, errorx.ErrInternal
	}
	return row.ID, nil
}

// UpdateStatus transitions a row's status and recomputes its payment date:
// set on Paid, cleared on anything else. Admin only.
func (s *contributionService) UpdateStatus(principal model.Principal, id uint, status string) (*model.Contribution, error) {
	if !principal.IsAdmin() {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if status != model.ContributionPending && status != model.ContributionPaid {
		return nil, errorx.Newf(errorx.CodeInvalidArgument, "invalid status %q", status)
	}

	row, err := s.repos.Contribution.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "contribution not found")
		}
		zap.L().Error("loading contribution failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	row.Status = status
	row.PaymentDate = paymentDateFor(status)
	if err := s.repos.Contribution.Save(row); err != nil {
		zap.L().Error("updating contribution failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}
	return row, nil
}

// AttachProof validates and stores a proof-of-payment upload, records it on
// the row and resets the status to Pending for admin re-review. Open to any
// authenticated caller.
func (s *contributionService) AttachProof(principal model.Principal, id uint, data []byte, mimeType, originalName string) (*model.Contribution, error) {
	ext, ok := proofMIMETypes[mimeType]
	if !ok {
		return nil, errorx.New(errorx.CodeInvalidArgument, "proof must be a JPEG, PNG or PDF file")
	}
	if len(data) == 0 {
		return nil, errorx.New(errorx.CodeInvalidArgument, "proof file is empty")
	}
	if int64(len(data)) > constants.PROOF_MAX_SIZE {
		return nil, errorx.New(errorx.CodeInvalidArgument, "proof exceeds the 5MB limit")
	}

	// The existence check comes before the store write so a bad request
	// never leaves an orphaned object behind.
	if _, err := s.repos.Contribution.FindByID(id); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "contribution not found")
		}
		zap.L().Error("loading contribution failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	name := fmt.Sprintf("contribution_%d_%d%s", id, time.Now().UnixNano(), ext)
	url, err := s.uploader.Store("proofs", name, data)
	if err != nil {
		zap.L().Error("storing proof failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	// The row could have been deleted during the upload. Reload; on a miss
	// discard the orphaned object.
	row, err := s.repos.Contribution.FindByID(id)
	if err != nil {
		if delErr := s.uploader.Delete(url); delErr != nil {
			zap.L().Warn("discarding orphaned proof failed", zap.Error(delErr))
		}
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "contribution not found")
		}
		zap.L().Error("reloading contribution failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	old := row.Proof.URL
	row.Proof = model.Proof{
		URL:        url,
		Name:       filepath.Base(originalName),
		Type:       mimeType,
		Size:       int64(len(data)),
		UploadedAt: sql.NullTime{Time: time.Now(), Valid: true},
	}
	row.Status = model.ContributionPending
	row.PaymentDate = sql.NullTime{}
	if err := s.repos.Contribution.Save(row); err != nil {
		zap.L().Error("recording proof failed", zap.Uint("id", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}
	if old != "" {
		if err := s.uploader.Delete(old); err != nil {
			zap.L().Warn("removing superseded proof failed", zap.String("url", old), zap.Error(err))
		}
	}
	zap.L().Info("proof attached", zap.Uint("contributionId", id), zap.String("memberId", row.MemberID))
	return row, nil
}

// paymentDateFor returns now for Paid and null for anything else.
func paymentDateFor(status string) sql.NullTime {
	if status == model.ContributionPaid {
		return sql.NullTime{Time: time.Now(), Valid: true}
	}
	return sql.NullTime{}
}
