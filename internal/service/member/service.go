// Package member implements the member registry: sequential identifier
// allocation, CRUD, and profile photo handling.
package member

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/storage"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// photoMIMETypes are the accepted profile photo uploads.
var photoMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// memberService implements service.MemberService.
type memberService struct {
	repos    *repository.Repositories
	uploader storage.Uploader

	// allocMu serialises identifier allocation so two concurrent creations
	// cannot scan the same free sequence number.
	allocMu sync.Mutex
}

// NewMemberService wires the member service onto the repository layer and
// the photo store.
func NewMemberService(repos *repository.Repositories, uploader storage.Uploader) *memberService {
	return &memberService{repos: repos, uploader: uploader}
}

// ListMembers returns every member ordered by identifier. Admin only.
func (s *memberService) ListMembers(principal model.Principal) ([]model.Member, error) {
	if !principal.IsAdmin() {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	members, err := s.repos.Member.FindAllOrdered()
	if err != nil {
		zap.L().Error("listing members failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}
	return members, nil
}

// GetMember returns one member. Non-admins may only fetch themselves.
func (s *memberService) GetMember(principal model.Principal, id string) (*model.Member, error) {
	if !principal.IsAdmin() && principal.ID != id {
		return nil, errorx.New(errorx.CodeForbidden, "members can only view their own record")
	}
	member, err := s.repos.Member.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.String("memberId", id), zap.Error(err))
		return nil, errorx.ErrInternal
	}
	return member, nil
}

// CreateMember allocates the lowest free sequence number and inserts the
// member, both inside one transaction. Admin only.
func (s *memberService) CreateMember(principal model.Principal, req request.CreateMemberRequest) (string, error) {
	if !principal.IsAdmin() {
		return "", errorx.New(errorx.CodeForbidden, "admin access required")
	}

	password := req.Password
	if password == "" {
		password = constants.DEFAULT_MEMBER_PASSWORD
	}
	status := req.Status
	if status == "" {
		status = "Active"
	}
	role := req.Role
	if role == "" {
		role = model.RoleMember
	}

	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	var id string
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		seq, err := nextSequence(tx)
		if err != nil {
			return err
		}
		id = fmt.Sprintf("%s%s%03d", constants.MEMBER_ID_PREFIX, constants.MEMBER_ID_PERIOD, seq)
		return tx.Member.Create(&model.Member{
			ID:            id,
			Name:          req.Name,
			IDNumber:      req.IDNumber,
			Phone:         req.Phone,
			Email:         req.Email,
			RawPassword:   password,
			Status:        status,
			Role:          role,
			JoinDate:      time.Now(),
			BankName:      req.BankName,
			AccountHolder: req.AccountHolder,
			AccountNumber: req.AccountNumber,
			BranchCode:    req.BranchCode,
		})
	})
	if err != nil {
		code := errorx.GetCode(err)
		if code == errorx.CodeConflict || code == errorx.CodeResourceExhausted {
			return "", err
		}
		zap.L().Error("creating member failed", zap.Error(err))
		return "", errorx.ErrInternal
	}
	zap.L().Info("member created", zap.String("memberId", id), zap.String("email", req.Email))
	return id, nil
}

// nextSequence returns the lowest sequence number not currently assigned.
// Deleted members free their number for reuse.
func nextSequence(tx *repository.Repositories) (int, error) {
	taken, err := tx.Member.TakenSequenceNumbers()
	if err != nil {
		return 0, err
	}
	used := make(map[int]struct{}, len(taken))
	for _, n := range taken {
		used[n] = struct{}{}
	}
	for n := constants.MEMBER_SEQ_MIN; n <= constants.MEMBER_SEQ_MAX; n++ {
		if _, ok := used[n]; !ok {
			return n, nil
		}
	}
	return 0, errorx.New(errorx.CodeResourceExhausted, "member capacity reached")
}

// UpdateMember overwrites a member's mutable attributes. Admin only.
// A missing id is a silent no-op.
func (s *memberService) UpdateMember(principal model.Principal, id string, req request.UpdateMemberRequest) error {
	if !principal.IsAdmin() {
		return errorx.New(errorx.CodeForbidden, "admin access required")
	}
	err := s.repos.Member.UpdateFields(id, map[string]any{
		"name":           req.Name,
		"id_number":      req.IDNumber,
		"phone":          req.Phone,
		"email":          req.Email,
		"status":         req.Status,
		"bank_name":      req.BankName,
		"account_holder": req.AccountHolder,
		"account_number": req.AccountNumber,
		"branch_code":    req.BranchCode,
	})
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return err
		}
		zap.L().Error("updating member failed", zap.String("memberId", id), zap.Error(err))
		return errorx.ErrInternal
	}
	return nil
}

// DeleteMember removes a member together with its contributions and chat
// messages in one transaction, freeing the sequence number for reuse.
// Chat messages must go first or the sender foreign key blocks the
// member delete. Admin only.
func (s *memberService) DeleteMember(principal model.Principal, id string) error {
	if !principal.IsAdmin() {
		return errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if _, err := s.repos.Member.FindByID(id); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.String("memberId", id), zap.Error(err))
		return errorx.ErrInternal
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Contribution.DeleteByMember(id); err != nil {
			return err
		}
		if err := tx.ChatMessage.DeleteBySender(id); err != nil {
			return err
		}
		return tx.Member.Delete(id)
	})
	if err != nil {
		zap.L().Error("deleting member failed", zap.String("memberId", id), zap.Error(err))
		return errorx.ErrInternal
	}
	zap.L().Info("member deleted", zap.String("memberId", id))
	return nil
}

// UploadProfilePhoto stores a photo and records its URL on the caller's
// own row, returning the URL.
func (s *memberService) UploadProfilePhoto(principal model.Principal, data []byte, mimeType string) (string, error) {
	ext, ok := photoMIMETypes[mimeType]
	if !ok {
		return "", errorx.New(errorx.CodeInvalidArgument, "profile photo must be a JPEG, PNG or WebP image")
	}
	if len(data) == 0 {
		return "", errorx.New(errorx.CodeInvalidArgument, "profile photo is empty")
	}
	if int64(len(data)) > constants.PROOF_MAX_SIZE {
		return "", errorx.New(errorx.CodeInvalidArgument, "profile photo exceeds the 5MB limit")
	}

	name := fmt.Sprintf("profile_%s_%s%s", principal.ID, uuid.NewString(), ext)
	url, err := s.uploader.Store("profiles", name, data)
	if err != nil {
		zap.L().Error("storing profile photo failed", zap.Error(err))
		return "", errorx.ErrInternal
	}

	member, err := s.repos.Member.FindByID(principal.ID)
	if err != nil {
		// The row vanished between auth and upload; discard the orphan.
		if delErr := s.uploader.Delete(url); delErr != nil {
			zap.L().Warn("discarding orphaned photo failed", zap.Error(delErr))
		}
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return "", errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.Error(err))
		return "", errorx.ErrInternal
	}

	old := member.PhotoURL
	if err := s.repos.Member.UpdateFields(principal.ID, map[string]any{"photo_url": url}); err != nil {
		zap.L().Error("recording profile photo failed", zap.Error(err))
		return "", errorx.ErrInternal
	}
	if old != "" {
		if err := s.uploader.Delete(old); err != nil {
			zap.L().Warn("removing previous photo failed", zap.String("url", old), zap.Error(err))
		}
	}
	return url, nil
}

// DeleteProfilePhoto clears the caller's photo reference. The stored
// object's removal is best-effort; the reference is cleared regardless.
func (s *memberService) DeleteProfilePhoto(principal model.Principal) error {
	member, err := s.repos.Member.FindByID(principal.ID)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.Error(err))
		return errorx.ErrInternal
	}
	if member.PhotoURL != "" {
		if err := s.uploader.Delete(member.PhotoURL); err != nil {
			zap.L().Warn("removing photo failed", zap.String("url", member.PhotoURL), zap.Error(err))
		}
	}
	if err := s.repos.Member.UpdateFields(principal.ID, map[string]any{"photo_url": ""}); err != nil {
		zap.L().Error("clearing photo reference failed", zap.Error(err))
		return errorx.ErrInternal
	}
	return nil
}
