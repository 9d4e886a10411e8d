// Package announcement implements the club announcement board.
package announcement

import (
	"time"

	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// announcementService implements service.AnnouncementService.
type announcementService struct {
	repos *repository.Repositories
}

// NewAnnouncementService wires the board onto the repository layer.
func NewAnnouncementService(repos *repository.Repositories) *announcementService {
	return &announcementService{repos: repos}
}

// ListAnnouncements returns every announcement, newest date first. Open to
// every authenticated member.
func (s *announcementService) ListAnnouncements() ([]model.Announcement, error) {
	rows, err := s.repos.Announcement.FindAllByDateDesc()
	if err != nil {
		zap.L().Error("listing announcements failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}
	return rows, nil
}

// CreateAnnouncement posts an announcement dated today. Admin only.
func (s *announcementService) CreateAnnouncement(principal model.Principal, req request.CreateAnnouncementRequest) (uint, error) {
	if !principal.IsAdmin() {
		return 0, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	row := &model.Announcement{
		Title:            req.Title,
		Message:          req.Message,
		AnnouncementDate: time.Now(),
		Priority:         priority,
	}
	if err := s.repos.Announcement.Create(row); err != nil {
		zap.L().Error("creating announcement failed", zap.Error(err))
		return 0, errorx.ErrInternal
	}
	return row.ID, nil
}

// DeleteAnnouncement removes an announcement. Admin only; a missing id is
// a no-op, matching the idempotent delete contract.
func (s *announcementService) DeleteAnnouncement(principal model.Principal, id uint) error {
	if !principal.IsAdmin() {
		return errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if err := s.repos.Announcement.Delete(id); err != nil {
		zap.L().Error("deleting announcement failed", zap.Uint("id", id), zap.Error(err))
		return errorx.ErrInternal
	}
	return nil
}
