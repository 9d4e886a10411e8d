package repository

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"

	"gorm.io/gorm"
)

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates the announcement repository.
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// FindAllByDateDesc returns all announcements, newest date first.
func (r *announcementRepository) FindAllByDateDesc() ([]model.Announcement, error) {
	var announcements []model.Announcement
	if err := r.db.Order("announcement_date DESC").Find(&announcements).Error; err != nil {
		return nil, wrapDBError(err, "listing announcements")
	}
	return announcements, nil
}

// Create inserts an announcement row.
func (r *announcementRepository) Create(announcement *model.Announcement) error {
	if err := r.db.Create(announcement).Error; err != nil {
		return wrapDBError(err, "creating announcement")
	}
	return nil
}

// Delete removes an announcement row. Missing ids are a no-op.
func (r *announcementRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Announcement{}, id).Error; err != nil {
		return wrapDBErrorf(err, "deleting announcement %d", id)
	}
	return nil
}
