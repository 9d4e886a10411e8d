package repository

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"

	"gorm.io/gorm"
)

type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates the contribution repository.
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// FindByID looks a contribution up by numeric id.
func (r *contributionRepository) FindByID(id uint) (*model.Contribution, error) {
	var contribution model.Contribution
	if err := r.db.First(&contribution, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "contribution %d not found", id)
	}
	return &contribution, nil
}

// FindAllDesc returns all contributions, newest id first.
func (r *contributionRepository) FindAllDesc() ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Order("id DESC").Find(&contributions).Error; err != nil {
		return nil, wrapDBError(err, "listing contributions")
	}
	return contributions, nil
}

// FindByMemberDesc returns one member's contributions, newest id first.
func (r *contributionRepository) FindByMemberDesc(memberID string) ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Where("member_id = ?", memberID).Order("id DESC").Find(&contributions).Error; err != nil {
		return nil, wrapDBErrorf(err, "listing contributions for member %s", memberID)
	}
	return contributions, nil
}

// FindByMember returns one member's contributions in insertion order.
func (r *contributionRepository) FindByMember(memberID string) ([]model.Contribution, error) {
	var contributions []model.Contribution
	if err := r.db.Where("member_id = ?", memberID).Find(&contributions).Error; err != nil {
		return nil, wrapDBErrorf(err, "listing contributions for member %s", memberID)
	}
	return contributions, nil
}

// Create inserts a contribution row.
func (r *contributionRepository) Create(contribution *model.Contribution) error {
	if err := r.db.Create(contribution).Error; err != nil {
		return wrapDBError(err, "creating contribution")
	}
	return nil
}

// Save overwrites a contribution row.
func (r *contributionRepository) Save(contribution *model.Contribution) error {
	if err := r.db.Save(contribution).Error; err != nil {
		return wrapDBError(err, "updating contribution")
	}
	return nil
}

// DeleteByMember removes every contribution owned by a member.
func (r *contributionRepository) DeleteByMember(memberID string) error {
	if err := r.db.Delete(&model.Contribution{}, "member_id = ?", memberID).Error; err != nil {
		return wrapDBErrorf(err, "deleting contributions for member %s", memberID)
	}
	return nil
}
