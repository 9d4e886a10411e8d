package repository

import (
	"strconv"
	"strings"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates the member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindByID looks a member up by club identifier.
func (r *memberRepository) FindByID(id string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "member %s not found", id)
	}
	return &member, nil
}

// FindByEmail looks a member up by login email.
func (r *memberRepository) FindByEmail(email string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "email = ?", email).Error; err != nil {
		return nil, wrapDBErrorf(err, "member with email %s not found", email)
	}
	return &member, nil
}

// FindAllOrdered returns every member ordered by identifier.
func (r *memberRepository) FindAllOrdered() ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Order("id").Find(&members).Error; err != nil {
		return nil, wrapDBError(err, "listing members")
	}
	return members, nil
}

// TakenSequenceNumbers returns the trailing 3-digit sequence numbers of all
// existing member identifiers. Parsing happens here rather than in SQL so the
// scan behaves identically on every engine the store runs on.
func (r *memberRepository) TakenSequenceNumbers() ([]int, error) {
	var ids []string
	if err := r.db.Model(&model.Member{}).Pluck("id", &ids).Error; err != nil {
		return nil, wrapDBError(err, "scanning member identifiers")
	}
	taken := make([]int, 0, len(ids))
	for _, id := range ids {
		if len(id) < 3 {
			continue
		}
		n, err := strconv.Atoi(id[len(id)-3:])
		if err != nil {
			continue // malformed legacy id, never blocks allocation
		}
		taken = append(taken, n)
	}
	return taken, nil
}

// Count returns the number of member rows.
func (r *memberRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Member{}).Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "counting members")
	}
	return count, nil
}

// Create inserts a member row. A unique-constraint violation surfaces as
// Conflict, naming email or identifier depending on the violated constraint.
func (r *memberRepository) Create(member *model.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		if isDuplicateKey(err) {
			if strings.Contains(err.Error(), "email") {
				return errorx.Wrap(err, errorx.CodeConflict, "email already exists")
			}
			return errorx.Wrap(err, errorx.CodeConflict, "member ID already exists")
		}
		return wrapDBError(err, "creating member")
	}
	return nil
}

// Save overwrites a member row.
func (r *memberRepository) Save(member *model.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		return wrapDBError(err, "updating member")
	}
	return nil
}

// UpdateFields patches the given columns of one member row.
func (r *memberRepository) UpdateFields(id string, fields map[string]any) error {
	if err := r.db.Model(&model.Member{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		if isDuplicateKey(err) {
			return errorx.Wrap(err, errorx.CodeConflict, "email already exists")
		}
		return wrapDBErrorf(err, "updating member %s", id)
	}
	return nil
}

// Delete removes a member row.
func (r *memberRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Member{}, "id = ?", id).Error; err != nil {
		return wrapDBErrorf(err, "deleting member %s", id)
	}
	return nil
}
