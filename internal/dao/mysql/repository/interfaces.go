// Package repository defines the data access layer.
// Repository interfaces live in this file; implementations sit in their own
// files, one per entity. Business logic never touches gorm directly.
package repository

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
)

// MemberRepository provides member registry persistence.
type MemberRepository interface {
	// FindByID looks a member up by club identifier.
	FindByID(id string) (*model.Member, error)
	// FindByEmail looks a member up by login email.
	FindByEmail(email string) (*model.Member, error)
	// FindAllOrdered returns every member ordered by identifier.
	FindAllOrdered() ([]model.Member, error)
	// TakenSequenceNumbers returns the trailing 3-digit sequence numbers of
	// all existing member identifiers.
	TakenSequenceNumbers() ([]int, error)
	// Count returns the number of member rows.
	Count() (int64, error)
	// Create inserts a member row. Unique-constraint violations come back
	// as Conflict errors distinguishing email from identifier.
	Create(member *model.Member) error
	// Save overwrites a member row.
	Save(member *model.Member) error
	// UpdateFields patches the given columns of one member row.
	// Missing ids are a silent no-op, mirroring the update endpoint contract.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a member row.
	Delete(id string) error
}

// ContributionRepository provides ledger persistence.
type ContributionRepository interface {
	// FindByID looks a contribution up by numeric id.
	FindByID(id uint) (*model.Contribution, error)
	// FindAllDesc returns all contributions, newest id first.
	FindAllDesc() ([]model.Contribution, error)
	// FindByMemberDesc returns one member's contributions, newest id first.
	FindByMemberDesc(memberID string) ([]model.Contribution, error)
	// FindByMember returns one member's contributions in insertion order.
	FindByMember(memberID string) ([]model.Contribution, error)
	// Create inserts a contribution row.
	Create(contribution *model.Contribution) error
	// Save overwrites a contribution row.
	Save(contribution *model.Contribution) error
	// DeleteByMember removes every contribution owned by a member.
	DeleteByMember(memberID string) error
}

// AnnouncementRepository provides announcement persistence.
type AnnouncementRepository interface {
	// FindAllByDateDesc returns all announcements, newest date first.
	FindAllByDateDesc() ([]model.Announcement, error)
	// Create inserts an announcement row.
	Create(announcement *model.Announcement) error
	// Delete removes an announcement row. Missing ids are a no-op.
	Delete(id uint) error
}

// ChatMessageRepository provides chat history persistence.
type ChatMessageRepository interface {
	// FindByID looks a message up by id, sender preloaded.
	FindByID(id uint) (*model.ChatMessage, error)
	// FindRecent returns the most recent limit messages after offset,
	// newest first, senders preloaded.
	FindRecent(limit, offset int) ([]model.ChatMessage, error)
	// Create inserts a message row.
	Create(message *model.ChatMessage) error
	// DeleteBySender removes every message posted by a member.
	DeleteBySender(memberID string) error
	// Delete removes a message row.
	Delete(id uint) error
}
