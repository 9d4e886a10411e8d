// Package repository defines the data access layer.
// This file aggregates the repositories for dependency injection.
package repository

import (
	"gorm.io/gorm"
)

// Repositories aggregates every repository instance. The service layer
// receives this struct and never holds a *gorm.DB of its own.
type Repositories struct {
	db           *gorm.DB
	Member       MemberRepository
	Contribution ContributionRepository
	Announcement AnnouncementRepository
	ChatMessage  ChatMessageRepository
}

// NewRepositories wires every repository onto one database handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Member:       NewMemberRepository(db),
		Contribution: NewContributionRepository(db),
		Announcement: NewAnnouncementRepository(db),
		ChatMessage:  NewChatMessageRepository(db),
	}
}

// Transaction runs fn inside a single database transaction. fn receives a
// Repositories bound to the transaction handle; any error rolls everything
// back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
