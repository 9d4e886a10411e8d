// Package service defines the business layer.
// All service interfaces live in this file; implementations sit in their own
// subpackages and are aggregated by provider.go.
package service

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/request"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
)

// AuthService handles credential verification and session issuance.
type AuthService interface {
	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password fail with the identical error.
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// ChangePassword re-verifies the current password before replacing the
	// stored hash.
	ChangePassword(principal model.Principal, req request.ChangePasswordRequest) error
}

// MemberService handles the member registry.
type MemberService interface {
	// ListMembers returns every member ordered by identifier. Admin only.
	ListMembers(principal model.Principal) ([]model.Member, error)
	// GetMember returns one member. Non-admins may only fetch themselves.
	GetMember(principal model.Principal, id string) (*model.Member, error)
	// CreateMember allocates the lowest free member number and inserts the
	// row, atomically with respect to concurrent creations. Admin only.
	CreateMember(principal model.Principal, req request.CreateMemberRequest) (string, error)
	// UpdateMember overwrites a member's mutable attributes. Admin only.
	// A missing id is a silent no-op.
	UpdateMember(principal model.Principal, id string, req request.UpdateMemberRequest) error
	// DeleteMember removes a member and all of its contributions. Admin only.
	DeleteMember(principal model.Principal, id string) error
	// UploadProfilePhoto stores a photo and records its URL on the caller's
	// own row.
	UploadProfilePhoto(principal model.Principal, data []byte, mimeType string) (string, error)
	// DeleteProfilePhoto clears the caller's photo reference. The remote
	// delete is best-effort.
	DeleteProfilePhoto(principal model.Principal) error
}

// ContributionService handles the contribution ledger.
type ContributionService interface {
	// ListContributions returns all rows for admins, own rows otherwise,
	// newest id first.
	ListContributions(principal model.Principal) ([]model.Contribution, error)
	// CreateContribution inserts a ledger row. Admin only. Paid rows get
	// the current timestamp as payment date.
	CreateContribution(principal model.Principal, req request.CreateContributionRequest) (uint, error)
	// UpdateStatus transitions a row's status, recomputing the payment
	// date, and returns the updated row. Admin only.
	UpdateStatus(principal model.Principal, id uint, status string) (*model.Contribution, error)
	// AttachProof validates, stores and records a proof-of-payment upload,
	// resetting the row's status to Pending for re-review.
	AttachProof(principal model.Principal, id uint, data []byte, mimeType, originalName string) (*model.Contribution, error)
}

// AnnouncementService handles the announcement board.
type AnnouncementService interface {
	// ListAnnouncements returns all announcements, newest date first.
	ListAnnouncements() ([]model.Announcement, error)
	// CreateAnnouncement posts an announcement dated today. Admin only.
	CreateAnnouncement(principal model.Principal, req request.CreateAnnouncementRequest) (uint, error)
	// DeleteAnnouncement removes an announcement. Admin only.
	DeleteAnnouncement(principal model.Principal, id uint) error
}

// ChatService handles chat history and message lifecycle. Broadcasts to
// live connections ride on the relay hub the service is constructed with.
type ChatService interface {
	// ListMessages returns the most recent limit messages after offset in
	// chronological order, senders joined.
	ListMessages(limit, offset int) ([]respond.ChatMessageRespond, error)
	// PostMessage persists a message and broadcasts it to every live
	// connection, the sender included.
	PostMessage(principal model.Principal, content string) (*respond.ChatMessageRespond, error)
	// DeleteMessage removes a message (sender or admin only) and broadcasts
	// the deletion.
	DeleteMessage(principal model.Principal, id uint) error
}

// StatsService derives read-only savings figures from the ledger.
type StatsService interface {
	// GetStats aggregates a member's paid contributions. Gated like
	// MemberService.GetMember.
	GetStats(principal model.Principal, memberID string) (*respond.StatsRespond, error)
}
