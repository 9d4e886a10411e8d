// Package service defines the business layer.
// This file aggregates the service instances for dependency injection.
package service

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/storage"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/announcement"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/auth"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/chat"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/contribution"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/member"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/stats"
)

// Services aggregates every service instance. The handler layer receives
// this struct and never constructs services itself.
type Services struct {
	Auth         AuthService
	Member       MemberService
	Contribution ContributionService
	Announcement AnnouncementService
	Chat         ChatService
	Stats        StatsService
}

// NewServices wires every service onto the repository layer, the object
// store and the chat relay hub.
func NewServices(repos *repository.Repositories, uploader storage.Uploader, hub *chat.Hub) *Services {
	return &Services{
		Auth:         auth.NewAuthService(repos),
		Member:       member.NewMemberService(repos, uploader),
		Contribution: contribution.NewContributionService(repos, uploader),
		Announcement: announcement.NewAnnouncementService(repos),
		Chat:         chat.NewChatService(repos, hub),
		Stats:        stats.NewStatsService(repos),
	}
}
