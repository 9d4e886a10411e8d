// Package handler provides the HTTP request handlers.
// This file aggregates the handlers for dependency injection; the router
// layer reaches every handler through this struct.
package handler

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/chat"
)

// Handlers aggregates every handler instance.
type Handlers struct {
	Auth         *AuthHandler
	Member       *MemberHandler
	Contribution *ContributionHandler
	Announcement *AnnouncementHandler
	Chat         *ChatHandler
	Stats        *StatsHandler
}

// NewHandlers creates every handler, injecting its service.
func NewHandlers(svc *service.Services, hub *chat.Hub) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.Auth),
		Member:       NewMemberHandler(svc.Member),
		Contribution: NewContributionHandler(svc.Contribution),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Chat:         NewChatHandler(svc.Chat, hub),
		Stats:        NewStatsHandler(svc.Stats),
	}
}
