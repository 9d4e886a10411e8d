package chat

import (
	"strings"

	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/constants"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// chatService implements service.ChatService.
type chatService struct {
	repos *repository.Repositories
	hub   *Hub
}

// NewChatService wires the chat service onto the repository layer and the
// relay hub it broadcasts through.
func NewChatService(repos *repository.Repositories, hub *Hub) *chatService {
	return &chatService{repos: repos, hub: hub}
}

// ListMessages returns up to limit messages after offset in chronological
// order, senders joined. A non-positive limit falls back to the default
// history window.
func (s *chatService) ListMessages(limit, offset int) ([]respond.ChatMessageRespond, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_CHAT_HISTORY_LIMIT
	}
	if offset < 0 {
		offset = 0
	}
	messages, err := s.repos.ChatMessage.FindRecent(limit, offset)
	if err != nil {
		zap.L().Error("listing chat history failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}

	// The store returns newest first; the client renders oldest first.
	out := make([]respond.ChatMessageRespond, len(messages))
	for i, m := range messages {
		out[len(messages)-1-i] = toMessageRespond(&m)
	}
	return out, nil
}

// PostMessage persists a message and pushes it to every live connection,
// the sender's included.
func (s *chatService) PostMessage(principal model.Principal, content string) (*respond.ChatMessageRespond, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errorx.New(errorx.CodeInvalidArgument, "message content is required")
	}

	message := &model.ChatMessage{
		SenderID: principal.ID,
		Content:  content,
	}
	if err := s.repos.ChatMessage.Create(message); err != nil {
		zap.L().Error("storing chat message failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}

	// Reload with the sender joined so the broadcast carries display fields.
	stored, err := s.repos.ChatMessage.FindByID(message.ID)
	if err != nil {
		zap.L().Error("reloading chat message failed", zap.Error(err))
		return nil, errorx.ErrInternal
	}

	out := toMessageRespond(stored)
	s.hub.Broadcast(respond.ChatEventRespond{
		Event:   respond.EventNewMessage,
		Message: &out,
	})
	return &out, nil
}

// DeleteMessage removes a message and pushes the deletion to every live
// connection. Only the sender or an admin may delete.
func (s *chatService) DeleteMessage(principal model.Principal, id uint) error {
	message, err := s.repos.ChatMessage.FindByID(id)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeNotFound, "message not found")
		}
		zap.L().Error("loading chat message failed", zap.Error(err))
		return errorx.ErrInternal
	}
	if message.SenderID != principal.ID && !principal.IsAdmin() {
		return errorx.New(errorx.CodeForbidden, "only the sender or an admin can delete a message")
	}

	if err := s.repos.ChatMessage.Delete(id); err != nil {
		zap.L().Error("deleting chat message failed", zap.Error(err))
		return errorx.ErrInternal
	}
	s.hub.Broadcast(respond.ChatEventRespond{
		Event:     respond.EventMessageDeleted,
		MessageID: id,
	})
	return nil
}

// toMessageRespond joins a message with its sender's display fields.
func toMessageRespond(m *model.ChatMessage) respond.ChatMessageRespond {
	return respond.ChatMessageRespond{
		ID:          m.ID,
		SenderID:    m.SenderID,
		SenderName:  m.Sender.Name,
		SenderPhoto: m.Sender.PhotoURL,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}
