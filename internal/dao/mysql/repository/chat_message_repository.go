package repository

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"

	"gorm.io/gorm"
)

type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates the chat message repository.
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// FindByID looks a message up by id, sender preloaded.
func (r *chatMessageRepository) FindByID(id uint) (*model.ChatMessage, error) {
	var message model.ChatMessage
	if err := r.db.Preload("Sender").First(&message, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "chat message %d not found", id)
	}
	return &message, nil
}

// FindRecent returns the most recent limit messages after offset, newest
// first. Senders are preloaded so history carries display name and photo.
func (r *chatMessageRepository) FindRecent(limit, offset int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := r.db.Preload("Sender").Order("id DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, wrapDBError(err, "listing chat messages")
	}
	return messages, nil
}

// Create inserts a message row.
func (r *chatMessageRepository) Create(message *model.ChatMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "creating chat message")
	}
	return nil
}

// DeleteBySender removes every message posted by a member.
func (r *chatMessageRepository) DeleteBySender(memberID string) error {
	if err := r.db.Where("sender_id = ?", memberID).Delete(&model.ChatMessage{}).Error; err != nil {
		return wrapDBErrorf(err, "deleting chat messages of %s", memberID)
	}
	return nil
}

// Delete removes a message row.
func (r *chatMessageRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ChatMessage{}, id).Error; err != nil {
		return wrapDBErrorf(err, "deleting chat message %d", id)
	}
	return nil
}
