// Package model defines the database entities.
// This file defines the chat message model.
package model

import "time"

// ChatMessage is one message in the club chat. Immutable once created
// except for deletion.
// Maps to the chat_messages table.
type ChatMessage struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// SenderID references the member who posted the message.
	SenderID string `gorm:"column:sender_id;type:varchar(20);index;not null" json:"senderId"`
	Sender   Member `gorm:"foreignKey:SenderID" json:"-"`

	// Content is the message text. Empty/whitespace-only text is rejected
	// before a row is ever created.
	Content string `gorm:"column:content;type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName pins the table name.
func (ChatMessage) TableName() string {
	return "chat_messages"
}
