package respond

import "time"

// ChatMessageRespond is one chat message joined with its sender's display
// fields, as returned by history and pushed on the real-time channel.
type ChatMessageRespond struct {
	ID          uint      `json:"id"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	SenderPhoto string    `json:"senderPhoto,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}
