package respond

// Server-to-client events on the real-time channel.
const (
	EventUsersOnline    = "users_online"
	EventUserTyping     = "user_typing"
	EventUserStopTyping = "user_stop_typing"
	EventNewMessage     = "new_message"
	EventMessageDeleted = "message_deleted"
)

// ChatEventRespond is one outbound frame on the websocket channel.
// Event selects the shape; unused fields are omitted from the JSON.
type ChatEventRespond struct {
	Event string `json:"event"`

	// Count of connected members, for users_online. A pointer so a count
	// of zero still serialises when the last member disconnects.
	Count *int `json:"count,omitempty"`

	// Typing notifications.
	MemberID string `json:"memberId,omitempty"`
	Name     string `json:"name,omitempty"`

	// Full message payload, for new_message.
	Message *ChatMessageRespond `json:"message,omitempty"`

	// Deleted message id, for message_deleted.
	MessageID uint `json:"messageId,omitempty"`
}
