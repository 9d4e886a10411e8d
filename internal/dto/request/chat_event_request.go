package request

// Client-to-server events on the real-time channel.
const (
	EventJoinChat   = "join_chat"
	EventTyping     = "typing"
	EventStopTyping = "stop_typing"
)

// ChatEventRequest is one inbound frame on the websocket channel.
// Event selects the action; the remaining fields are event-specific.
type ChatEventRequest struct {
	Event    string `json:"event"`
	MemberID string `json:"memberId,omitempty"`
	Name     string `json:"name,omitempty"`
}
