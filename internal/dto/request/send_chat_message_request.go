package request

// SendChatMessageRequest carries a chat message post. Whitespace-only
// content is rejected by the service, not the binding layer.
type SendChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
