package respond

// CreatedRespond acknowledges a creation with the new identifier.
// ID is a string for members (club identifier) and numeric elsewhere.
type CreatedRespond struct {
	ID      any    `json:"id"`
	Message string `json:"message"`
}
