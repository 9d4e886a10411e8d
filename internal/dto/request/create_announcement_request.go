package request

// CreateAnnouncementRequest carries an admin announcement post.
// The announcement date is stamped server-side.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=normal high"`
}
