package request

// ChangePasswordRequest carries a self-service password change.
// The minimum length on the new password is enforced here; the current
// password is re-verified against the stored hash in the service.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
