package request

// CreateContributionRequest carries an admin ledger entry creation.
type CreateContributionRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Month    string `json:"month" binding:"required"`
	Amount   int    `json:"amount" binding:"required,gt=0"`
	Status   string `json:"status" binding:"omitempty,oneof=Pending Paid"`
}
