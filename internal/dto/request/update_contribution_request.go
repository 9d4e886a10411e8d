package request

// UpdateContributionRequest carries an admin status transition on a ledger
// row. The payment date is recomputed from the new status server-side.
type UpdateContributionRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Paid"`
}
