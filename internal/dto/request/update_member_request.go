package request

// UpdateMemberRequest carries an admin full-field overwrite of a member's
// mutable attributes. Password and role are not editable through this path.
type UpdateMemberRequest struct {
	Name          string `json:"name" binding:"required"`
	IDNumber      string `json:"idNumber" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"required,email"`
	Status        string `json:"status"`
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	BranchCode    string `json:"branchCode"`
}
