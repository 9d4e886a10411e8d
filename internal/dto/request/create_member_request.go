package request

// CreateMemberRequest carries the fields for an admin member creation.
// Password is optional; when absent the default club password is used.
type CreateMemberRequest struct {
	Name          string `json:"name" binding:"required"`
	IDNumber      string `json:"idNumber" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password"`
	Status        string `json:"status"`
	Role          string `json:"role" binding:"omitempty,oneof=admin member"`
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	BranchCode    string `json:"branchCode"`
}
