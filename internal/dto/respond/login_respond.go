package respond

import (
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
)

// LoginRespond carries a fresh session token and the authenticated member.
// The member's password hash is never serialised.
type LoginRespond struct {
	Token  string       `json:"token"`
	Member model.Member `json:"member"`
}
