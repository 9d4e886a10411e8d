// Package model defines the database entities.
// This file defines the authenticated principal. It is not persisted; it is
// the token-derived identity every service operation is gated on.
package model

// Roles a member can hold.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Principal is the authenticated caller as decoded from the session token.
type Principal struct {
	ID    string
	Email string
	Role  string
	Name  string
	Photo string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
