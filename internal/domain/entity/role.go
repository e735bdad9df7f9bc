// Package entity contains the core business objects of the project.
package entity

// Role represents the role class of an account. It doubles as the token
// audience claim, so the values match the wire form exactly.
type Role string

const (
	// RoleUser indicates a regular buyer or provider account.
	RoleUser Role = "USER"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString parses a role string, defaulting to RoleUser for unknown input.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
