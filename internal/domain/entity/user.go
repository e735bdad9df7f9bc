// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. A user may additionally own a provider
// Service, which is what lets them publish product listings.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // The public display handle, unique across the platform.
	Email        string    // The login identifier; never exposed to other users.
	PasswordHash string    // Hex-encoded scrypt derivation of password+salt.
	Salt         string    // Hex-encoded 32-byte random salt, regenerated on every password set.
	Role         Role      // Role class stamped into the token audience claim.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (u *User) CursorTime() time.Time {
	return u.CreatedAt
}
