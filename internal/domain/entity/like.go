package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Like records which users favor a provider's storefront. One record per
// storefront; membership in HappyClients is set-like and idempotent.
type Like struct {
	ID           uuid.UUID
	SelectionID  uuid.UUID   // The Service being favored.
	HappyClients []uuid.UUID // Users who marked this storefront as a favorite.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Add inserts the user into HappyClients if not already present.
func (l *Like) Add(userID uuid.UUID) {
	if !slices.Contains(l.HappyClients, userID) {
		l.HappyClients = append(l.HappyClients, userID)
	}
}

// Remove deletes the user from HappyClients if present.
func (l *Like) Remove(userID uuid.UUID) {
	l.HappyClients = slices.DeleteFunc(l.HappyClients, func(id uuid.UUID) bool {
		return id == userID
	})
}

// Count reports the number of users favoring the storefront.
func (l *Like) Count() int {
	if l == nil {
		return 0
	}

	return len(l.HappyClients)
}
