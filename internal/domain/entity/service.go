package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a provider's storefront. Every product listing, order line and
// comment in the marketplace hangs off one of these.
type Service struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The User who operates this storefront.
	Title       string    // Public storefront name.
	LogoCID     string    // Content identifier of the logo asset.
	Description string
	State       string // Region the provider operates from.
	MaxProduct  int    // Cap on concurrent product listings for this storefront.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (s *Service) CursorTime() time.Time {
	return s.CreatedAt
}

// SearchTerms lists the fields matched by connection search filters.
func (s *Service) SearchTerms() []string {
	return []string{s.Title, s.State}
}
