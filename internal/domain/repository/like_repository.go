package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// LikeRepository defines the operations for favorite persistence. One like
// row exists per likeable entity and accumulates the users that favor it.
type LikeRepository interface {
	// FindBySelection retrieves the like row of an entity, if any.
	FindBySelection(ctx context.Context, selectionID uuid.UUID) (*entity.Like, error)

	// Upsert creates the like row of an entity or replaces its client list.
	Upsert(ctx context.Context, like *entity.Like) error
}
