package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// ServiceRepository defines the operations for storefront persistence.
// Listings are returned in ascending creation order so they can be paginated.
type ServiceRepository interface {
	// FindByID retrieves a single service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByOwner retrieves the service owned by a user, if any.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Service, error)

	// ListWithProducts returns all services that have at least one product,
	// ordered by creation time ascending.
	ListWithProducts(ctx context.Context) ([]entity.Service, error)

	// Upsert creates the owner's service or updates it in place.
	Upsert(ctx context.Context, svc *entity.Service) error

	// CountProducts returns the number of products currently listed by a service.
	CountProducts(ctx context.Context, serviceID uuid.UUID) (int64, error)
}
