package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAll returns every product ordered by creation time ascending.
	ListAll(ctx context.Context) ([]entity.Product, error)

	// ListByProvider returns the products of one service ordered by creation
	// time ascending.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Product, error)

	// ListCategoriesByProvider returns the distinct categories of one
	// service's products.
	ListCategoriesByProvider(ctx context.Context, providerID uuid.UUID) ([]string, error)

	// ExistsByProviderAndName reports whether the provider already lists a
	// product under the given name.
	ExistsByProviderAndName(ctx context.Context, providerID uuid.UUID, name string) (bool, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the mutable fields of a product owned by the provider.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product owned by the provider.
	Delete(ctx context.Context, providerID, productID uuid.UUID) error
}
