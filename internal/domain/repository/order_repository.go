package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// OrderRepository defines the operations for order persistence. An order is
// stored with its items; item-level updates address a single row.
type OrderRepository interface {
	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByClient returns the orders placed by a user, creation time ascending.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Order, error)

	// ListByProvider returns the orders containing at least one item sold by
	// the provider, creation time ascending.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Order, error)

	// Create persists a new order and its items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateItemStatus moves one item of an order to a new status, scoped to
	// the provider that sold it.
	UpdateItemStatus(ctx context.Context, providerID, itemID uuid.UUID, status entity.OrderStatus) error

	// SetDeliveryDate records the promised delivery date of an order.
	SetDeliveryDate(ctx context.Context, orderID uuid.UUID, date time.Time) error

	// ListItemsByProvider returns every item the provider has sold across all
	// orders. Status statistics are folded from this list in memory.
	ListItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.OrderItem, error)
}
