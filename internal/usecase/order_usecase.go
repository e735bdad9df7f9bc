package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
)

// OrderItemInput is one product line of a new order. Price and cost are
// recomputed server side from the catalog, never taken from the client.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	ClientID       uuid.UUID        `json:"-"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Phone          string           `json:"phone" validate:"required"`
	State          string           `json:"state" validate:"required"`
	Address        string           `json:"address" validate:"required"`
	NearestBusStop string           `json:"nearestBusStop"`
}

// UpdateItemStatusInput moves one sold item to a new fulfilment status.
type UpdateItemStatusInput struct {
	OwnerID uuid.UUID `json:"-"`
	ItemID  uuid.UUID `json:"itemId" validate:"required"`
	Status  string    `json:"status" validate:"required"`
}

// SetDeliveryDateInput records the promised delivery date of an order.
type SetDeliveryDateInput struct {
	OwnerID      uuid.UUID `json:"-"`
	OrderID      uuid.UUID `json:"orderId" validate:"required"`
	DeliveryDate time.Time `json:"deliveryDate" validate:"required"`
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	// PlaceOrder creates an order from catalog prices and returns it.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// MyOrders pages through the orders the caller placed as a buyer.
	MyOrders(ctx context.Context, clientID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Order], error)

	// MyRequests pages through the orders containing items the caller sells.
	MyRequests(ctx context.Context, ownerID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Order], error)

	// UpdateItemStatus moves one sold item to a new fulfilment status.
	UpdateItemStatus(ctx context.Context, input *UpdateItemStatusInput) error

	// SetDeliveryDate records the promised delivery date of an order the
	// caller is fulfilling.
	SetDeliveryDate(ctx context.Context, input *SetDeliveryDateInput) error

	// Stats tallies the caller's sold items by fulfilment status.
	Stats(ctx context.Context, ownerID uuid.UUID) (entity.OrderStats, error)
}
