package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks the fulfilment state of a single order item.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCanceled  OrderStatus = "CANCELED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

// OrderStats tallies order items by fulfilment status.
type OrderStats map[OrderStatus]int

// OrderItem is one product line within an order. Items from multiple
// providers can share an order, so each line carries its own provider
// reference and fulfilment status.
type OrderItem struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	ProviderID    uuid.UUID // The Service fulfilling this line.
	ProviderTitle string    // Denormalized storefront title at order time.
	Name          string    // Denormalized product name at order time.
	Price         float64
	Quantity      int
	Cost          float64 // Price * Quantity at order time.
	Status        OrderStatus
}

// Order is a buyer's purchase request with delivery details.
type Order struct {
	ID             uuid.UUID
	ClientID       uuid.UUID // The buyer's User ID.
	Items          []OrderItem
	Phone          string
	State          string
	Address        string
	NearestBusStop string
	DeliveryDate   *time.Time // Set by the provider once agreed; nil until then.
	TotalCost      float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (o *Order) CursorTime() time.Time {
	return o.CreatedAt
}

// ItemStats folds the order items into a status-keyed tally. Every known
// status is present in the result, zero-valued when unused.
func (o *Order) ItemStats() OrderStats {
	return FoldOrderStats(o.Items)
}

// FoldOrderStats tallies items by fulfilment status. Every known status is
// present in the result, zero-valued when unused.
func FoldOrderStats(items []OrderItem) OrderStats {
	stats := OrderStats{
		StatusPending:   0,
		StatusShipped:   0,
		StatusDelivered: 0,
		StatusCanceled:  0,
	}
	for _, item := range items {
		stats[item.Status]++
	}

	return stats
}

// TotalItemCost sums the line costs. Used server-side so a client can never
// dictate the total it pays.
func (o *Order) TotalItemCost() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Cost
	}

	return total
}
