package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldOrderStats(t *testing.T) {
	t.Run("tallies items by status", func(t *testing.T) {
		items := []OrderItem{
			{Status: StatusPending},
			{Status: StatusPending},
			{Status: StatusDelivered},
			{Status: StatusCanceled},
		}

		stats := FoldOrderStats(items)

		assert.Equal(t, 2, stats[StatusPending])
		assert.Equal(t, 0, stats[StatusShipped])
		assert.Equal(t, 1, stats[StatusDelivered])
		assert.Equal(t, 1, stats[StatusCanceled])
	})

	t.Run("every status present for no items", func(t *testing.T) {
		stats := FoldOrderStats(nil)

		assert.Len(t, stats, 4)
		for _, status := range []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCanceled} {
			count, ok := stats[status]
			assert.True(t, ok)
			assert.Zero(t, count)
		}
	})
}

func TestOrderTotalItemCost(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Price: 20, Quantity: 4, Cost: 80},
			{Price: 5, Quantity: 3, Cost: 15},
		},
	}

	assert.InDelta(t, 95.0, order.TotalItemCost(), 1e-9)
	assert.Zero(t, (&Order{}).TotalItemCost())
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, OrderStatus("UNKNOWN").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
