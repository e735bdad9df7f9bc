package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLikeAddRemove(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	like := &Like{SelectionID: uuid.New()}

	like.Add(userA)
	like.Add(userB)
	assert.Equal(t, 2, like.Count())

	// Adding again must not duplicate
	like.Add(userA)
	assert.Equal(t, 2, like.Count())

	like.Remove(userA)
	assert.Equal(t, 1, like.Count())
	assert.Equal(t, []uuid.UUID{userB}, like.HappyClients)

	// Removing an absent user is a no-op
	like.Remove(userA)
	assert.Equal(t, 1, like.Count())
}

func TestLikeCountNil(t *testing.T) {
	var like *Like
	assert.Zero(t, like.Count())
}
