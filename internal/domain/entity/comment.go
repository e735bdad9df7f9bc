package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a post left on a provider's storefront.
type Comment struct {
	ID        uuid.UUID
	TopicID   uuid.UUID // The Service being commented on.
	PosterID  uuid.UUID // The User who wrote the post.
	Post      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (c *Comment) CursorTime() time.Time {
	return c.CreatedAt
}
