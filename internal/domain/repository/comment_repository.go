package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// CommentRepository defines the operations for comment persistence. A comment
// topic is any commentable entity, currently services and products.
type CommentRepository interface {
	// ListByTopic returns the comments under a topic, creation time ascending.
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment written by the poster.
	Delete(ctx context.Context, posterID, commentID uuid.UUID) error
}
