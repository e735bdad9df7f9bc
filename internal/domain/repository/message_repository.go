package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// MessageRepository defines the operations for direct message persistence.
type MessageRepository interface {
	// ListConversation returns the messages exchanged between two users,
	// creation time ascending.
	ListConversation(ctx context.Context, userID, otherID uuid.UUID) ([]entity.Message, error)

	// ListCorrespondents returns the users the given user has exchanged
	// messages with, together with their unseen message counts.
	ListCorrespondents(ctx context.Context, userID uuid.UUID) ([]entity.Correspondent, error)

	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// MarkSeen flags every message sent by otherID to userID as seen.
	MarkSeen(ctx context.Context, userID, otherID uuid.UUID) error
}
