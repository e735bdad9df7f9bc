package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
)

// SendMessageInput sends a direct message to another user.
type SendMessageInput struct {
	SenderID   uuid.UUID `json:"-"`
	ReceiverID uuid.UUID `json:"receiverId" validate:"required"`
	Body       string    `json:"body" validate:"required,min=1,max=2000"`
}

// MessagingUsecase defines the interface for direct messaging.
type MessagingUsecase interface {
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)

	// Inbox pages through the conversation with another user and marks the
	// other side's messages as seen.
	Inbox(ctx context.Context, userID, otherID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Message], error)

	// Correspondents lists the users the caller has exchanged messages with.
	Correspondents(ctx context.Context, userID uuid.UUID) ([]entity.Correspondent, error)
}
