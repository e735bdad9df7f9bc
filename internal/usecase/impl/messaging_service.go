package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/irabeny89/ebbs-io/internal/delivery/context"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// messagingService implements the MessagingUsecase interface.
type messagingService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessagingServiceParams holds dependencies for messagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	return &messagingService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage sends a direct message to another user.
func (srv *messagingService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	if input.SenderID == input.ReceiverID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cannot message yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Body:       input.Body,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Message sent", slog.Any("messageID", message.ID), slog.Any("receiverID", input.ReceiverID))

	return message, nil
}

// Inbox pages through the conversation with another user. Viewing the
// conversation marks the other side's messages as seen.
func (srv *messagingService) Inbox(ctx context.Context, userID, otherID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Message], error) {
	messages, err := srv.messageRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return pagination.Connection[*entity.Message]{}, err
	}

	if err := srv.messageRepo.MarkSeen(ctx, userID, otherID); err != nil {
		return pagination.Connection[*entity.Message]{}, err
	}

	return pagination.Paginate(toPointers(messages), req), nil
}

// Correspondents lists the users the caller has exchanged messages with.
func (srv *messagingService) Correspondents(ctx context.Context, userID uuid.UUID) ([]entity.Correspondent, error) {
	return srv.messageRepo.ListCorrespondents(ctx, userID)
}
