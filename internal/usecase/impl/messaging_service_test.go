package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	mockRepo "github.com/irabeny89/ebbs-io/internal/mocks/repository"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

type messagingServiceFixtures struct {
	service     usecase.MessagingUsecase
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestMessagingService(t *testing.T) messagingServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewMessagingService(MessagingServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return messagingServiceFixtures{
		service:     svc,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func TestMessagingService_SendMessage(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	senderID := uuid.New()
	receiver := &entity.User{ID: uuid.New(), Username: "bola"}

	fx.userRepo.On("FindByID", ctx, receiver.ID).Return(receiver, nil)
	fx.messageRepo.On("Create", ctx, mock.MatchedBy(func(m *entity.Message) bool {
		return m.SenderID == senderID && m.ReceiverID == receiver.ID && m.Body == "Is the gown still available?"
	})).Return(nil)

	message, err := fx.service.SendMessage(ctx, &usecase.SendMessageInput{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Body:       "Is the gown still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, senderID, message.SenderID)
}

func TestMessagingService_SendMessage_ToSelf(t *testing.T) {
	fx := createTestMessagingService(t)

	userID := uuid.New()
	message, err := fx.service.SendMessage(context.Background(), &usecase.SendMessageInput{
		SenderID:   userID,
		ReceiverID: userID,
		Body:       "talking to myself",
	})

	assert.Nil(t, message)
	assert.Error(t, err)
}

func TestMessagingService_Inbox_MarksSeen(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	userID := uuid.New()
	otherID := uuid.New()
	base := time.Date(2026, time.April, 3, 8, 0, 0, 0, time.UTC)
	messages := []entity.Message{
		{ID: uuid.New(), SenderID: otherID, ReceiverID: userID, Body: "hello", CreatedAt: base},
		{ID: uuid.New(), SenderID: userID, ReceiverID: otherID, Body: "hi", CreatedAt: base.Add(time.Minute)},
	}

	fx.messageRepo.On("ListConversation", ctx, userID, otherID).Return(messages, nil)
	fx.messageRepo.On("MarkSeen", ctx, userID, otherID).Return(nil)

	first := 10
	conn, err := fx.service.Inbox(ctx, userID, otherID, pagination.Request{First: &first})

	require.NoError(t, err)
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "hi", conn.Edges[0].Node.Body)
	assert.Equal(t, "hello", conn.Edges[1].Node.Body)
}

func TestMessagingService_Correspondents(t *testing.T) {
	fx := createTestMessagingService(t)
	ctx := context.Background()

	userID := uuid.New()
	expected := []entity.Correspondent{
		{UserID: uuid.New(), Username: "bola", UnseenCount: 2, IsSender: true},
	}

	fx.messageRepo.On("ListCorrespondents", ctx, userID).Return(expected, nil)

	correspondents, err := fx.service.Correspondents(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, correspondents)
}
