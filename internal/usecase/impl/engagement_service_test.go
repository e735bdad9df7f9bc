package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	mockRepo "github.com/irabeny89/ebbs-io/internal/mocks/repository"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

type engagementServiceFixtures struct {
	service     usecase.EngagementUsecase
	commentRepo *mockRepo.MockCommentRepository
	likeRepo    *mockRepo.MockLikeRepository
	serviceRepo *mockRepo.MockServiceRepository
}

func createTestEngagementService(t *testing.T) engagementServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)

	svc := NewEngagementService(EngagementServiceParams{
		CommentRepo: commentRepo,
		LikeRepo:    likeRepo,
		ServiceRepo: serviceRepo,
		Logger:      newDiscardLogger(),
	})

	return engagementServiceFixtures{
		service:     svc,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		serviceRepo: serviceRepo,
	}
}

func TestEngagementService_PostComment(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	topicID := uuid.New()
	posterID := uuid.New()

	fx.serviceRepo.On("FindByID", ctx, topicID).Return(&entity.Service{ID: topicID}, nil)
	fx.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.TopicID == topicID && c.PosterID == posterID && c.Post == "Great tailoring"
	})).Return(nil)

	comment, err := fx.service.PostComment(ctx, &usecase.PostCommentInput{
		PosterID: posterID,
		TopicID:  topicID,
		Post:     "Great tailoring",
	})

	require.NoError(t, err)
	assert.Equal(t, "Great tailoring", comment.Post)
}

func TestEngagementService_PostComment_UnknownTopic(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	topicID := uuid.New()
	fx.serviceRepo.On("FindByID", ctx, topicID).Return(nil, domainerrors.ErrServiceNotFound)

	comment, err := fx.service.PostComment(ctx, &usecase.PostCommentInput{
		PosterID: uuid.New(),
		TopicID:  topicID,
		Post:     "hello",
	})

	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestEngagementService_SetFavorite_AddIsIdempotent(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	selectionID := uuid.New()
	userID := uuid.New()
	existing := &entity.Like{
		ID:           uuid.New(),
		SelectionID:  selectionID,
		HappyClients: []uuid.UUID{userID},
	}

	fx.serviceRepo.On("FindByID", ctx, selectionID).Return(&entity.Service{ID: selectionID}, nil)
	fx.likeRepo.On("FindBySelection", ctx, selectionID).Return(existing, nil)
	fx.likeRepo.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Like) bool {
		return l.Count() == 1
	})).Return(nil)

	like, err := fx.service.SetFavorite(ctx, &usecase.FavoriteInput{
		UserID:      userID,
		SelectionID: selectionID,
		IsFav:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, like.Count())
}

func TestEngagementService_SetFavorite_FirstFavoriteCreatesRow(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	selectionID := uuid.New()
	userID := uuid.New()

	fx.serviceRepo.On("FindByID", ctx, selectionID).Return(&entity.Service{ID: selectionID}, nil)
	fx.likeRepo.On("FindBySelection", ctx, selectionID).Return(nil, nil)
	fx.likeRepo.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Like) bool {
		return l.SelectionID == selectionID && l.Count() == 1
	})).Return(nil)

	like, err := fx.service.SetFavorite(ctx, &usecase.FavoriteInput{
		UserID:      userID,
		SelectionID: selectionID,
		IsFav:       true,
	})

	require.NoError(t, err)
	assert.Contains(t, like.HappyClients, userID)
}

func TestEngagementService_SetFavorite_Remove(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	selectionID := uuid.New()
	userID := uuid.New()
	existing := &entity.Like{SelectionID: selectionID, HappyClients: []uuid.UUID{userID}}

	fx.serviceRepo.On("FindByID", ctx, selectionID).Return(&entity.Service{ID: selectionID}, nil)
	fx.likeRepo.On("FindBySelection", ctx, selectionID).Return(existing, nil)
	fx.likeRepo.On("Upsert", ctx, mock.MatchedBy(func(l *entity.Like) bool {
		return l.Count() == 0
	})).Return(nil)

	like, err := fx.service.SetFavorite(ctx, &usecase.FavoriteInput{
		UserID:      userID,
		SelectionID: selectionID,
		IsFav:       false,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, like.Count())
}

func TestEngagementService_FavoriteCount_NoRow(t *testing.T) {
	fx := createTestEngagementService(t)
	ctx := context.Background()

	selectionID := uuid.New()
	fx.likeRepo.On("FindBySelection", ctx, selectionID).Return(nil, nil)

	count, err := fx.service.FavoriteCount(ctx, selectionID)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
