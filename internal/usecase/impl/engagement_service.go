package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/irabeny89/ebbs-io/internal/delivery/context"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// EngagementServiceParams holds dependencies for engagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	LikeRepo    repository.LikeRepository
	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		commentRepo: params.CommentRepo,
		likeRepo:    params.LikeRepo,
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PostComment writes a comment under a storefront.
func (srv *engagementService) PostComment(ctx context.Context, input *usecase.PostCommentInput) (*entity.Comment, error) {
	if _, err := srv.serviceRepo.FindByID(ctx, input.TopicID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		TopicID:  input.TopicID,
		PosterID: input.PosterID,
		Post:     input.Post,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment posted", slog.Any("commentID", comment.ID), slog.Any("topicID", input.TopicID))

	return comment, nil
}

// DeleteComment removes a comment written by the poster.
func (srv *engagementService) DeleteComment(ctx context.Context, posterID, commentID uuid.UUID) error {
	return srv.commentRepo.Delete(ctx, posterID, commentID)
}

// ListComments pages through the comments under a storefront.
func (srv *engagementService) ListComments(ctx context.Context, topicID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Comment], error) {
	comments, err := srv.commentRepo.ListByTopic(ctx, topicID)
	if err != nil {
		return pagination.Connection[*entity.Comment]{}, err
	}

	return pagination.Paginate(toPointers(comments), req), nil
}

// SetFavorite adds or removes the caller's favorite mark. Both directions are
// idempotent, repeating a toggle leaves the set unchanged.
func (srv *engagementService) SetFavorite(ctx context.Context, input *usecase.FavoriteInput) (*entity.Like, error) {
	if _, err := srv.serviceRepo.FindByID(ctx, input.SelectionID); err != nil {
		return nil, err
	}

	like, err := srv.likeRepo.FindBySelection(ctx, input.SelectionID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		like = &entity.Like{SelectionID: input.SelectionID}
	}

	if input.IsFav {
		like.Add(input.UserID)
	} else {
		like.Remove(input.UserID)
	}

	if err := srv.likeRepo.Upsert(ctx, like); err != nil {
		return nil, err
	}

	return like, nil
}

// FavoriteCount reports how many users favor a storefront.
func (srv *engagementService) FavoriteCount(ctx context.Context, selectionID uuid.UUID) (int, error) {
	like, err := srv.likeRepo.FindBySelection(ctx, selectionID)
	if err != nil {
		return 0, err
	}

	return like.Count(), nil
}
