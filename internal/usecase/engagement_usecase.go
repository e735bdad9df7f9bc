package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
)

// PostCommentInput writes a comment under a storefront.
type PostCommentInput struct {
	PosterID uuid.UUID `json:"-"`
	TopicID  uuid.UUID `json:"topicId" validate:"required"`
	Post     string    `json:"post" validate:"required,min=1,max=1000"`
}

// FavoriteInput toggles the caller's favorite mark on a storefront.
type FavoriteInput struct {
	UserID      uuid.UUID `json:"-"`
	SelectionID uuid.UUID `json:"selectionId" validate:"required"`
	IsFav       bool      `json:"isFav"`
}

// EngagementUsecase defines the interface for comments and favorites.
type EngagementUsecase interface {
	PostComment(ctx context.Context, input *PostCommentInput) (*entity.Comment, error)

	DeleteComment(ctx context.Context, posterID, commentID uuid.UUID) error

	// ListComments pages through the comments under a storefront.
	ListComments(ctx context.Context, topicID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Comment], error)

	// SetFavorite adds or removes the caller's favorite mark, idempotently.
	SetFavorite(ctx context.Context, input *FavoriteInput) (*entity.Like, error)

	// FavoriteCount reports how many users favor a storefront.
	FavoriteCount(ctx context.Context, selectionID uuid.UUID) (int, error)
}
