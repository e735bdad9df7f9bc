package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// commentRepository implements the repository.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// ListByTopic returns the comments under a topic, creation time ascending.
func (r *commentRepository) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]entity.Comment, error) {
	var rows []model.CommentModel
	err := r.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list comments by topic")
	}

	comments := make([]entity.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, *rows[i].ToEntity())
	}

	return comments, nil
}

// Create persists a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	row := model.CommentModelFromEntity(comment)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrap(err, "create comment")
	}

	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	comment.UpdatedAt = row.UpdatedAt

	return nil
}

// Delete removes a comment written by the poster.
func (r *commentRepository) Delete(ctx context.Context, posterID, commentID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND poster_id = ?", commentID, posterID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete comment")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}

	return nil
}
