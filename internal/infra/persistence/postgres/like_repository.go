package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// likeRepository implements the repository.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// FindBySelection retrieves the like row of an entity, if any. A missing row
// is returned as nil without error, it just means nobody has favored the
// entity yet.
func (r *likeRepository) FindBySelection(ctx context.Context, selectionID uuid.UUID) (*entity.Like, error) {
	var row model.LikeModel
	err := r.db.WithContext(ctx).First(&row, "selection_id = ?", selectionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "find like by selection")
	}

	return row.ToEntity(), nil
}

// Upsert creates the like row of an entity or replaces its client list.
func (r *likeRepository) Upsert(ctx context.Context, like *entity.Like) error {
	row := model.LikeModelFromEntity(like)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "selection_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"happy_clients", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return errors.Wrap(err, "upsert like")
	}

	like.ID = row.ID

	return nil
}
