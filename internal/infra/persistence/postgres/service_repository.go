package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// serviceRepository implements the repository.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByID retrieves a single service by its unique ID.
func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var row model.ServiceModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "find service by id")
	}

	return row.ToEntity(), nil
}

// FindByOwner retrieves the service owned by a user, if any.
func (r *serviceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Service, error) {
	var row model.ServiceModel
	err := r.db.WithContext(ctx).First(&row, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "find service by owner")
	}

	return row.ToEntity(), nil
}

// ListWithProducts returns all services that have at least one product,
// ordered by creation time ascending.
func (r *serviceRepository) ListWithProducts(ctx context.Context) ([]entity.Service, error) {
	var rows []model.ServiceModel
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&model.ProductModel{}).Distinct("provider_id")).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list services with products")
	}

	services := make([]entity.Service, 0, len(rows))
	for i := range rows {
		services = append(services, *rows[i].ToEntity())
	}

	return services, nil
}

// Upsert creates the owner's service or updates it in place.
func (r *serviceRepository) Upsert(ctx context.Context, svc *entity.Service) error {
	row := model.ServiceModelFromEntity(svc)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "logo_cid", "description", "state", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return errors.Wrap(err, "upsert service")
	}

	svc.ID = row.ID
	svc.CreatedAt = row.CreatedAt
	svc.UpdatedAt = row.UpdatedAt

	return nil
}

// CountProducts returns the number of products currently listed by a service.
func (r *serviceRepository) CountProducts(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("provider_id = ?", serviceID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count service products")
	}

	return count, nil
}
