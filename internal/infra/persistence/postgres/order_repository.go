package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its items.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var row model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "find order by id")
	}

	return row.ToEntity(), nil
}

// ListByClient returns the orders placed by a user, creation time ascending.
func (r *orderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Order, error) {
	var rows []model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list orders by client")
	}

	return toOrderEntities(rows), nil
}

// ListByProvider returns the orders containing at least one item sold by the
// provider, creation time ascending.
func (r *orderRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Order, error) {
	var rows []model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id IN (?)", r.db.Model(&model.OrderItemModel{}).
			Distinct("order_id").
			Where("provider_id = ?", providerID)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list orders by provider")
	}

	return toOrderEntities(rows), nil
}

// Create persists a new order and its items.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := model.OrderModelFromEntity(order)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "create order")
	}

	*order = *row.ToEntity()

	return nil
}

// UpdateItemStatus moves one item of an order to a new status, scoped to the
// provider that sold it.
func (r *orderRepository) UpdateItemStatus(ctx context.Context, providerID, itemID uuid.UUID, status entity.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ? AND provider_id = ?", itemID, providerID).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "update order item status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// SetDeliveryDate records the promised delivery date of an order.
func (r *orderRepository) SetDeliveryDate(ctx context.Context, orderID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("delivery_date", date)
	if result.Error != nil {
		return errors.Wrap(result.Error, "set order delivery date")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

// ListItemsByProvider returns every item the provider has sold across all orders.
func (r *orderRepository) ListItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.OrderItem, error) {
	var rows []model.OrderItemModel
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list order items by provider")
	}

	items := make([]entity.OrderItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}

	return items, nil
}

func toOrderEntities(rows []model.OrderModel) []entity.Order {
	orders := make([]entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].ToEntity())
	}

	return orders
}
