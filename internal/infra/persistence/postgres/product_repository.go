package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/infra/persistence/model"
)

// saleCountSelect joins the delivered order item count into product reads.
const saleCountSelect = "products.*, " +
	"(SELECT COUNT(*) FROM order_items oi WHERE oi.product_id = products.id AND oi.status = 'DELIVERED') AS sale_count"

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	err := r.db.WithContext(ctx).
		Select(saleCountSelect).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "find product by id")
	}

	return row.ToEntity(), nil
}

// ListAll returns every product ordered by creation time ascending.
func (r *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.list(r.db.WithContext(ctx))
}

// ListByProvider returns the products of one service ordered by creation time ascending.
func (r *productRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Product, error) {
	return r.list(r.db.WithContext(ctx).Where("provider_id = ?", providerID))
}

func (r *productRepository) list(tx *gorm.DB) ([]entity.Product, error) {
	var rows []model.ProductModel
	err := tx.Select(saleCountSelect).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToEntity())
	}

	return products, nil
}

// ListCategoriesByProvider returns the distinct categories of one service's
// products.
func (r *productRepository) ListCategoriesByProvider(ctx context.Context, providerID uuid.UUID) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("provider_id = ?", providerID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errors.Wrap(err, "list product categories")
	}

	return categories, nil
}

// ExistsByProviderAndName reports whether the provider already lists a product
// under the given name.
func (r *productRepository) ExistsByProviderAndName(ctx context.Context, providerID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("provider_id = ? AND name = ?", providerID, name).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check product name")
	}

	return count > 0, nil
}

// Create persists a new product.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := model.ProductModelFromEntity(product)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductNameTaken
		}

		return errors.Wrap(err, "create product")
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return nil
}

// Update replaces the mutable fields of a product owned by the provider.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"category":    product.Category.String(),
		"images_cid":  product.ImagesCID,
		"video_cid":   product.VideoCID,
		"tags":        datatypes.NewJSONSlice(product.Tags),
		"price":       product.Price,
	}

	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND provider_id = ?", product.ID, product.ProviderID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductNameTaken
		}

		return errors.Wrap(result.Error, "update product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

// Delete removes a product owned by the provider.
func (r *productRepository) Delete(ctx context.Context, providerID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", productID, providerID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}
