package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// ProductModel mirrors the 'products' table. Tags are stored as a JSONB array
// so they stay queryable without a join table.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderID  uuid.UUID                   `gorm:"type:uuid;not null;index;uniqueIndex:idx_provider_name"`
	Name        string                      `gorm:"type:varchar(100);not null;uniqueIndex:idx_provider_name"`
	Description string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(30);not null;index"`
	ImagesCID   string                      `gorm:"type:varchar(255)"`
	VideoCID    string                      `gorm:"type:varchar(255)"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Price       float64                     `gorm:"not null"`
	SaleCount   int                         `gorm:"->;-:migration"` // Read-only aggregate, filled by query.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts the row into a domain entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		ProviderID:  m.ProviderID,
		Name:        m.Name,
		Description: m.Description,
		Category:    entity.Category(m.Category),
		ImagesCID:   m.ImagesCID,
		VideoCID:    m.VideoCID,
		Tags:        []string(m.Tags),
		Price:       m.Price,
		SaleCount:   m.SaleCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductModelFromEntity converts a domain entity into a row.
func ProductModelFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		ProviderID:  product.ProviderID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category.String(),
		ImagesCID:   product.ImagesCID,
		VideoCID:    product.VideoCID,
		Tags:        datatypes.NewJSONSlice(product.Tags),
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
