package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// ServiceModel mirrors the 'services' table. Each user owns at most one storefront.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;unique;not null;index"`
	Title       string    `gorm:"type:varchar(100);not null"`
	LogoCID     string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	State       string    `gorm:"type:varchar(100)"`
	MaxProduct  int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// ToEntity converts the row into a domain entity.
func (m *ServiceModel) ToEntity() *entity.Service {
	return &entity.Service{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		LogoCID:     m.LogoCID,
		Description: m.Description,
		State:       m.State,
		MaxProduct:  m.MaxProduct,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ServiceModelFromEntity converts a domain entity into a row.
func ServiceModelFromEntity(svc *entity.Service) *ServiceModel {
	return &ServiceModel{
		ID:          svc.ID,
		OwnerID:     svc.OwnerID,
		Title:       svc.Title,
		LogoCID:     svc.LogoCID,
		Description: svc.Description,
		State:       svc.State,
		MaxProduct:  svc.MaxProduct,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}
