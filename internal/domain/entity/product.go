package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a product listing.
type Category string

const (
	CategoryWears       Category = "WEARS"
	CategoryElectricals Category = "ELECTRICALS"
	CategoryVehicles    Category = "VEHICLES"
	CategoryElectronics Category = "ELECTRONICS"
	CategoryFoodDrugs   Category = "FOOD_DRUGS"
	CategorySoftwares   Category = "SOFTWARES"
	CategoryPets        Category = "PETS"
	CategoryArts        Category = "ARTS"
	CategoryEducation   Category = "EDUCATION"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWears, CategoryElectricals, CategoryVehicles, CategoryElectronics,
		CategoryFoodDrugs, CategorySoftwares, CategoryPets, CategoryArts, CategoryEducation:
		return true
	default:
		return false
	}
}

// Product is a single listing published by a provider service.
type Product struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID // The Service this listing belongs to.
	Name        string    // Listing name, unique within a provider's storefront.
	Description string
	Category    Category
	ImagesCID   string // Content identifier of the image bundle.
	VideoCID    string // Optional content identifier of a demo video.
	Tags        []string
	Price       float64
	SaleCount   int // Number of delivered order items for this listing; derived, not stored.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CursorTime reports the creation timestamp used as this entity's pagination cursor.
func (p *Product) CursorTime() time.Time {
	return p.CreatedAt
}

// SearchTerms lists the fields matched by connection search filters.
func (p *Product) SearchTerms() []string {
	terms := []string{p.Name, p.Category.String()}

	return append(terms, p.Tags...)
}
