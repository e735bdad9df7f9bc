package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
)

// UpsertServiceInput creates or updates the caller's storefront.
type UpsertServiceInput struct {
	OwnerID     uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required,min=2,max=100"`
	LogoCID     string    `json:"logoCID"`
	Description string    `json:"description"`
	State       string    `json:"state"`
}

// NewProductInput lists a new product under the caller's storefront.
type NewProductInput struct {
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	ImagesCID   string    `json:"imagesCID"`
	VideoCID    string    `json:"videoCID"`
	Tags        []string  `json:"tags" validate:"max=5"`
	Price       float64   `json:"price" validate:"required,gt=0"`
}

// EditProductInput replaces the mutable fields of an existing listing.
type EditProductInput struct {
	OwnerID     uuid.UUID `json:"-"`
	ProductID   uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	ImagesCID   string    `json:"imagesCID"`
	VideoCID    string    `json:"videoCID"`
	Tags        []string  `json:"tags" validate:"max=5"`
	Price       float64   `json:"price" validate:"required,gt=0"`
}

// ScanServiceQRInput resolves a scanned storefront share code.
type ScanServiceQRInput struct {
	QRData string `json:"qrData" validate:"required"`
}

// CatalogUsecase defines the interface for storefront and product operations.
type CatalogUsecase interface {
	// UpsertService creates the caller's storefront or updates it in place.
	UpsertService(ctx context.Context, input *UpsertServiceInput) (*entity.Service, error)

	// MyService returns the caller's storefront.
	MyService(ctx context.Context, ownerID uuid.UUID) (*entity.Service, error)

	// GetService returns a storefront by ID for public viewing.
	GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error)

	// ListServices pages through storefronts that have at least one product.
	ListServices(ctx context.Context, req pagination.Request) (pagination.Connection[*entity.Service], error)

	// ServiceCategories returns the distinct categories a storefront sells in.
	ServiceCategories(ctx context.Context, serviceID uuid.UUID) ([]string, error)

	// ServiceQR renders a shareable QR code for a storefront.
	ServiceQR(ctx context.Context, serviceID uuid.UUID) ([]byte, error)

	// ResolveServiceQR parses scanned share-code data and returns the
	// storefront it points at.
	ResolveServiceQR(ctx context.Context, qrData string) (*entity.Service, error)

	// NewProduct lists a product, enforcing the per-storefront cap and name
	// uniqueness.
	NewProduct(ctx context.Context, input *NewProductInput) (*entity.Product, error)

	// EditProduct replaces the mutable fields of one of the caller's listings.
	EditProduct(ctx context.Context, input *EditProductInput) (*entity.Product, error)

	// DeleteProduct removes one of the caller's listings.
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error

	// ListProducts pages through the whole catalog.
	ListProducts(ctx context.Context, req pagination.Request) (pagination.Connection[*entity.Product], error)

	// ListServiceProducts pages through one storefront's listings.
	ListServiceProducts(ctx context.Context, serviceID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Product], error)
}
