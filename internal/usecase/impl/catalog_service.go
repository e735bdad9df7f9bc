package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/irabeny89/ebbs-io/config"
	deliverycontext "github.com/irabeny89/ebbs-io/internal/delivery/context"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

const defaultMaxProducts = 12

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	serviceRepo repository.ServiceRepository
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	maxProducts int
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ServiceRepo repository.ServiceRepository
	ProductRepo repository.ProductRepository
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	maxProducts := defaultMaxProducts
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.MaxProducts > 0 {
		maxProducts = params.Config.Catalog.MaxProducts
	}

	return &catalogService{
		txManager:   params.TxManager,
		serviceRepo: params.ServiceRepo,
		productRepo: params.ProductRepo,
		qrService:   params.QRService,
		maxProducts: maxProducts,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertService creates the caller's storefront or updates it in place.
func (srv *catalogService) UpsertService(ctx context.Context, input *usecase.UpsertServiceInput) (*entity.Service, error) {
	svc := &entity.Service{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		LogoCID:     input.LogoCID,
		Description: input.Description,
		State:       input.State,
		MaxProduct:  srv.maxProducts,
	}

	if err := srv.serviceRepo.Upsert(ctx, svc); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Service upserted", slog.Any("serviceID", svc.ID), slog.Any("ownerID", input.OwnerID))

	return svc, nil
}

// MyService returns the caller's storefront.
func (srv *catalogService) MyService(ctx context.Context, ownerID uuid.UUID) (*entity.Service, error) {
	return srv.serviceRepo.FindByOwner(ctx, ownerID)
}

// GetService returns a storefront by ID for public viewing.
func (srv *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error) {
	return srv.serviceRepo.FindByID(ctx, serviceID)
}

// ListServices pages through storefronts that have at least one product.
func (srv *catalogService) ListServices(ctx context.Context, req pagination.Request) (pagination.Connection[*entity.Service], error) {
	services, err := srv.serviceRepo.ListWithProducts(ctx)
	if err != nil {
		return pagination.Connection[*entity.Service]{}, err
	}

	return pagination.Paginate(toPointers(services), req), nil
}

// ServiceCategories returns the distinct categories a storefront sells in.
func (srv *catalogService) ServiceCategories(ctx context.Context, serviceID uuid.UUID) ([]string, error) {
	if _, err := srv.serviceRepo.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}

	return srv.productRepo.ListCategoriesByProvider(ctx, serviceID)
}

// ServiceQR renders a shareable QR code for a storefront.
func (srv *catalogService) ServiceQR(ctx context.Context, serviceID uuid.UUID) ([]byte, error) {
	if _, err := srv.serviceRepo.FindByID(ctx, serviceID); err != nil {
		return nil, err
	}

	return srv.qrService.GenerateServiceQR(serviceID)
}

// ResolveServiceQR parses scanned share-code data and returns the storefront
// it points at.
func (srv *catalogService) ResolveServiceQR(ctx context.Context, qrData string) (*entity.Service, error) {
	serviceID, err := srv.qrService.ParseServiceQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid share code")
	}

	return srv.serviceRepo.FindByID(ctx, serviceID)
}

// NewProduct lists a product under the caller's storefront. The listing cap
// and the name check run inside one transaction so concurrent inserts cannot
// slip past the limit unnoticed.
func (srv *catalogService) NewProduct(ctx context.Context, input *usecase.NewProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product category")
	}

	svc, err := srv.serviceRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceRequired
		}

		return nil, err
	}

	product := &entity.Product{
		ProviderID:  svc.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    category,
		ImagesCID:   input.ImagesCID,
		VideoCID:    input.VideoCID,
		Tags:        input.Tags,
		Price:       input.Price,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.NewServiceRepository()
		productRepo := repoFactory.NewProductRepository()

		count, err := serviceRepo.CountProducts(ctx, svc.ID)
		if err != nil {
			return err
		}
		if count >= int64(svc.MaxProduct) {
			return domainerrors.ErrMaxProducts
		}

		taken, err := productRepo.ExistsByProviderAndName(ctx, svc.ID, input.Name)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.ErrProductNameTaken
		}

		return productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product listed", slog.Any("productID", product.ID), slog.Any("serviceID", svc.ID))

	return product, nil
}

// EditProduct replaces the mutable fields of one of the caller's listings.
func (srv *catalogService) EditProduct(ctx context.Context, input *usecase.EditProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product category")
	}

	svc, err := srv.serviceRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceRequired
		}

		return nil, err
	}

	product := &entity.Product{
		ID:          input.ProductID,
		ProviderID:  svc.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    category,
		ImagesCID:   input.ImagesCID,
		VideoCID:    input.VideoCID,
		Tags:        input.Tags,
		Price:       input.Price,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", product.ID), slog.Any("serviceID", svc.ID))

	return srv.productRepo.FindByID(ctx, input.ProductID)
}

// DeleteProduct removes one of the caller's listings.
func (srv *catalogService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	svc, err := srv.serviceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	return srv.productRepo.Delete(ctx, svc.ID, productID)
}

// ListProducts pages through the whole catalog.
func (srv *catalogService) ListProducts(ctx context.Context, req pagination.Request) (pagination.Connection[*entity.Product], error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return pagination.Connection[*entity.Product]{}, err
	}

	return pagination.Paginate(toPointers(products), req), nil
}

// ListServiceProducts pages through one storefront's listings.
func (srv *catalogService) ListServiceProducts(ctx context.Context, serviceID uuid.UUID, req pagination.Request) (pagination.Connection[*entity.Product], error) {
	products, err := srv.productRepo.ListByProvider(ctx, serviceID)
	if err != nil {
		return pagination.Connection[*entity.Product]{}, err
	}

	return pagination.Paginate(toPointers(products), req), nil
}

// toPointers converts a value slice into the pointer slice the pagination
// engine consumes, without copying the elements again.
func toPointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}

	return out
}
