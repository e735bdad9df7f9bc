package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/pagination"
	mockRepo "github.com/irabeny89/ebbs-io/internal/mocks/repository"
	mockSvc "github.com/irabeny89/ebbs-io/internal/mocks/service"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	serviceRepo *mockRepo.MockServiceRepository
	productRepo *mockRepo.MockProductRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T, maxProducts int) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	svc := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ServiceRepo: serviceRepo,
		ProductRepo: productRepo,
		QRService:   qrService,
		Config:      newTestConfig(maxProducts),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     svc,
		txManager:   txManager,
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		qrService:   qrService,
	}
}

func TestCatalogService_UpsertService(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.serviceRepo.On("Upsert", ctx, mock.MatchedBy(func(svc *entity.Service) bool {
		return svc.OwnerID == ownerID && svc.Title == "Amara Wears" && svc.MaxProduct == 12
	})).Return(nil)

	svc, err := fx.service.UpsertService(ctx, &usecase.UpsertServiceInput{
		OwnerID: ownerID,
		Title:   "Amara Wears",
		State:   "Lagos",
	})

	require.NoError(t, err)
	assert.Equal(t, "Amara Wears", svc.Title)
}

func TestCatalogService_NewProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()
	storefront := &entity.Service{ID: uuid.New(), OwnerID: ownerID, MaxProduct: 12}

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(storefront, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txServiceRepo := mockRepo.NewMockServiceRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory.On("NewServiceRepository").Return(txServiceRepo)
	factory.On("NewProductRepository").Return(txProductRepo)
	txServiceRepo.On("CountProducts", ctx, storefront.ID).Return(int64(3), nil)
	txProductRepo.On("ExistsByProviderAndName", ctx, storefront.ID, "Ankara Gown").Return(false, nil)
	txProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory)

	product, err := fx.service.NewProduct(ctx, &usecase.NewProductInput{
		OwnerID:     ownerID,
		Name:        "Ankara Gown",
		Description: "Hand sewn",
		Category:    "WEARS",
		Price:       45,
	})

	require.NoError(t, err)
	assert.Equal(t, storefront.ID, product.ProviderID)
	assert.Equal(t, entity.CategoryWears, product.Category)
}

func TestCatalogService_NewProduct_CapReached(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()
	storefront := &entity.Service{ID: uuid.New(), OwnerID: ownerID, MaxProduct: 2}

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(storefront, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txServiceRepo := mockRepo.NewMockServiceRepository(t)
	factory.On("NewServiceRepository").Return(txServiceRepo)
	factory.On("NewProductRepository").Return(mockRepo.NewMockProductRepository(t))
	txServiceRepo.On("CountProducts", ctx, storefront.ID).Return(int64(2), nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory)

	product, err := fx.service.NewProduct(ctx, &usecase.NewProductInput{
		OwnerID:     ownerID,
		Name:        "One Too Many",
		Description: "d",
		Category:    "WEARS",
		Price:       1,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrMaxProducts)
}

func TestCatalogService_NewProduct_NoStorefront(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(nil, domainerrors.ErrServiceNotFound)

	product, err := fx.service.NewProduct(ctx, &usecase.NewProductInput{
		OwnerID:     ownerID,
		Name:        "Orphan",
		Description: "d",
		Category:    "WEARS",
		Price:       1,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrServiceRequired)
}

func TestCatalogService_NewProduct_BadCategory(t *testing.T) {
	fx := createTestCatalogService(t, 12)

	product, err := fx.service.NewProduct(context.Background(), &usecase.NewProductInput{
		OwnerID:     uuid.New(),
		Name:        "Mystery",
		Description: "d",
		Category:    "GADGETS",
		Price:       1,
	})

	assert.Nil(t, product)
	assert.Error(t, err)
}

func TestCatalogService_ListProducts_Paginates(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()

	base := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	products := []entity.Product{
		{ID: uuid.New(), Name: "first", CreatedAt: base},
		{ID: uuid.New(), Name: "second", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), Name: "third", CreatedAt: base.Add(2 * time.Minute)},
	}

	fx.productRepo.On("ListAll", ctx).Return(products, nil)

	first := 2
	conn, err := fx.service.ListProducts(ctx, pagination.Request{First: &first})

	require.NoError(t, err)
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "second", conn.Edges[0].Node.Name)
	assert.Equal(t, "first", conn.Edges[1].Node.Name)
	assert.True(t, conn.PageInfo.HasNextPage)
}

func TestCatalogService_EditProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()
	storefront := &entity.Service{ID: uuid.New(), OwnerID: ownerID, MaxProduct: 12}

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(storefront, nil)
	fx.productRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == productID &&
			p.ProviderID == storefront.ID &&
			p.Name == "Ankara Gown v2" &&
			p.Price == 35.0
	})).Return(nil)
	fx.productRepo.On("FindByID", ctx, productID).Return(&entity.Product{
		ID:         productID,
		ProviderID: storefront.ID,
		Name:       "Ankara Gown v2",
		Price:      35.0,
	}, nil)

	product, err := fx.service.EditProduct(ctx, &usecase.EditProductInput{
		OwnerID:     ownerID,
		ProductID:   productID,
		Name:        "Ankara Gown v2",
		Description: "Updated cut",
		Category:    entity.CategoryWears.String(),
		Price:       35.0,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ankara Gown v2", product.Name)
	assert.InDelta(t, 35.0, product.Price, 1e-9)
}

func TestCatalogService_EditProduct_UnknownProduct(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()
	storefront := &entity.Service{ID: uuid.New(), OwnerID: ownerID, MaxProduct: 12}

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(storefront, nil)
	fx.productRepo.On("Update", ctx, mock.Anything).Return(domainerrors.ErrProductNotFound)

	_, err := fx.service.EditProduct(ctx, &usecase.EditProductInput{
		OwnerID:     ownerID,
		ProductID:   uuid.New(),
		Name:        "Ankara Gown v2",
		Description: "Updated cut",
		Category:    entity.CategoryWears.String(),
		Price:       35.0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_EditProduct_NoStorefront(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.serviceRepo.On("FindByOwner", ctx, ownerID).Return(nil, domainerrors.ErrServiceNotFound)

	_, err := fx.service.EditProduct(ctx, &usecase.EditProductInput{
		OwnerID:     ownerID,
		ProductID:   uuid.New(),
		Name:        "Ankara Gown v2",
		Description: "Updated cut",
		Category:    entity.CategoryWears.String(),
		Price:       35.0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrServiceRequired)
}

func TestCatalogService_ResolveServiceQR(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	serviceID := uuid.New()

	fx.qrService.On("ParseServiceQR", "scanned-payload").Return(serviceID, nil)
	fx.serviceRepo.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID, Title: "Amara Wears"}, nil)

	svc, err := fx.service.ResolveServiceQR(ctx, "scanned-payload")

	require.NoError(t, err)
	assert.Equal(t, serviceID, svc.ID)
}

func TestCatalogService_ResolveServiceQR_InvalidPayload(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()

	fx.qrService.On("ParseServiceQR", "garbage").Return(uuid.Nil, domainerrors.ErrValidationFailed)

	_, err := fx.service.ResolveServiceQR(ctx, "garbage")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_ServiceCategories(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	serviceID := uuid.New()

	fx.serviceRepo.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	fx.productRepo.On("ListCategoriesByProvider", ctx, serviceID).Return([]string{"ELECTRONICS", "WEARS"}, nil)

	categories, err := fx.service.ServiceCategories(ctx, serviceID)

	require.NoError(t, err)
	assert.Equal(t, []string{"ELECTRONICS", "WEARS"}, categories)
}

func TestCatalogService_ServiceCategories_UnknownService(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	serviceID := uuid.New()

	fx.serviceRepo.On("FindByID", ctx, serviceID).Return(nil, domainerrors.ErrServiceNotFound)

	_, err := fx.service.ServiceCategories(ctx, serviceID)

	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_ServiceQR(t *testing.T) {
	fx := createTestCatalogService(t, 12)
	ctx := context.Background()
	serviceID := uuid.New()

	fx.serviceRepo.On("FindByID", ctx, serviceID).Return(&entity.Service{ID: serviceID}, nil)
	fx.qrService.On("GenerateServiceQR", serviceID).Return([]byte("png-bytes"), nil)

	data, err := fx.service.ServiceQR(ctx, serviceID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}
