// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock registered for expectation checks.
func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	register(t, &m.Mock)

	return m
}

// Execute forwards to the expectation. When the expectation returns a
// RepositoryFactory, the callback runs against it and its error is
// propagated, mimicking a real transaction.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t testingT) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	register(t, &m.Mock)

	return m
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewServiceRepository() repository.ServiceRepository {
	return m.Called().Get(0).(repository.ServiceRepository)
}

func (m *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return m.Called().Get(0).(repository.OrderRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, hash, salt string) error {
	return m.Called(ctx, id, hash, salt).Error(0)
}

// MockServiceRepository mocks repository.ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func NewMockServiceRepository(t testingT) *MockServiceRepository {
	m := &MockServiceRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if svc, ok := args.Get(0).(*entity.Service); ok {
		return svc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, ownerID)
	if svc, ok := args.Get(0).(*entity.Service); ok {
		return svc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) ListWithProducts(ctx context.Context) ([]entity.Service, error) {
	args := m.Called(ctx)
	if services, ok := args.Get(0).([]entity.Service); ok {
		return services, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) Upsert(ctx context.Context, svc *entity.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *MockServiceRepository) CountProducts(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, serviceID)

	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Product, error) {
	args := m.Called(ctx, providerID)
	if products, ok := args.Get(0).([]entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListCategoriesByProvider(ctx context.Context, providerID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, providerID)
	if categories, ok := args.Get(0).([]string); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ExistsByProviderAndName(ctx context.Context, providerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, providerID, name)

	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, providerID, productID uuid.UUID) error {
	return m.Called(ctx, providerID, productID).Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t testingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, clientID)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.Order, error) {
	args := m.Called(ctx, providerID)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) UpdateItemStatus(ctx context.Context, providerID, itemID uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, providerID, itemID, status).Error(0)
}

func (m *MockOrderRepository) SetDeliveryDate(ctx context.Context, orderID uuid.UUID, date time.Time) error {
	return m.Called(ctx, orderID, date).Error(0)
}

func (m *MockOrderRepository) ListItemsByProvider(ctx context.Context, providerID uuid.UUID) ([]entity.OrderItem, error) {
	args := m.Called(ctx, providerID)
	if items, ok := args.Get(0).([]entity.OrderItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCommentRepository mocks repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository(t testingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockCommentRepository) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]entity.Comment, error) {
	args := m.Called(ctx, topicID)
	if comments, ok := args.Get(0).([]entity.Comment); ok {
		return comments, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, posterID, commentID uuid.UUID) error {
	return m.Called(ctx, posterID, commentID).Error(0)
}

// MockLikeRepository mocks repository.LikeRepository.
type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository(t testingT) *MockLikeRepository {
	m := &MockLikeRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockLikeRepository) FindBySelection(ctx context.Context, selectionID uuid.UUID) (*entity.Like, error) {
	args := m.Called(ctx, selectionID)
	if like, ok := args.Get(0).(*entity.Like); ok {
		return like, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockLikeRepository) Upsert(ctx context.Context, like *entity.Like) error {
	return m.Called(ctx, like).Error(0)
}

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

func NewMockMessageRepository(t testingT) *MockMessageRepository {
	m := &MockMessageRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockMessageRepository) ListConversation(ctx context.Context, userID, otherID uuid.UUID) ([]entity.Message, error) {
	args := m.Called(ctx, userID, otherID)
	if messages, ok := args.Get(0).([]entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) ListCorrespondents(ctx context.Context, userID uuid.UUID) ([]entity.Correspondent, error) {
	args := m.Called(ctx, userID)
	if correspondents, ok := args.Get(0).([]entity.Correspondent); ok {
		return correspondents, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) MarkSeen(ctx context.Context, userID, otherID uuid.UUID) error {
	return m.Called(ctx, userID, otherID).Error(0)
}
