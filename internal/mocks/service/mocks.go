// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/irabeny89/ebbs-io/internal/domain/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

func (m *MockTokenService) IssuePair(payload service.Payload) (*service.Pair, error) {
	args := m.Called(payload)
	if pair, ok := args.Get(0).(*service.Pair); ok {
		return pair, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) ParseAccess(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) ParseRefresh(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) RefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockCredentialService mocks service.CredentialService.
type MockCredentialService struct {
	mock.Mock
}

func NewMockCredentialService(t testingT) *MockCredentialService {
	m := &MockCredentialService{}
	register(t, &m.Mock)

	return m
}

func (m *MockCredentialService) Hash(password string) (string, string, error) {
	args := m.Called(password)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockCredentialService) Compare(password, salt, hash string) bool {
	return m.Called(password, salt, hash).Bool(0)
}

// MockPassCodeService mocks service.PassCodeService.
type MockPassCodeService struct {
	mock.Mock
}

func NewMockPassCodeService(t testingT) *MockPassCodeService {
	m := &MockPassCodeService{}
	register(t, &m.Mock)

	return m
}

func (m *MockPassCodeService) Generate() (string, string, error) {
	args := m.Called()

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockPassCodeService) Seal(email, codeHash, code string) (string, error) {
	args := m.Called(email, codeHash, code)

	return args.String(0), args.Error(1)
}

func (m *MockPassCodeService) Open(token, code string) (string, error) {
	args := m.Called(token, code)

	return args.String(0), args.Error(1)
}

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t testingT) *MockMailer {
	m := &MockMailer{}
	register(t, &m.Mock)

	return m
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t testingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	register(t, &m.Mock)

	return m
}

func (m *MockQRCodeService) GenerateServiceQR(serviceID uuid.UUID) ([]byte, error) {
	args := m.Called(serviceID)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockQRCodeService) ParseServiceQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)

	return args.Get(0).(uuid.UUID), args.Error(1)
}
