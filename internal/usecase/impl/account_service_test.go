package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	mockRepo "github.com/irabeny89/ebbs-io/internal/mocks/repository"
	mockSvc "github.com/irabeny89/ebbs-io/internal/mocks/service"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	serviceRepo  *mockRepo.MockServiceRepository
	credentials  *mockSvc.MockCredentialService
	tokenService *mockSvc.MockTokenService
	passCodes    *mockSvc.MockPassCodeService
	mailer       *mockSvc.MockMailer
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	credentials := mockSvc.NewMockCredentialService(t)
	tokenService := mockSvc.NewMockTokenService(t)
	passCodes := mockSvc.NewMockPassCodeService(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		ServiceRepo:  serviceRepo,
		Credentials:  credentials,
		TokenService: tokenService,
		PassCodes:    passCodes,
		Mailer:       mailer,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		credentials:  credentials,
		tokenService: tokenService,
		passCodes:    passCodes,
		mailer:       mailer,
	}
}

func testPair() *service.Pair {
	return &service.Pair{AccessToken: "access", RefreshToken: "refresh"}
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "amara",
		Email:        "amara@ebbs.test",
		PasswordHash: "stored-hash",
		Salt:         "stored-salt",
		Role:         entity.RoleUser,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.credentials.On("Compare", "Password123!", "stored-salt", "stored-hash").Return(true)
	fx.serviceRepo.On("FindByOwner", ctx, user.ID).Return(nil, domainerrors.ErrServiceNotFound)
	fx.tokenService.On("IssuePair", mock.MatchedBy(func(p service.Payload) bool {
		return p.UserID == user.ID && p.Username == "amara" && p.ServiceID == nil
	})).Return(testPair(), nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.Pair.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "amara@ebbs.test", PasswordHash: "h", Salt: "s"}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.credentials.On("Compare", "wrong", "s", "h").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@ebbs.test").Return(nil, domainerrors.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@ebbs.test", Password: "whatever"})

	assert.Nil(t, output)
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username:      "amara",
		Email:         "amara@ebbs.test",
		Password:      "Password123!",
		PassCode:      "123456",
		PassCodeToken: "sealed-token",
	}

	fx.passCodes.On("Open", "sealed-token", "123456").Return(input.Email, nil)
	fx.credentials.On("Hash", input.Password).Return("new-hash", "new-salt", nil)

	createdID := uuid.New()
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.On("NewUserRepository").Return(txUserRepo)
	txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = createdID
		}).
		Return(nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory)

	fx.serviceRepo.On("FindByOwner", ctx, createdID).Return(nil, domainerrors.ErrServiceNotFound)
	fx.tokenService.On("IssuePair", mock.AnythingOfType("service.Payload")).Return(testPair(), nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, createdID, output.User.ID)
	assert.Equal(t, "new-hash", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAccountService_Register_EmailMismatch(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.passCodes.On("Open", "sealed-token", "123456").Return("other@ebbs.test", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:      "amara",
		Email:         "amara@ebbs.test",
		Password:      "Password123!",
		PassCode:      "123456",
		PassCodeToken: "sealed-token",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPassCodeInvalid)
}

func TestAccountService_Refresh_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "amara", Role: entity.RoleUser}
	claims := &service.Claims{Username: "amara"}
	claims.Subject = user.ID.String()
	claims.Audience = []string{entity.RoleUser.String()}

	fx.tokenService.On("ParseRefresh", "old-refresh").Return(claims, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.serviceRepo.On("FindByOwner", ctx, user.ID).Return(nil, domainerrors.ErrServiceNotFound)
	fx.tokenService.On("IssuePair", mock.AnythingOfType("service.Payload")).Return(testPair(), nil)

	output, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "refresh", output.Pair.RefreshToken)
}

func TestAccountService_Refresh_DeletedUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	claims := &service.Claims{Username: "ghost"}
	claims.Subject = userID.String()

	fx.tokenService.On("ParseRefresh", "old-refresh").Return(claims, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

	output, err := fx.service.Refresh(ctx, "old-refresh")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountService_RequestPassCode_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.passCodes.On("Generate").Return("654321", "hash-of-code", nil)
	fx.passCodes.On("Seal", "amara@ebbs.test", "hash-of-code", "654321").Return("sealed-token", nil)
	fx.mailer.On("Send", ctx, "amara@ebbs.test", "Your pass code", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "654321")
	})).Return(nil)

	output, err := fx.service.RequestPassCode(ctx, &usecase.RequestPassCodeInput{Email: "amara@ebbs.test"})

	require.NoError(t, err)
	assert.Equal(t, "sealed-token", output.Token)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "amara@ebbs.test"}

	fx.passCodes.On("Open", "sealed-token", "654321").Return(user.Email, nil)
	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.credentials.On("Hash", "NewPassword123!").Return("new-hash", "new-salt", nil)
	fx.userRepo.On("UpdateCredentials", ctx, user.ID, "new-hash", "new-salt").Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		NewPassword:   "NewPassword123!",
		PassCode:      "654321",
		PassCodeToken: "sealed-token",
	})

	require.NoError(t, err)
}

func TestAccountService_Login_StampsServiceIntoToken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "amara", PasswordHash: "h", Salt: "s", Role: entity.RoleUser}
	storefront := &entity.Service{ID: uuid.New(), OwnerID: user.ID, Title: "Amara Wears"}

	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(user, nil)
	fx.credentials.On("Compare", mock.Anything, "s", "h").Return(true)
	fx.serviceRepo.On("FindByOwner", ctx, user.ID).Return(storefront, nil)
	fx.tokenService.On("IssuePair", mock.MatchedBy(func(p service.Payload) bool {
		return p.ServiceID != nil && *p.ServiceID == storefront.ID
	})).Return(testPair(), nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "amara@ebbs.test", Password: "pw"})

	require.NoError(t, err)
}
