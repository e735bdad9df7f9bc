// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/irabeny89/ebbs-io/internal/delivery/context"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/repository"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	serviceRepo  repository.ServiceRepository
	credentials  service.CredentialService
	tokenService service.TokenService
	passCodes    service.PassCodeService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ServiceRepo  repository.ServiceRepository
	Credentials  service.CredentialService
	TokenService service.TokenService
	PassCodes    service.PassCodeService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		serviceRepo:  params.ServiceRepo,
		credentials:  params.Credentials,
		tokenService: params.TokenService,
		passCodes:    params.PassCodes,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account after verifying the mailed pass code, then logs
// the new user straight in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email, err := srv.passCodes.Open(input.PassCodeToken, input.PassCode)
	if err != nil {
		return nil, err
	}
	if email != input.Email {
		return nil, domainerrors.ErrPassCodeInvalid
	}

	hash, salt, err := srv.credentials.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.Any("userID", user.ID))

	return srv.issueFor(ctx, user)
}

// Login verifies the credentials and issues a fresh token pair. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !srv.credentials.Compare(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueFor(ctx, user)
}

// Refresh validates a refresh token and reissues a full pair. The account is
// re-read so a deleted user cannot keep rotating tokens.
func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	payload, err := claims.Payload()
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, err
	}

	return srv.issueFor(ctx, user)
}

// RequestPassCode mails a one-time code and returns its sealed token. The
// plaintext code only ever leaves through the mail.
func (srv *accountService) RequestPassCode(ctx context.Context, input *usecase.RequestPassCodeInput) (*usecase.PassCodeOutput, error) {
	code, hash, err := srv.passCodes.Generate()
	if err != nil {
		return nil, err
	}

	token, err := srv.passCodes.Seal(input.Email, hash, code)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your one-time pass code is %s. It expires shortly, enter it where you requested it.", code)
	if err := srv.mailer.Send(ctx, input.Email, "Your pass code", body); err != nil {
		srv.log(ctx).Error("Pass code mail failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "mail pass code")
	}

	srv.log(ctx).Info("Pass code issued", slog.String("email", input.Email))

	return &usecase.PassCodeOutput{Token: token}, nil
}

// ChangePassword sets a new password after a pass code exchange.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	email, err := srv.passCodes.Open(input.PassCodeToken, input.PassCode)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, salt, err := srv.credentials.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	if err := srv.userRepo.UpdateCredentials(ctx, user.ID, hash, salt); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// Profile returns the account of the authenticated user.
func (srv *accountService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.userRepo.FindByID(ctx, userID)
}

// issueFor stamps the user's storefront, when one exists, into the token pair
// so provider-only routes can authorize without a lookup.
func (srv *accountService) issueFor(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	var serviceID *uuid.UUID
	svc, err := srv.serviceRepo.FindByOwner(ctx, user.ID)
	switch {
	case err == nil:
		serviceID = &svc.ID
	case errors.Is(err, domainerrors.ErrServiceNotFound):
		// No storefront yet.
	default:
		return nil, err
	}

	pair, err := srv.tokenService.IssuePair(service.Payload{
		UserID:    user.ID,
		Username:  user.Username,
		ServiceID: serviceID,
		Audience:  user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Pair: pair, User: user}, nil
}
