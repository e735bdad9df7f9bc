// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account. The
// PassCode pair proves the email was verified through a mailed code.
type RegisterInput struct {
	Username      string `json:"username" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	PassCode      string `json:"passCode" validate:"required"`
	PassCodeToken string `json:"-"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RequestPassCodeInput asks for a one-time code to be mailed out.
type RequestPassCodeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordInput defines the data required to set a new password after a
// pass code exchange.
type ChangePasswordInput struct {
	NewPassword   string `json:"newPassword" validate:"required,min=8"`
	PassCode      string `json:"passCode" validate:"required"`
	PassCodeToken string `json:"-"`
}

// --- Output DTOs ---

// AuthOutput returns the token pair after a successful login, registration or
// refresh. The refresh token travels back to the client in a cookie only.
type AuthOutput struct {
	Pair *service.Pair
	User *entity.User
}

// PassCodeOutput carries the sealed pass code token. The plaintext code goes
// out by mail and is never returned to the caller.
type PassCodeOutput struct {
	Token string
}

// AccountUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh validates a refresh token and reissues a full pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// RequestPassCode mails a one-time code and returns its sealed token.
	RequestPassCode(ctx context.Context, input *RequestPassCodeInput) (*PassCodeOutput, error)

	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// Profile returns the account of the authenticated user.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
