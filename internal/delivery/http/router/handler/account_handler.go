// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/irabeny89/ebbs-io/config"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/middleware"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/response"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// refreshCookieName carries the refresh token between /auth calls.
	refreshCookieName = "token"

	// passCodeCookieName carries the sealed pass code token while the mailed
	// code is in flight.
	passCodeCookieName = "passToken"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Cfg       *config.Config
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		cfg:       params.Cfg,
		logger:    params.Logger,
	}
}

// authResponse is the body returned after login, registration and refresh.
// The refresh token travels in a cookie only.
type authResponse struct {
	AccessToken string `json:"accessToken"`
	User        any    `json:"user,omitempty"`
}

// RequestPassCode mails a one-time code and stores its sealed token in a
// short-lived cookie.
func (h *AccountHandler) RequestPassCode(c echo.Context) error {
	var input *usecase.RequestPassCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pass code request input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.accountUC.RequestPassCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setCookie(c, passCodeCookieName, output.Token, int(h.cfg.Auth.PassCodeTTL.Seconds()))

	return response.Success(c, http.StatusOK, nil, "Pass code sent")
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.PassCodeToken = h.readCookie(c, passCodeCookieName)

	output, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.clearCookie(c, passCodeCookieName)
	h.setRefreshCookie(c, output.Pair.RefreshToken)

	return response.Success(c, http.StatusCreated, authResponse{
		AccessToken: output.Pair.AccessToken,
		User:        output.User,
	}, "Account registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.Pair.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.Pair.AccessToken,
		User:        output.User,
	}, "Login successful")
}

// Refresh reissues the token pair from the refresh cookie and rotates it.
func (h *AccountHandler) Refresh(c echo.Context) error {
	refreshToken := h.readCookie(c, refreshCookieName)
	if refreshToken == "" {
		return domainerrors.ErrUnauthorized
	}

	output, err := h.accountUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.Pair.RefreshToken)

	return response.Success(c, http.StatusOK, authResponse{
		AccessToken: output.Pair.AccessToken,
	}, "Token refreshed successfully")
}

// Logout clears the refresh cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	h.clearCookie(c, refreshCookieName)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ChangePassword sets a new password after a pass code exchange.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.PassCodeToken = h.readCookie(c, passCodeCookieName)

	if err := h.accountUC.ChangePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	h.clearCookie(c, passCodeCookieName)

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// Profile returns the authenticated account.
func (h *AccountHandler) Profile(c echo.Context) error {
	payload, ok := middleware.CurrentPayload(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.accountUC.Profile(c.Request().Context(), payload.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

func (h *AccountHandler) setRefreshCookie(c echo.Context, token string) {
	h.setCookie(c, refreshCookieName, token, int(h.cfg.Auth.RefreshTTL.Seconds()))
}

func (h *AccountHandler) setCookie(c echo.Context, name, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AccountHandler) clearCookie(c echo.Context, name string) {
	h.setCookie(c, name, "", -1)
}

func (h *AccountHandler) readCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
