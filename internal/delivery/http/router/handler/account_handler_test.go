package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irabeny89/ebbs-io/config"
	"github.com/irabeny89/ebbs-io/internal/delivery/http/validator"
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/usecase"
)

// stubAccountUsecase returns canned outputs so cookie behavior can be
// asserted without the full service stack.
type stubAccountUsecase struct {
	pair          *service.Pair
	refreshedWith string
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return &usecase.AuthOutput{Pair: s.pair, User: &entity.User{ID: uuid.New(), Username: input.Username}}, nil
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return &usecase.AuthOutput{Pair: s.pair, User: &entity.User{ID: uuid.New(), Email: input.Email}}, nil
}

func (s *stubAccountUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	s.refreshedWith = refreshToken

	return &usecase.AuthOutput{Pair: s.pair}, nil
}

func (s *stubAccountUsecase) RequestPassCode(ctx context.Context, input *usecase.RequestPassCodeInput) (*usecase.PassCodeOutput, error) {
	return &usecase.PassCodeOutput{Token: "sealed-pass-token"}, nil
}

func (s *stubAccountUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	return nil
}

func (s *stubAccountUsecase) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return &entity.User{ID: userID}, nil
}

func newTestAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			RefreshTTL:  30 * 24 * time.Hour,
			PassCodeTTL: 10 * time.Minute,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAccountHandler(AccountHandlerParams{
		AccountUC: uc,
		Cfg:       cfg,
		Logger:    logger,
	})
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAccountHandler_Login_SetsRefreshCookie(t *testing.T) {
	uc := &stubAccountUsecase{pair: &service.Pair{AccessToken: "access-abc", RefreshToken: "refresh-xyz"}}
	h := newTestAccountHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@ebbs.test","password":"s3cretpass"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, "token")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-xyz", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 2592000, cookie.MaxAge)

	// The refresh token never appears in the response body
	assert.Contains(t, rec.Body.String(), "access-abc")
	assert.NotContains(t, rec.Body.String(), "refresh-xyz")
}

func TestAccountHandler_Refresh_RotatesCookie(t *testing.T) {
	uc := &stubAccountUsecase{pair: &service.Pair{AccessToken: "new-access", RefreshToken: "new-refresh"}}
	h := newTestAccountHandler(uc)

	c, rec := newTestContext(http.MethodPost, "/auth/refresh", "")
	c.Request().AddCookie(&http.Cookie{Name: "token", Value: "old-refresh"})

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, "old-refresh", uc.refreshedWith)

	cookie := findCookie(rec, "token")
	require.NotNil(t, cookie)
	assert.Equal(t, "new-refresh", cookie.Value)
	assert.Contains(t, rec.Body.String(), "new-access")
}

func TestAccountHandler_Refresh_MissingCookie(t *testing.T) {
	uc := &stubAccountUsecase{pair: &service.Pair{}}
	h := newTestAccountHandler(uc)

	c, _ := newTestContext(http.MethodPost, "/auth/refresh", "")

	err := h.Refresh(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAccountHandler_Logout_ClearsCookie(t *testing.T) {
	h := newTestAccountHandler(&stubAccountUsecase{})

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))

	cookie := findCookie(rec, "token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAccountHandler_RequestPassCode_SetsShortLivedCookie(t *testing.T) {
	h := newTestAccountHandler(&stubAccountUsecase{})

	c, rec := newTestContext(http.MethodPost, "/auth/passcode", `{"email":"ada@ebbs.test"}`)

	require.NoError(t, h.RequestPassCode(c))

	cookie := findCookie(rec, "passToken")
	require.NotNil(t, cookie)
	assert.Equal(t, "sealed-pass-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 600, cookie.MaxAge)
}
