package middleware

import (
	"github.com/irabeny89/ebbs-io/internal/domain/entity"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo.Context key holding the authenticated token payload.
const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token carried in the Authorization
// header and stores its payload on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ParseAccess(authHeader)
		if err != nil {
			return err
		}

		payload, err := claims.Payload()
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(identityKey, payload)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			payload, ok := CurrentPayload(c)
			if !ok || payload.Audience != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// CurrentPayload returns the token payload stored by Authenticate.
func CurrentPayload(c echo.Context) (service.Payload, bool) {
	payload, ok := c.Get(identityKey).(service.Payload)

	return payload, ok
}
