// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/irabeny89/ebbs-io/config"
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
)

const bearerPrefix = "Bearer "

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with distinct secrets, so a token of
// one kind can never pass validation as the other.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		issuer:        cfg.Auth.IssuerHost,
		accessTTL:     cfg.Auth.AccessTTL,
		refreshTTL:    cfg.Auth.RefreshTTL,
	}, nil
}

// IssuePair creates a fresh access/refresh token pair carrying the same payload.
func (s *jwtService) IssuePair(payload service.Payload) (*service.Pair, error) {
	accessToken, err := s.signToken(payload, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.signToken(payload, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}

	return &service.Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ParseAccess validates an access token string. A leading "Bearer " scheme,
// as sent in Authorization headers, is stripped before parsing.
func (s *jwtService) ParseAccess(token string) (*service.Claims, error) {
	return s.parseToken(strings.TrimPrefix(token, bearerPrefix), s.accessSecret)
}

// ParseRefresh validates a refresh token string.
func (s *jwtService) ParseRefresh(token string) (*service.Claims, error) {
	return s.parseToken(token, s.refreshSecret)
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) signToken(payload service.Payload, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Username:  payload.Username,
		ServiceID: payload.ServiceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID.String(),
			Audience:  jwt.ClaimStrings{payload.Audience.String()},
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseToken validates a token string against a secret. Every failure mode,
// bad signature, expiry, malformed input, collapses into the opaque
// authorization error so callers leak nothing to clients.
func (s *jwtService) parseToken(tokenString, secret string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
