// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// Payload is the identity carried by every issued token.
type Payload struct {
	UserID    uuid.UUID
	Username  string
	ServiceID *uuid.UUID
	Audience  entity.Role
}

// Pair bundles the access and refresh tokens issued together. Both encode the
// same payload and differ only in signing secret and lifetime.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Username  string     `json:"username"`
	ServiceID *uuid.UUID `json:"serviceId,omitempty"`
	jwt.RegisteredClaims
}

// Payload rebuilds the token payload from parsed claims.
func (c *Claims) Payload() (Payload, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Payload{}, err
	}

	audience := entity.RoleUser
	if len(c.Audience) > 0 {
		audience = entity.Role(c.Audience[0])
	}

	return Payload{
		UserID:    userID,
		Username:  c.Username,
		ServiceID: c.ServiceID,
		Audience:  audience,
	}, nil
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssuePair creates a fresh access/refresh token pair for the payload.
	IssuePair(payload Payload) (*Pair, error)

	// ParseAccess validates an access token string, tolerating a Bearer prefix.
	ParseAccess(token string) (*Claims, error)

	// ParseRefresh validates a refresh token string.
	ParseRefresh(token string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
