// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "github.com/irabeny89/ebbs-io/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *playground.Validate
}

// New creates the validator installed on the Echo server.
func New() *requestValidator {
	return &requestValidator{validate: playground.New()}
}

// Validate checks struct tags on bound request bodies.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
