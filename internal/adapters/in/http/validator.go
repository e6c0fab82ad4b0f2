package http

import (
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks the validate tags of request bodies for echo.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate reports a failed rule as an invalid value so it maps to 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
