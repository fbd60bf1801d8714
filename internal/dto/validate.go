package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/moneynest/money_tracker_app/internal/apperrors"
)

// validate is shared across requests; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// Validate checks the struct tags on a request and wraps any failure in
// apperrors.ErrValidation so callers can match with errors.Is.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
