// Package validation provides custom validation rules for command-line input.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	apperrors "github.com/allisson/bsn-generator/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// BSNClass validates that a string names a known class ("valid" or "invalid").
var BSNClass = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := domain.ParseClass(s)
		return err == nil
	},
	validation.NewError("validation_bsn_class", "must be one of: valid, invalid"),
)

// PositiveCount validates that an int is greater than zero. Unlike validation.Min it
// does not treat zero as an absent value.
var PositiveCount = validation.By(func(value interface{}) error {
	n, ok := value.(int)
	if !ok || n <= 0 {
		return validation.NewError("validation_positive_count", "must be a positive integer")
	}
	return nil
})
