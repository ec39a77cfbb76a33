// Package validator wraps go-playground/validator with the chain-specific
// tags used across chainscope and a uniform error format.
//
// Custom tags:
//
//	bech32  - canonical bech32 account address (see package address)
//	txhash  - 32-byte hash written as 64 hexadecimal characters, optional 0x prefix
package validator

import (
	"errors"
	"fmt"

	"github.com/gabapcia/chainscope/internal/pkg/address"
	"github.com/gabapcia/chainscope/internal/pkg/types"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the joined chain returned when
// validation fails, so callers can match it with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// txHashLength is the byte length of a Tendermint transaction hash (SHA-256).
const txHashLength = 32

// errStringFormat describes one failed field.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'bech32' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func, neither of which
	// can happen here.
	_ = validator.RegisterValidation("bech32", func(fl gvalidator.FieldLevel) bool {
		return address.IsBech32(fl.Field().String())
	})
	_ = validator.RegisterValidation("txhash", func(fl gvalidator.FieldLevel) bool {
		h, err := types.ParseHexBytes(fl.Field().String())
		return err == nil && len(h) == txHashLength
	})
}

// formatError turns validator field errors into ErrValidationFailed joined
// with one formatted error per field. Other errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	type Input struct {
//	    Address string `validate:"required,bech32"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject input
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(height, "gt=0").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
