package monetary

import "errors"

// Errors returned by this package can be matched with [errors.Is].
var (
	// ErrValidation is returned when a builder is missing a required field
	// or was seeded with an invalid provider or rate type.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration is returned when a rounding context cannot be
	// materialized, e.g. for a negative scale or a non-positive precision.
	ErrConfiguration = errors.New("invalid rounding configuration")

	// ErrArithmetic is returned when an operation cannot produce an exact
	// result, e.g. rounding with [Unnecessary] or division by zero.
	ErrArithmetic = errors.New("arithmetic error")
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errCurrencyMismatch = errors.New("currency mismatch")
	errInvalidCurrency  = errors.New("invalid currency")
)
