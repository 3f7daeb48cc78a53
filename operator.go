package monetary

import (
	"fmt"
)

// RoundingOperator rounds a number under a fixed policy.
// The set of operators is closed: [ScaleOperator], [MathContextOperator]
// and [PrecisionScaleOperator].
//
// Operators are immutable values and are safe for concurrent use by
// multiple goroutines.
type RoundingOperator interface {
	// Apply returns the rounded number.
	// The result has the same kind as the argument, see [NumberValue.WithUnscaled].
	Apply(v NumberValue) (NumberValue, error)

	fmt.Stringer

	// validate reports a configuration error, if any.
	validate() error
}

func validateScale(scale int) error {
	if scale < 0 {
		return fmt.Errorf("%w: scale must not be negative, got %v", ErrConfiguration, scale)
	}
	return nil
}

func validatePrec(prec int) error {
	if prec <= 0 {
		return fmt.Errorf("%w: precision must be positive, got %v", ErrConfiguration, prec)
	}
	return nil
}

func validateMode(mode RoundingMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: unknown rounding mode %v", ErrConfiguration, mode)
	}
	return nil
}

// ScaleOperator rounds a number to a fixed number of digits after the
// decimal point.
// The zero value rounds to integers using [HalfEven].
type ScaleOperator struct {
	scale int
	mode  RoundingMode
}

// NewScaleOperator returns an operator that rounds to the given scale.
//
// NewScaleOperator returns [ErrConfiguration] if the scale is negative
// or the mode is unknown.
func NewScaleOperator(scale int, mode RoundingMode) (ScaleOperator, error) {
	op := ScaleOperator{scale: scale, mode: mode}
	if err := op.validate(); err != nil {
		return ScaleOperator{}, err
	}
	return op, nil
}

// Scale returns the number of digits after the decimal point in the results.
func (op ScaleOperator) Scale() int {
	return op.scale
}

// Mode returns the rounding mode.
func (op ScaleOperator) Mode() RoundingMode {
	return op.mode
}

func (op ScaleOperator) validate() error {
	if err := validateScale(op.scale); err != nil {
		return err
	}
	return validateMode(op.mode)
}

// Apply rounds v to exactly [ScaleOperator.Scale] digits after the decimal point.
// Numbers with fewer digits are zero-padded.
//
// Apply returns [ErrArithmetic] if the mode is [Unnecessary] and rounding
// would discard a non-zero digit.
func (op ScaleOperator) Apply(v NumberValue) (NumberValue, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	coef, scale := v.Unscaled()
	coef, err := rescale(coef, scale, op.scale, op.mode)
	if err != nil {
		return nil, fmt.Errorf("rounding %v to scale %v: %w", v, op.scale, err)
	}
	return v.WithUnscaled(coef, op.scale)
}

// String implements the [fmt.Stringer] interface.
func (op ScaleOperator) String() string {
	return fmt.Sprintf("ScaleOperator{scale: %v, mode: %v}", op.scale, op.mode)
}

// MathContextOperator rounds a number to a fixed number of significant digits.
//
// Unlike [ScaleOperator], the precision counts digits on both sides of the
// decimal point: 12345.6789 rounded to a precision of 4 is 12350,
// while rounding it to a scale of 4 leaves it unchanged.
//
// The zero value has a precision of 0, which is not a valid configuration,
// so its Apply method always fails with [ErrConfiguration].
type MathContextOperator struct {
	prec int
	mode RoundingMode
}

// NewMathContextOperator returns an operator that rounds to the given precision.
//
// NewMathContextOperator returns [ErrConfiguration] if the precision is not
// positive or the mode is unknown.
// A precision of 0 is rejected, it never means "unlimited".
func NewMathContextOperator(prec int, mode RoundingMode) (MathContextOperator, error) {
	op := MathContextOperator{prec: prec, mode: mode}
	if err := op.validate(); err != nil {
		return MathContextOperator{}, err
	}
	return op, nil
}

// Prec returns the maximum number of significant digits in the results.
func (op MathContextOperator) Prec() int {
	return op.prec
}

// Mode returns the rounding mode.
func (op MathContextOperator) Mode() RoundingMode {
	return op.mode
}

func (op MathContextOperator) validate() error {
	if err := validatePrec(op.prec); err != nil {
		return err
	}
	return validateMode(op.mode)
}

// Apply rounds v to at most [MathContextOperator.Prec] significant digits.
// Numbers that already fit are returned unchanged.
//
// Apply returns [ErrArithmetic] if the mode is [Unnecessary] and rounding
// would discard a non-zero digit.
func (op MathContextOperator) Apply(v NumberValue) (NumberValue, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	coef, scale := v.Unscaled()
	coef, scale, err := reprec(coef, scale, op.prec, op.mode)
	if err != nil {
		return nil, fmt.Errorf("rounding %v to precision %v: %w", v, op.prec, err)
	}
	return v.WithUnscaled(coef, scale)
}

// String implements the [fmt.Stringer] interface.
func (op MathContextOperator) String() string {
	return fmt.Sprintf("MathContextOperator{precision: %v, mode: %v}", op.prec, op.mode)
}

// PrecisionScaleOperator rounds a number to a fixed number of significant
// digits first and then rounds the result to a fixed number of digits after
// the decimal point, using the same mode for both steps.
//
// The order matters: the second step rounds the already rounded value,
// not the original one.
type PrecisionScaleOperator struct {
	scale int
	prec  int
	mode  RoundingMode
}

// NewPrecisionScaleOperator returns an operator that rounds to the given
// precision and then to the given scale.
//
// NewPrecisionScaleOperator returns [ErrConfiguration] if the scale is negative,
// the precision is not positive or the mode is unknown.
func NewPrecisionScaleOperator(scale, prec int, mode RoundingMode) (PrecisionScaleOperator, error) {
	op := PrecisionScaleOperator{scale: scale, prec: prec, mode: mode}
	if err := op.validate(); err != nil {
		return PrecisionScaleOperator{}, err
	}
	return op, nil
}

// Scale returns the number of digits after the decimal point in the results.
func (op PrecisionScaleOperator) Scale() int {
	return op.scale
}

// Prec returns the precision of the first rounding step.
func (op PrecisionScaleOperator) Prec() int {
	return op.prec
}

// Mode returns the rounding mode.
func (op PrecisionScaleOperator) Mode() RoundingMode {
	return op.mode
}

func (op PrecisionScaleOperator) validate() error {
	if err := validateScale(op.scale); err != nil {
		return err
	}
	if err := validatePrec(op.prec); err != nil {
		return err
	}
	return validateMode(op.mode)
}

// Apply is equivalent to applying a [MathContextOperator] followed by
// a [ScaleOperator].
func (op PrecisionScaleOperator) Apply(v NumberValue) (NumberValue, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	coef, scale := v.Unscaled()
	coef, scale, err := reprec(coef, scale, op.prec, op.mode)
	if err != nil {
		return nil, fmt.Errorf("rounding %v to precision %v: %w", v, op.prec, err)
	}
	coef, err = rescale(coef, scale, op.scale, op.mode)
	if err != nil {
		return nil, fmt.Errorf("rounding %v to scale %v: %w", v, op.scale, err)
	}
	return v.WithUnscaled(coef, op.scale)
}

// String implements the [fmt.Stringer] interface.
func (op PrecisionScaleOperator) String() string {
	return fmt.Sprintf("PrecisionScaleOperator{scale: %v, precision: %v, mode: %v}", op.scale, op.prec, op.mode)
}
