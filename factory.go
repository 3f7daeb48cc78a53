package monetary

import (
	"fmt"
)

// RoundedFactory applies a configured [RoundingOperator] to numbers.
// It is immutable, stateless and safe for concurrent use by multiple goroutines.
//
// The zero value has no operator and fails with [ErrConfiguration].
// Use [NewRoundedFactory] or [RoundedFactoryBuilder] to obtain a factory.
type RoundedFactory struct {
	op RoundingOperator
}

// NewRoundedFactory returns a factory wrapping the operator.
// The operator is validated on the first call to [RoundedFactory.Apply].
func NewRoundedFactory(op RoundingOperator) RoundedFactory {
	return RoundedFactory{op: op}
}

// Operator returns the wrapped operator, or nil for the zero value.
func (f RoundedFactory) Operator() RoundingOperator {
	return f.op
}

// Apply returns v rounded by the wrapped operator.
// Apply is deterministic: equal arguments always produce equal results.
func (f RoundedFactory) Apply(v NumberValue) (NumberValue, error) {
	if f.op == nil {
		return nil, fmt.Errorf("%w: factory has no rounding operator", ErrConfiguration)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: number is missing", ErrValidation)
	}
	return f.op.Apply(v)
}

// String implements the [fmt.Stringer] interface.
func (f RoundedFactory) String() string {
	if f.op == nil {
		return "RoundedFactory{}"
	}
	return "RoundedFactory{" + f.op.String() + "}"
}

// RoundedFactoryBuilder is the first stage of building a [RoundedFactory].
// It fixes the rounding mode; the next stage chooses the scale,
// the precision, or both.
//
// Every stage is an immutable value.
// Configuring a stage returns a new stage and leaves the receiver intact,
// so one stage can be reused to build several diverging factories:
//
//	scaled := NewRoundedFactoryBuilder(HalfUp).WithScale(2)
//	coarse, _ := scaled.WithPrecision(3).Build()
//	fine, _ := scaled.WithPrecision(6).Build()
//
// Stages do not validate their arguments.
// Invalid scales, precisions or modes are reported by Build
// with [ErrConfiguration].
type RoundedFactoryBuilder struct {
	mode RoundingMode
}

// NewRoundedFactoryBuilder returns the first stage for the given rounding mode.
func NewRoundedFactoryBuilder(mode RoundingMode) RoundedFactoryBuilder {
	return RoundedFactoryBuilder{mode: mode}
}

// Mode returns the rounding mode.
func (b RoundedFactoryBuilder) Mode() RoundingMode {
	return b.mode
}

// WithScale sets the number of digits to the right of the decimal point.
func (b RoundedFactoryBuilder) WithScale(scale int) RoundedFactoryWithScaleBuilder {
	return RoundedFactoryWithScaleBuilder{mode: b.mode, scale: scale}
}

// WithPrecision sets the total number of significant digits.
func (b RoundedFactoryBuilder) WithPrecision(prec int) RoundedFactoryWithPrecisionBuilder {
	return RoundedFactoryWithPrecisionBuilder{mode: b.mode, prec: prec}
}

// String implements the [fmt.Stringer] interface.
func (b RoundedFactoryBuilder) String() string {
	return fmt.Sprintf("RoundedFactoryBuilder{mode: %v}", b.mode)
}

// RoundedFactoryWithScaleBuilder is the stage with a rounding mode and a scale.
// It either builds a factory with a [ScaleOperator] or adds a precision.
type RoundedFactoryWithScaleBuilder struct {
	mode  RoundingMode
	scale int
}

// WithPrecision sets the total number of significant digits,
// keeping the scale and the mode of the receiver.
func (b RoundedFactoryWithScaleBuilder) WithPrecision(prec int) RoundedFactoryWithPrecisionScaleBuilder {
	return RoundedFactoryWithPrecisionScaleBuilder{mode: b.mode, scale: b.scale, prec: prec}
}

// Build returns a factory using a [ScaleOperator].
//
// Build returns [ErrConfiguration] if the scale is negative or the mode is unknown.
func (b RoundedFactoryWithScaleBuilder) Build() (RoundedFactory, error) {
	op, err := NewScaleOperator(b.scale, b.mode)
	if err != nil {
		return RoundedFactory{}, fmt.Errorf("building rounded factory: %w", err)
	}
	return NewRoundedFactory(op), nil
}

// String implements the [fmt.Stringer] interface.
func (b RoundedFactoryWithScaleBuilder) String() string {
	return fmt.Sprintf("RoundedFactoryWithScaleBuilder{mode: %v, scale: %v}", b.mode, b.scale)
}

// RoundedFactoryWithPrecisionBuilder is the stage with a rounding mode and a precision.
// It either builds a factory with a [MathContextOperator] or adds a scale.
type RoundedFactoryWithPrecisionBuilder struct {
	mode RoundingMode
	prec int
}

// WithScale sets the number of digits to the right of the decimal point,
// keeping the precision and the mode of the receiver.
func (b RoundedFactoryWithPrecisionBuilder) WithScale(scale int) RoundedFactoryWithPrecisionScaleBuilder {
	return RoundedFactoryWithPrecisionScaleBuilder{mode: b.mode, scale: scale, prec: b.prec}
}

// Build returns a factory using a [MathContextOperator].
//
// Build returns [ErrConfiguration] if the precision is not positive or the mode is unknown.
func (b RoundedFactoryWithPrecisionBuilder) Build() (RoundedFactory, error) {
	op, err := NewMathContextOperator(b.prec, b.mode)
	if err != nil {
		return RoundedFactory{}, fmt.Errorf("building rounded factory: %w", err)
	}
	return NewRoundedFactory(op), nil
}

// String implements the [fmt.Stringer] interface.
func (b RoundedFactoryWithPrecisionBuilder) String() string {
	return fmt.Sprintf("RoundedFactoryWithPrecisionBuilder{mode: %v, precision: %v}", b.mode, b.prec)
}

// RoundedFactoryWithPrecisionScaleBuilder is the final stage with a rounding
// mode, a precision and a scale. It accepts no further configuration.
type RoundedFactoryWithPrecisionScaleBuilder struct {
	mode  RoundingMode
	scale int
	prec  int
}

// Build returns a factory using a [PrecisionScaleOperator].
//
// Build returns [ErrConfiguration] if the scale is negative, the precision is
// not positive or the mode is unknown.
func (b RoundedFactoryWithPrecisionScaleBuilder) Build() (RoundedFactory, error) {
	op, err := NewPrecisionScaleOperator(b.scale, b.prec, b.mode)
	if err != nil {
		return RoundedFactory{}, fmt.Errorf("building rounded factory: %w", err)
	}
	return NewRoundedFactory(op), nil
}

// String implements the [fmt.Stringer] interface.
func (b RoundedFactoryWithPrecisionScaleBuilder) String() string {
	return fmt.Sprintf("RoundedFactoryWithPrecisionScaleBuilder{mode: %v, scale: %v, precision: %v}", b.mode, b.scale, b.prec)
}
