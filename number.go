package monetary

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// NumberValue is the numeric capability required by rounding operators.
// Implementations are decimal numbers equal to coef / 10^scale.
// [Number] and [Amount] implement NumberValue.
type NumberValue interface {
	// Unscaled returns the coefficient and the scale of the number.
	// The scale may be negative.
	// The returned coefficient must not be shared with the number.
	Unscaled() (coef *big.Int, scale int)

	// WithUnscaled returns a number of the same kind equal to coef / 10^scale.
	// It returns an error if the result cannot be represented.
	WithUnscaled(coef *big.Int, scale int) (NumberValue, error)
}

// Number is an immutable arbitrary-precision decimal number.
// Its zero value is 0.
//
// A Number keeps its scale exactly: trailing zeros are never removed
// implicitly, so "1.50" and "1.5" are equal numbers with different scales.
// Negative scales are supported, 1.2E+3 has a scale of -2 and is
// printed as "1200".
type Number struct {
	value decimal.Decimal
}

func newNumber(coef *big.Int, scale int) (Number, error) {
	if scale > math.MaxInt32 || scale < -math.MaxInt32 {
		return Number{}, fmt.Errorf("%w: scale %v is out of range", ErrArithmetic, scale)
	}
	return Number{value: decimal.NewFromBigInt(coef, int32(-scale))}, nil
}

// NewNumber returns a number equal to coef / 10^scale.
// It panics if the scale is outside [-math.MaxInt32, math.MaxInt32].
func NewNumber(coef int64, scale int) Number {
	n, err := newNumber(big.NewInt(coef), scale)
	if err != nil {
		panic(fmt.Sprintf("NewNumber(%v, %v) failed: %v", coef, scale, err))
	}
	return n
}

// NewNumberFromFloat64 converts a float to the shortest number that
// represents it exactly when formatted.
//
// NewNumberFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewNumberFromFloat64(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("converting float: special value %v", f)
	}
	return Number{value: decimal.NewFromFloat(f)}, nil
}

// ParseNumber converts a string to a number.
// Both plain ("123.45") and scientific ("1.2345e2") notations are accepted.
func ParseNumber(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number: %w", err)
	}
	return Number{value: d}, nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return n
}

// numberOf converts any [NumberValue] to a Number.
func numberOf(v NumberValue) (Number, error) {
	if n, ok := v.(Number); ok {
		return n, nil
	}
	return newNumber(v.Unscaled())
}

// Unscaled implements the [NumberValue] interface.
func (n Number) Unscaled() (*big.Int, int) {
	return n.value.Coefficient(), -int(n.value.Exponent())
}

// WithUnscaled implements the [NumberValue] interface.
// The result is always a Number.
func (n Number) WithUnscaled(coef *big.Int, scale int) (NumberValue, error) {
	return newNumber(coef, scale)
}

// Decimal returns the underlying [decimal.Decimal].
func (n Number) Decimal() decimal.Decimal {
	return n.value
}

// Prec returns the number of digits in the coefficient.
// The coefficient of 0 has one digit.
func (n Number) Prec() int {
	return digits(n.value.Coefficient())
}

// Scale returns the number of digits after the decimal point.
// It is negative for numbers like 1.2E+3.
func (n Number) Scale() int {
	return -int(n.value.Exponent())
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n = 0
//	+1 if n > 0
func (n Number) Sign() int {
	return n.value.Sign()
}

// IsZero returns true if n = 0.
func (n Number) IsZero() bool {
	return n.value.IsZero()
}

// Cmp compares numbers numerically and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Number) Cmp(m Number) int {
	return n.value.Cmp(m.value)
}

// Equal returns true if numbers are numerically equal, regardless of scale.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// Add returns the exact sum of n and m.
func (n Number) Add(m Number) Number {
	return Number{value: n.value.Add(m.value)}
}

// Mul returns the exact product of n and m.
// The scale of the product is the sum of the scales.
func (n Number) Mul(m Number) Number {
	return Number{value: n.value.Mul(m.value)}
}

// Neg returns a number with the opposite sign.
func (n Number) Neg() Number {
	return Number{value: n.value.Neg()}
}

// Trim returns a number with trailing zeros removed up to the given scale.
func (n Number) Trim(scale int) Number {
	coef, s := n.Unscaled()
	coef, s = trim(coef, s, scale)
	return Number{value: decimal.NewFromBigInt(coef, int32(-s))} //nolint:gosec
}

// canonical returns the representation without any trailing zeros.
// Numerically equal numbers have the same canonical representation.
func (n Number) canonical() (*big.Int, int) {
	coef, s := n.Unscaled()
	if coef.Sign() == 0 {
		return coef, 0
	}
	return trim(coef, s, -math.MaxInt32)
}

func trim(coef *big.Int, scale, floor int) (*big.Int, int) {
	if coef.Sign() == 0 {
		return coef, min(scale, floor)
	}
	r := new(big.Int)
	for scale > floor && coef.Sign() != 0 {
		q, m := new(big.Int).QuoRem(coef, bigTen, r)
		if m.Sign() != 0 {
			break
		}
		coef = q
		scale--
	}
	return coef, scale
}

// RoundWith returns the number rounded by the factory.
// See also method [RoundedFactory.Apply].
func (n Number) RoundWith(f RoundedFactory) (Number, error) {
	v, err := f.Apply(n)
	if err != nil {
		return Number{}, err
	}
	return numberOf(v)
}

// String implements the [fmt.Stringer] interface and returns the number in
// plain notation with exactly [Number.Scale] digits after the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	if exp := n.value.Exponent(); exp < 0 {
		return n.value.StringFixed(-exp)
	}
	return n.value.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseNumber].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = ParseNumber(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Number{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
