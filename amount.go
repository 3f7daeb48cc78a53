package monetary

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// Amount implements [NumberValue], so it can be rounded by any [RoundedFactory].
// Its value is a [decimal.Decimal] with at most [decimal.MaxPrec] digits,
// and its scale is never smaller than the scale of its currency:
// rounding results with fewer fractional digits are zero-padded.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount and pads it to the scale of the currency.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmount returns coef / 10^scale denominated in curr, padded with zeros
// to the scale of the currency.
// It fails for an unknown currency code, a scale outside [0, decimal.MaxScale]
// or a value that does not fit into [decimal.MaxPrec] digits once padded.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	a, err := newAmountSafe(c, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics on error.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns d denominated in curr, padded with zeros
// to the scale of the currency.
func NewAmountFromDecimal(curr Currency, d decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, d)
}

// NewAmountFromNumber converts an arbitrary-precision number to an amount.
//
// NewAmountFromNumber returns an error if the number does not fit into
// [decimal.MaxPrec] digits and [decimal.MaxScale] fractional digits.
// Round the number first, e.g. with a [ScaleOperator], to avoid the error.
func NewAmountFromNumber(curr Currency, n NumberValue) (Amount, error) {
	d, err := decimalOf(n.Unscaled())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v: %w", n, err)
	}
	return newAmountSafe(curr, d)
}

// decimalOf converts coef / 10^scale to a decimal without rounding.
func decimalOf(coef *big.Int, scale int) (decimal.Decimal, error) {
	if scale < 0 {
		coef = new(big.Int).Mul(coef, pow10(-scale))
		scale = 0
	}
	if scale > decimal.MaxScale || digits(coef) > decimal.MaxPrec {
		return decimal.Decimal{}, errAmountOverflow
	}
	if coef.IsInt64() {
		return decimal.New(coef.Int64(), scale)
	}
	// Coefficients between 2^63 and 10^19 do not fit into int64.
	n, err := newNumber(coef, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.Parse(n.String())
}

// ParseAmount parses a currency code, as accepted by [ParseCurr], and a
// decimal string. The value is padded with zeros to the scale of the currency.
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics on error.
// It is intended for tests and package level variables.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Number returns the amount as an arbitrary-precision number.
func (a Amount) Number() Number {
	n, _ := newNumber(a.Unscaled()) // scale is within [0, decimal.MaxScale]
	return n
}

// Unscaled implements the [NumberValue] interface.
func (a Amount) Unscaled() (*big.Int, int) {
	d := a.Decimal()
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return coef, d.Scale()
}

// WithUnscaled implements the [NumberValue] interface.
// The result is an Amount in the same currency.
// Negative scales are expanded to integers and scales below the scale
// of the currency are zero-padded.
//
// WithUnscaled returns an error if the value does not fit into an Amount.
func (a Amount) WithUnscaled(coef *big.Int, scale int) (NumberValue, error) {
	d, err := decimalOf(coef, scale)
	if err != nil {
		return nil, fmt.Errorf("converting to %v: %w", a.Curr(), err)
	}
	b, err := newAmountSafe(a.Curr(), d)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// RoundWith returns the amount rounded by the factory.
// See also methods [RoundedFactory.Apply] and [Amount.WithUnscaled].
func (a Amount) RoundWith(f RoundedFactory) (Amount, error) {
	v, err := f.Apply(a)
	if err != nil {
		return Amount{}, err
	}
	b, ok := v.(Amount)
	if !ok {
		return NewAmountFromNumber(a.Curr(), v)
	}
	return b, nil
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using [rounding half to even] (banker's rounding).
// See also method [Amount.SameScaleAsCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	c, d := a.Curr(), a.Decimal()
	return newAmountUnsafe(c, d.Round(c.Scale()))
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Prec returns the number of digits in the coefficient.
func (a Amount) Prec() int {
	return a.Decimal().Prec()
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.Decimal().Scale()
}

// SameCurr reports whether a and b share a currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// SameScaleAsCurr reports whether a has exactly as many fractional digits
// as its currency.
func (a Amount) SameScaleAsCurr() bool {
	return a.Scale() == a.Curr().Scale()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Neg())
}

// Add returns a + b. Digits beyond 19 are rounded away, but never below
// the scale of the currency.
// Add fails if the currencies differ or the sum overflows.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, errCurrencyMismatch)
	}
	c, d, e := a.Curr(), a.Decimal(), b.Decimal()
	d, err := d.AddExact(e, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return newAmountSafe(c, d)
}

// Sub returns a - b, see [Amount.Add].
func (a Amount) Sub(b Amount) (Amount, error) {
	return a.Add(b.Neg())
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. It fails if the currencies differ.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, errCurrencyMismatch)
	}
	d, e := a.Decimal(), b.Decimal()
	return d.Cmp(e), nil
}

// String returns the currency code followed by the value, e.g. "USD 109.95".
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}
