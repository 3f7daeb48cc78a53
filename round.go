package monetary

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

var bigTen = big.NewInt(10)

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// digits returns the number of decimal digits in the coefficient.
// Zero has one digit.
func digits(coef *big.Int) int {
	if coef.Sign() == 0 {
		return 1
	}
	n := len(coef.String())
	if coef.Sign() < 0 {
		n--
	}
	return n
}

// rounders maps rounding modes to apd rounders.
// Unnecessary truncates, inexact results are rejected by checkRounding.
var rounders = [...]apd.Rounder{
	HalfEven:    apd.RoundHalfEven,
	HalfUp:      apd.RoundHalfUp,
	HalfDown:    apd.RoundHalfDown,
	Up:          apd.RoundUp,
	Down:        apd.RoundDown,
	Ceiling:     apd.RoundCeiling,
	Floor:       apd.RoundFloor,
	Unnecessary: apd.RoundDown,
}

// newContext returns an apd context rounding to prec significant digits.
func newContext(prec int64, mode RoundingMode) (*apd.Context, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: unknown rounding mode %v", ErrConfiguration, mode)
	}
	if prec > math.MaxUint32 {
		return nil, fmt.Errorf("%w: precision %v is out of range", ErrArithmetic, prec)
	}
	ctx := apd.BaseContext.WithPrecision(uint32(prec))
	ctx.Rounding = rounders[mode]
	return ctx, nil
}

// toDecimal converts coef / 10^scale to an apd decimal.
func toDecimal(coef *big.Int, scale int) (*apd.Decimal, error) {
	if scale > math.MaxInt32 || scale < -math.MaxInt32 {
		return nil, fmt.Errorf("%w: scale %v is out of range", ErrArithmetic, scale)
	}
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coef), int32(-scale)), nil
}

// fromDecimal returns the coefficient and the scale of a finite decimal.
func fromDecimal(d *apd.Decimal) (*big.Int, int) {
	coef := d.Coeff.MathBigInt()
	if d.Negative {
		coef.Neg(coef)
	}
	return coef, -int(d.Exponent)
}

// checkRounding converts the outcome of an apd operation to an error.
func checkRounding(res apd.Condition, err error, mode RoundingMode) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArithmetic, err)
	}
	if mode == Unnecessary && res.Inexact() {
		return fmt.Errorf("%w: rounding necessary", ErrArithmetic)
	}
	return nil
}

// rescale returns the coefficient of coef / 10^scale rounded to the target
// scale using the given mode.
// If the target scale is not smaller than the current scale, the coefficient
// is zero-padded and the result is always exact.
func rescale(coef *big.Int, scale, target int, mode RoundingMode) (*big.Int, error) {
	x, err := toDecimal(coef, scale)
	if err != nil {
		return nil, err
	}
	shift := int64(target) - int64(scale)
	if shift < 0 {
		shift = 0
	}
	ctx, err := newContext(x.NumDigits()+shift+1, mode)
	if err != nil {
		return nil, err
	}
	if target > -int(ctx.MinExponent) || target < -int(ctx.MaxExponent) {
		return nil, fmt.Errorf("%w: scale %v is out of range", ErrArithmetic, target)
	}
	d := new(apd.Decimal)
	res, err := ctx.Quantize(d, x, int32(-target))
	if err := checkRounding(res, err, mode); err != nil {
		return nil, err
	}
	q, _ := fromDecimal(d)
	return q, nil
}

// reprec returns coef / 10^scale rounded to at most prec significant digits.
// Values that already fit are returned unchanged.
// If rounding carries into a new digit (e.g. 9.99 to 10) the trailing zero
// is dropped, so the coefficient never has more than prec digits.
func reprec(coef *big.Int, scale, prec int, mode RoundingMode) (*big.Int, int, error) {
	if digits(coef) <= prec {
		return new(big.Int).Set(coef), scale, nil
	}
	x, err := toDecimal(coef, scale)
	if err != nil {
		return nil, 0, err
	}
	ctx, err := newContext(int64(prec), mode)
	if err != nil {
		return nil, 0, err
	}
	d := new(apd.Decimal)
	res, err := ctx.Round(d, x)
	if err := checkRounding(res, err, mode); err != nil {
		return nil, 0, err
	}
	q, s := fromDecimal(d)
	return q, s, nil
}

// quo returns num / den rounded to prec significant digits.
// Both values are given as coefficient and scale.
func quo(ncoef *big.Int, nscale int, dcoef *big.Int, dscale int, prec int, mode RoundingMode) (*big.Int, int, error) {
	if dcoef.Sign() == 0 {
		return nil, 0, fmt.Errorf("%w: division by zero", ErrArithmetic)
	}
	x, err := toDecimal(ncoef, nscale)
	if err != nil {
		return nil, 0, err
	}
	y, err := toDecimal(dcoef, dscale)
	if err != nil {
		return nil, 0, err
	}
	ctx, err := newContext(int64(prec), mode)
	if err != nil {
		return nil, 0, err
	}
	d := new(apd.Decimal)
	res, err := ctx.Quo(d, x, y)
	if err := checkRounding(res, err, mode); err != nil {
		return nil, 0, err
	}
	q, s := fromDecimal(d)
	return q, s, nil
}
