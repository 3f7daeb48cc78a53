package monetary

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// invPrec is the number of significant digits of an inverted rate.
const invPrec = 16

// ExchangeRate represents a unidirectional conversion factor from a base
// currency to a term currency, attributed to a provider and classified by
// a [RateType].
// A derived rate additionally records the chain of rates it was composed of.
//
// ExchangeRate values are immutable and are safe for concurrent use by
// multiple goroutines.
// Use [ExchangeRateBuilder] to create them and [ExchangeRate.Equal] to compare
// them; the == operator is not supported.
type ExchangeRate struct {
	provider  string
	rateType  RateType
	base      Currency       // currency being exchanged
	term      Currency       // currency being obtained in exchange for the base currency
	factor    Number         // how many units of term currency are needed to exchange for 1 unit of the base currency
	chain     []ExchangeRate // hops of a derived rate, never shared
	context   RateContext
	validFrom time.Time // zero means unbounded
	validTo   time.Time // zero means unbounded, exclusive
}

// ParseExchRate converts currency and number strings to an exchange rate.
// See also constructors [ParseCurr], [ParseNumber] and [NewExchangeRateBuilder].
func ParseExchRate(provider string, rateType RateType, base, term, factor string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	t, err := ParseCurr(term)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("term currency parsing: %w", err)
	}
	f, err := ParseNumber(factor)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("factor parsing: %w", err)
	}
	r, err := NewExchangeRateBuilder(provider, rateType).
		SetBase(b).
		SetTerm(t).
		SetFactor(f).
		Build()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(provider string, rateType RateType, base, term, factor string) ExchangeRate {
	r, err := ParseExchRate(provider, rateType, base, term, factor)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %v, %q, %q, %q) failed: %v", provider, rateType, base, term, factor, err))
	}
	return r
}

// Provider returns the identity of the rate provider.
func (r ExchangeRate) Provider() string {
	return r.provider
}

// RateType returns the classification of the rate.
func (r ExchangeRate) RateType() RateType {
	return r.rateType
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Term returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Term() Currency {
	return r.term
}

// Factor returns how many units of the term currency are needed to exchange
// for 1 unit of the base currency.
func (r ExchangeRate) Factor() Number {
	return r.factor
}

// Chain returns a copy of the rates a derived rate was composed of,
// or nil for a direct rate.
// See also method [ExchangeRate.Compose].
func (r ExchangeRate) Chain() []ExchangeRate {
	return slices.Clone(r.chain)
}

// IsDerived returns true if the rate was composed of other rates.
func (r ExchangeRate) IsDerived() bool {
	return len(r.chain) > 0
}

// Context returns the provider-specific attributes of the rate.
func (r ExchangeRate) Context() RateContext {
	return r.context
}

// ValidFrom returns the inclusive start of the validity range.
// The zero time means the range is unbounded.
func (r ExchangeRate) ValidFrom() time.Time {
	return r.validFrom
}

// ValidTo returns the exclusive end of the validity range.
// The zero time means the range is unbounded.
func (r ExchangeRate) ValidTo() time.Time {
	return r.validTo
}

// ValidAt returns true if t falls within the validity range.
func (r ExchangeRate) ValidAt(t time.Time) bool {
	if !r.validFrom.IsZero() && t.Before(r.validFrom) {
		return false
	}
	if !r.validTo.IsZero() && !t.Before(r.validTo) {
		return false
	}
	return true
}

// Equal returns true if both rates have the same provider, rate type,
// base and term currencies, numerically equal factors, equal chains
// and equal contexts.
// The validity range is not compared.
func (r ExchangeRate) Equal(q ExchangeRate) bool {
	return r.provider == q.provider &&
		r.rateType == q.rateType &&
		r.base == q.base &&
		r.term == q.term &&
		r.factor.Equal(q.factor) &&
		r.context.Equal(q.context) &&
		slices.EqualFunc(r.chain, q.chain, ExchangeRate.Equal)
}

// Hash returns a hash of the fields compared by [ExchangeRate.Equal].
// Equal rates always have equal hashes.
// Hashes are only meaningful within a single process and must not be persisted.
func (r ExchangeRate) Hash() uint64 {
	h := xxhash.New()
	r.writeHash(h)
	return h.Sum64()
}

func (r ExchangeRate) writeHash(h *xxhash.Digest) {
	_, _ = h.WriteString(r.provider)
	_, _ = h.Write([]byte{0, byte(r.rateType), byte(r.base), byte(r.term)})
	// Numerically equal factors must hash identically, so trailing zeros
	// are removed first.
	coef, scale := r.factor.canonical()
	_, _ = h.WriteString(coef.String())
	_, _ = h.WriteString("e")
	_, _ = h.WriteString(strconv.Itoa(-scale))
	for _, a := range r.context.attrs {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(a.key)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(a.value)
	}
	_, _ = h.WriteString("/" + strconv.Itoa(len(r.chain)))
	for _, q := range r.chain {
		q.writeHash(h)
	}
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.Base() &&
		r.Base() != XXX &&
		r.Term() != XXX
}

// Conv returns the amount converted from the base currency to the term currency,
// rounded to the scale of the term currency using [HalfEven].
// See also method [ExchangeRate.ConvWith].
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	op := ScaleOperator{scale: r.Term().Scale(), mode: HalfEven}
	return r.ConvWith(b, NewRoundedFactory(op))
}

// ConvWith returns the amount converted from the base currency to the term currency,
// rounded by the factory.
//
// ConvWith returns an error if:
//   - the currency of the amount does not match the base currency;
//   - the rounded result does not fit into an [Amount].
func (r ExchangeRate) ConvWith(b Amount, f RoundedFactory) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting [%v] with [%v]: %w", b, r, errCurrencyMismatch)
	}
	v, err := f.Apply(r.factor.Mul(b.Number()))
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] with [%v]: %w", b, r, err)
	}
	c, err := NewAmountFromNumber(r.Term(), v)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] with [%v]: %w", b, r, err)
	}
	return c, nil
}

// Inv returns the inverse of the exchange rate, with the base and term
// currencies swapped and the factor rounded to 16 significant digits
// using [HalfEven].
// The inverse keeps the provider, rate type, context and validity range;
// it is a direct rate even if the receiver is derived.
//
// Inv returns [ErrArithmetic] if the factor is zero.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	dcoef, dscale := r.factor.Unscaled()
	coef, scale, err := quo(big.NewInt(1), 0, dcoef, dscale, invPrec, HalfEven)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting [%v]: %w", r, err)
	}
	f, err := newNumber(coef, scale)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting [%v]: %w", r, err)
	}
	q := r
	q.base, q.term = r.term, r.base
	q.factor = f
	q.chain = nil
	return q, nil
}

// Compose returns the rate derived by exchanging through the receiver first
// and then through q, e.g. EUR/USD composed with USD/JPY is EUR/JPY.
// The factor is the exact product of both factors and the chain lists the
// direct rates of both operands in order.
// The provider and the rate type are kept when both rates agree; otherwise the
// providers are joined with a comma and the rate type becomes [Any].
// The validity range is the intersection of both ranges.
//
// Compose returns an error if the term currency of the receiver does not match
// the base currency of q, or if the validity ranges do not overlap.
func (r ExchangeRate) Compose(q ExchangeRate) (ExchangeRate, error) {
	if r.Term() != q.Base() {
		return ExchangeRate{}, fmt.Errorf("composing [%v] and [%v]: %w", r, q, errCurrencyMismatch)
	}
	provider := r.provider
	if q.provider != provider {
		provider += "," + q.provider
	}
	rateType := r.rateType
	if q.rateType != rateType {
		rateType = Any
	}
	b := NewExchangeRateBuilder(provider, rateType).
		SetBase(r.Base()).
		SetTerm(q.Term()).
		SetFactor(r.factor.Mul(q.factor)).
		SetExchangeRateChain(append(r.hops(), q.hops()...)...).
		SetValidity(later(r.validFrom, q.validFrom), earlier(r.validTo, q.validTo))
	if r.context.Equal(q.context) {
		b.SetProviderContext(r.context)
	}
	d, err := b.Build()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("composing [%v] and [%v]: %w", r, q, err)
	}
	return d, nil
}

// hops returns the direct rates the receiver consists of.
func (r ExchangeRate) hops() []ExchangeRate {
	if r.IsDerived() {
		return r.Chain()
	}
	return []ExchangeRate{r}
}

// later returns the later of two range starts, the zero time is unbounded.
func later(a, b time.Time) time.Time {
	if a.IsZero() || (!b.IsZero() && b.After(a)) {
		return b
	}
	return a
}

// earlier returns the earlier of two range ends, the zero time is unbounded.
func earlier(a, b time.Time) time.Time {
	if a.IsZero() || (!b.IsZero() && b.Before(a)) {
		return b
	}
	return a
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "EUR/GBP 0.8523 (ecb, HISTORIC)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Term().String() + " " + r.factor.String() +
		" (" + r.provider + ", " + r.rateType.String() + ")"
}
