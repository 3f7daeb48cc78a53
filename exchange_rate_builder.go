package monetary

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ExchangeRateBuilder assembles an [ExchangeRate].
//
// Unlike [RoundedFactoryBuilder], it is a single mutable object: every setter
// modifies the builder in place and returns the same builder, and calling a
// setter again overwrites the previous value.
// [ExchangeRateBuilder.Build] takes a snapshot, so later modifications never
// affect rates that were already built.
//
// An ExchangeRateBuilder is not safe for concurrent use.
type ExchangeRateBuilder struct {
	provider  string
	rateType  RateType
	base      Currency
	term      Currency
	hasBase   bool
	hasTerm   bool
	factor    NumberValue
	chain     []ExchangeRate
	context   RateContext
	validFrom time.Time
	validTo   time.Time
}

// NewExchangeRateBuilder returns a builder for rates of the provider and rate type.
// An empty provider or an unknown rate type is reported by [ExchangeRateBuilder.Build].
func NewExchangeRateBuilder(provider string, rateType RateType) *ExchangeRateBuilder {
	return &ExchangeRateBuilder{provider: provider, rateType: rateType}
}

// NewExchangeRateBuilderFrom returns a builder seeded with all the fields of the rate.
func NewExchangeRateBuilderFrom(r ExchangeRate) *ExchangeRateBuilder {
	return &ExchangeRateBuilder{
		provider:  r.provider,
		rateType:  r.rateType,
		base:      r.base,
		term:      r.term,
		hasBase:   true,
		hasTerm:   true,
		factor:    r.factor,
		chain:     r.Chain(),
		context:   r.context,
		validFrom: r.validFrom,
		validTo:   r.validTo,
	}
}

// SetBase sets the currency being exchanged.
func (b *ExchangeRateBuilder) SetBase(c Currency) *ExchangeRateBuilder {
	b.base, b.hasBase = c, true
	return b
}

// SetTerm sets the currency obtained in exchange for the base currency.
func (b *ExchangeRateBuilder) SetTerm(c Currency) *ExchangeRateBuilder {
	b.term, b.hasTerm = c, true
	return b
}

// SetFactor sets the conversion factor.
// Any [NumberValue] is accepted; it is converted to a [Number] by Build.
func (b *ExchangeRateBuilder) SetFactor(f NumberValue) *ExchangeRateBuilder {
	b.factor = f
	return b
}

// SetProviderContext sets the provider-specific attributes of the rate.
func (b *ExchangeRateBuilder) SetProviderContext(c RateContext) *ExchangeRateBuilder {
	b.context = c
	return b
}

// AddExchangeRate appends a rate to the chain of a derived rate.
func (b *ExchangeRateBuilder) AddExchangeRate(r ExchangeRate) *ExchangeRateBuilder {
	b.chain = append(b.chain, r)
	return b
}

// SetExchangeRateChain replaces the chain of a derived rate.
// Calling it without arguments makes the rate a direct one.
func (b *ExchangeRateBuilder) SetExchangeRateChain(rates ...ExchangeRate) *ExchangeRateBuilder {
	b.chain = slices.Clone(rates)
	return b
}

// SetValidity sets the validity range [from, to).
// A zero time leaves the corresponding end unbounded.
func (b *ExchangeRateBuilder) SetValidity(from, to time.Time) *ExchangeRateBuilder {
	b.validFrom, b.validTo = from, to
	return b
}

// Build returns a new exchange rate reflecting the current state of the builder.
// The builder can be modified and built again.
//
// Build returns [ErrValidation] if:
//   - the provider is empty or the rate type is unknown;
//   - the base currency, the term currency or the factor was not set;
//   - the validity range ends before or when it starts.
func (b *ExchangeRateBuilder) Build() (ExchangeRate, error) {
	if err := b.validate(); err != nil {
		return ExchangeRate{}, fmt.Errorf("building exchange rate: %w", err)
	}
	f, err := numberOf(b.factor)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("building exchange rate: %w", err)
	}
	var chain []ExchangeRate
	if len(b.chain) > 0 {
		chain = slices.Clone(b.chain)
	}
	return ExchangeRate{
		provider:  b.provider,
		rateType:  b.rateType,
		base:      b.base,
		term:      b.term,
		factor:    f,
		chain:     chain,
		context:   b.context,
		validFrom: b.validFrom,
		validTo:   b.validTo,
	}, nil
}

func (b *ExchangeRateBuilder) validate() error {
	var errs []error
	if b.provider == "" {
		errs = append(errs, fmt.Errorf("%w: provider is empty", ErrValidation))
	}
	if !b.rateType.valid() {
		errs = append(errs, fmt.Errorf("%w: unknown rate type %v", ErrValidation, b.rateType))
	}
	if !b.hasBase {
		errs = append(errs, fmt.Errorf("%w: base currency is not set", ErrValidation))
	}
	if !b.hasTerm {
		errs = append(errs, fmt.Errorf("%w: term currency is not set", ErrValidation))
	}
	if b.factor == nil {
		errs = append(errs, fmt.Errorf("%w: factor is not set", ErrValidation))
	}
	if !b.validFrom.IsZero() && !b.validTo.IsZero() && !b.validFrom.Before(b.validTo) {
		errs = append(errs, fmt.Errorf("%w: validity range [%v, %v) is empty", ErrValidation, b.validFrom, b.validTo))
	}
	return errors.Join(errs...)
}
