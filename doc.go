/*
Package monetary implements exact, configurable-precision rounding of
monetary values and exchange rates between currencies.
It combines the [decimal] package, used for monetary amounts, with
arbitrary-precision numbers, used for rounding and exchange rate factors.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Rounding to a scale, a precision or both, under eight rounding modes
  - Staged builders that can be forked to derive several configurations
  - Exchange rates with value equality and hashing, suitable as map keys
  - Composition of exchange rates into derived multi-hop rates

# Representation

[NumberValue] is the only numeric capability the rounding core depends on:
a number equal to coef / 10^scale that can produce a number of its own kind.
Two implementations are provided:

  - [Number]: an arbitrary-precision decimal that keeps its scale exactly.
  - [Amount]: a [Currency] and a [decimal.Decimal] with at most 19 digits,
    always padded to the scale of its currency.

[Currency] is an opaque identity implemented as an index into a generated
ISO 4217 table.

# Rounding

A [RoundingOperator] is one of:

  - [ScaleOperator]: round to a number of digits after the decimal point;
  - [MathContextOperator]: round to a number of significant digits;
  - [PrecisionScaleOperator]: round to a number of significant digits,
    then round the result to a number of digits after the decimal point.

Operators are usually obtained through the staged [RoundedFactoryBuilder]:

	f, err := NewRoundedFactoryBuilder(HalfUp).WithScale(2).Build()

Every stage is an immutable value, so a stage can be kept and configured
in several ways. A [RoundedFactory] applies its operator to any [NumberValue].

# Exchange Rates

An [ExchangeRate] converts a base currency to a term currency. It is
attributed to a provider and classified by a [RateType]. Rates are assembled
with the mutable [ExchangeRateBuilder] and compared with [ExchangeRate.Equal]
and [ExchangeRate.Hash]. The validity range of a rate does not take part in
equality.

# Errors

Errors are reported as values and can be matched with [errors.Is]:

  - [ErrValidation]: a builder is missing a required field;
  - [ErrConfiguration]: a rounding configuration is invalid, reported by
    the Build methods of the staged builder;
  - [ErrArithmetic]: an operation cannot produce an exact result, e.g. rounding
    with [Unnecessary].

Functions prefixed with Must panic instead of returning an error.
*/
package monetary
