package monetary

import (
	"fmt"
	"strings"
)

// RateType classifies an exchange rate by its timeliness.
// The zero value is [Any].
type RateType uint8

const (
	Any      RateType = iota // no particular classification
	Deferred                 // delayed rate, e.g. published with a 15 minute lag
	Historic                 // rate of a past date, e.g. an end-of-day fixing
	Realtime                 // current market rate
	Other                    // provider-specific classification
)

var rateTypeNames = [...]string{
	Any:      "ANY",
	Deferred: "DEFERRED",
	Historic: "HISTORIC",
	Realtime: "REALTIME",
	Other:    "OTHER",
}

// ParseRateType converts a case-insensitive name, such as "historic", to a rate type.
func ParseRateType(s string) (RateType, error) {
	name := strings.ToUpper(s)
	for t, n := range rateTypeNames {
		if n == name {
			return RateType(t), nil //nolint:gosec
		}
	}
	return Any, fmt.Errorf("parsing rate type: %w: unknown rate type %q", ErrValidation, s)
}

func (t RateType) valid() bool {
	return int(t) < len(rateTypeNames)
}

// String implements the [fmt.Stringer] interface.
func (t RateType) String() string {
	if !t.valid() {
		return fmt.Sprintf("RateType(%d)", uint8(t))
	}
	return rateTypeNames[t]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRateType].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (t *RateType) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseRateType(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (t RateType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("marshaling %v: %w", t, ErrValidation)
	}
	return []byte(rateTypeNames[t]), nil
}
