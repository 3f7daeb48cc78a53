package monetary

import (
	"fmt"
	"strings"
)

// RoundingMode specifies how a value is rounded when it cannot be represented
// exactly at the requested scale or precision.
// The zero value is [HalfEven], the same method the decimal package uses
// for implicit rounding.
type RoundingMode uint8

const (
	// HalfEven rounds towards the nearest neighbor, and towards the even
	// neighbor when both neighbors are equidistant (banker's rounding).
	HalfEven RoundingMode = iota
	// HalfUp rounds towards the nearest neighbor, and away from zero when
	// both neighbors are equidistant.
	HalfUp
	// HalfDown rounds towards the nearest neighbor, and towards zero when
	// both neighbors are equidistant.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down rounds towards zero (truncation).
	Down
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
	// Unnecessary asserts that the value is already exact and fails with
	// [ErrArithmetic] otherwise.
	Unnecessary
)

var modeNames = [...]string{
	HalfEven:    "HALF_EVEN",
	HalfUp:      "HALF_UP",
	HalfDown:    "HALF_DOWN",
	Up:          "UP",
	Down:        "DOWN",
	Ceiling:     "CEILING",
	Floor:       "FLOOR",
	Unnecessary: "UNNECESSARY",
}

// ParseRoundingMode converts a string to a rounding mode.
// The input is case-insensitive and '-' may be used in place of '_',
// so "HALF_UP", "half_up" and "half-up" are equivalent.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for m, n := range modeNames {
		if n == name {
			return RoundingMode(m), nil //nolint:gosec
		}
	}
	return HalfEven, fmt.Errorf("parsing rounding mode: %w: unknown mode %q", ErrConfiguration, s)
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the string cannot be parsed.
func MustParseRoundingMode(s string) RoundingMode {
	m, err := ParseRoundingMode(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingMode(%q) failed: %v", s, err))
	}
	return m
}

// valid returns true if m is one of the defined rounding modes.
func (m RoundingMode) valid() bool {
	return int(m) < len(modeNames)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return modeNames[m]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, ErrConfiguration)
	}
	return []byte(modeNames[m]), nil
}
