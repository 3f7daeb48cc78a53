package monetary

import (
	"slices"
	"strings"
)

// RateContext holds provider-specific attributes of an exchange rate,
// such as the name of a fixing or the source of a quote.
// It is immutable; the zero value is an empty context.
type RateContext struct {
	attrs []rateAttr // sorted by key, keys are unique
}

type rateAttr struct {
	key, value string
}

// NewRateContext returns a context holding a copy of the attributes.
func NewRateContext(attrs map[string]string) RateContext {
	if len(attrs) == 0 {
		return RateContext{}
	}
	s := make([]rateAttr, 0, len(attrs))
	for k, v := range attrs {
		s = append(s, rateAttr{key: k, value: v})
	}
	slices.SortFunc(s, func(a, b rateAttr) int {
		return strings.Compare(a.key, b.key)
	})
	return RateContext{attrs: s}
}

// Get returns the value of the attribute and whether it is present.
func (c RateContext) Get(key string) (string, bool) {
	i, ok := slices.BinarySearchFunc(c.attrs, key, func(a rateAttr, k string) int {
		return strings.Compare(a.key, k)
	})
	if !ok {
		return "", false
	}
	return c.attrs[i].value, true
}

// Keys returns the sorted attribute keys.
func (c RateContext) Keys() []string {
	keys := make([]string, len(c.attrs))
	for i, a := range c.attrs {
		keys[i] = a.key
	}
	return keys
}

// Len returns the number of attributes.
func (c RateContext) Len() int {
	return len(c.attrs)
}

// Equal returns true if both contexts hold the same attributes.
func (c RateContext) Equal(d RateContext) bool {
	return slices.Equal(c.attrs, d.attrs)
}

// String implements the [fmt.Stringer] interface, e.g. "{fixing=ECB, source=daily}".
func (c RateContext) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range c.attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.key)
		sb.WriteByte('=')
		sb.WriteString(a.value)
	}
	sb.WriteByte('}')
	return sb.String()
}
