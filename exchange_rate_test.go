package monetary

import (
	"errors"
	"testing"
	"time"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	// The zero value of an ExchangeRate cannot be created using the builder,
	// so we check individual properties of the zero value instead.
	if got.Base() != XXX {
		t.Errorf("ExchangeRate{}.Base() = %v, want %v", got.Base(), XXX)
	}
	if got.Term() != XXX {
		t.Errorf("ExchangeRate{}.Term() = %v, want %v", got.Term(), XXX)
	}
	if !got.Factor().IsZero() {
		t.Errorf("ExchangeRate{}.Factor() = %v, want 0", got.Factor())
	}
	if got.IsDerived() {
		t.Errorf("ExchangeRate{}.IsDerived() = true, want false")
	}
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, term, factor string
			wantBase, wantTerm Currency
			wantScale          int
		}{
			{"USD", "JPY", "132", USD, JPY, 0},
			{"USD", "EUR", "1.2", USD, EUR, 1},
			{"usd", "512", "0.38000", USD, OMR, 5},
			{"USD", "USD", "1", USD, USD, 0},
		}
		for _, tt := range tests {
			got, err := ParseExchRate("ecb", Historic, tt.base, tt.term, tt.factor)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q, %q) failed: %v", tt.base, tt.term, tt.factor, err)
				continue
			}
			if got.Base() != tt.wantBase || got.Term() != tt.wantTerm {
				t.Errorf("ParseExchRate(%q, %q, %q) = %v, want %v/%v", tt.base, tt.term, tt.factor, got, tt.wantBase, tt.wantTerm)
			}
			if got.Factor().String() != tt.factor || got.Factor().Scale() != tt.wantScale {
				t.Errorf("ParseExchRate(%q, %q, %q).Factor() = %v, want %v", tt.base, tt.term, tt.factor, got.Factor(), tt.factor)
			}
			if got.Provider() != "ecb" || got.RateType() != Historic {
				t.Errorf("ParseExchRate(%q, %q, %q) = %v, want provider ecb and type HISTORIC", tt.base, tt.term, tt.factor, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			provider           string
			base, term, factor string
		}{
			"no data":  {"ecb", "", "", ""},
			"base 1":   {"ecb", "AAA", "USD", "30000"},
			"term 1":   {"ecb", "USD", "AAA", "0.00003"},
			"factor 1": {"ecb", "USD", "EUR", "x.0000"},
			"provider": {"", "USD", "EUR", "1.1"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.provider, Any, tt.base, tt.term, tt.factor)
				if err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q, %q) did not fail", tt.provider, tt.base, tt.term, tt.factor)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"ecb\", ANY, \"USD\", \"UUU\", \"1\") did not panic")
			}
		}()
		MustParseExchRate("ecb", Any, "USD", "UUU", "1")
	})
}

func TestExchangeRate_Equal(t *testing.T) {
	f, err := NewNumberFromFloat64(1.1)
	if err != nil {
		t.Fatalf("NewNumberFromFloat64(1.1) failed: %v", err)
	}
	build := func() ExchangeRate {
		r, err := NewExchangeRateBuilder("myprovider", Any).
			SetBase(EUR).
			SetTerm(GBP).
			SetFactor(f).
			Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		return r
	}

	t.Run("independent builders", func(t *testing.T) {
		r, q := build(), build()
		if !r.Equal(q) || !q.Equal(r) {
			t.Errorf("%v.Equal(%v) = false, want true", r, q)
		}
		if r.Hash() != q.Hash() {
			t.Errorf("%v.Hash() = %v, %v.Hash() = %v, want equal", r, r.Hash(), q, q.Hash())
		}
	})

	t.Run("numeric factor", func(t *testing.T) {
		r := MustParseExchRate("ecb", Historic, "EUR", "GBP", "1.1")
		q := MustParseExchRate("ecb", Historic, "EUR", "GBP", "1.10000")
		if !r.Equal(q) {
			t.Errorf("%v.Equal(%v) = false, want true", r, q)
		}
		if r.Hash() != q.Hash() {
			t.Errorf("%v.Hash() = %v, %v.Hash() = %v, want equal", r, r.Hash(), q, q.Hash())
		}
	})

	t.Run("validity ignored", func(t *testing.T) {
		r := build()
		from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		q, err := NewExchangeRateBuilderFrom(r).SetValidity(from, from.AddDate(0, 0, 1)).Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		if !r.Equal(q) {
			t.Errorf("%v.Equal(%v) = false, want true", r, q)
		}
		if r.Hash() != q.Hash() {
			t.Errorf("%v.Hash() = %v, %v.Hash() = %v, want equal", r, r.Hash(), q, q.Hash())
		}
	})

	t.Run("not equal", func(t *testing.T) {
		r := build()
		tests := map[string]func(b *ExchangeRateBuilder){
			"provider": func(b *ExchangeRateBuilder) { b.provider = "otherprovider" },
			"type":     func(b *ExchangeRateBuilder) { b.rateType = Realtime },
			"base":     func(b *ExchangeRateBuilder) { b.SetBase(USD) },
			"term":     func(b *ExchangeRateBuilder) { b.SetTerm(USD) },
			"factor":   func(b *ExchangeRateBuilder) { b.SetFactor(MustParseNumber("1.2")) },
			"context":  func(b *ExchangeRateBuilder) { b.SetProviderContext(NewRateContext(map[string]string{"fixing": "noon"})) },
			"chain": func(b *ExchangeRateBuilder) {
				b.AddExchangeRate(MustParseExchRate("myprovider", Any, "EUR", "GBP", "1.1"))
			},
		}
		for name, modify := range tests {
			t.Run(name, func(t *testing.T) {
				b := NewExchangeRateBuilderFrom(r)
				modify(b)
				q, err := b.Build()
				if err != nil {
					t.Fatalf("Build() failed: %v", err)
				}
				if r.Equal(q) {
					t.Errorf("%v.Equal(%v) = true, want false", r, q)
				}
				if q.Equal(r) {
					t.Errorf("%v.Equal(%v) = true, want false", q, r)
				}
			})
		}
	})

	t.Run("map key", func(t *testing.T) {
		seen := make(map[uint64]ExchangeRate)
		for i := 0; i < 3; i++ {
			r := build()
			if q, ok := seen[r.Hash()]; ok && !q.Equal(r) {
				t.Errorf("%v and %v collide", q, r)
			}
			seen[r.Hash()] = r
		}
		if len(seen) != 1 {
			t.Errorf("len(seen) = %v, want 1", len(seen))
		}
	})
}

func TestExchangeRate_ValidAt(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		from, to time.Time
		at       time.Time
		want     bool
	}{
		{time.Time{}, time.Time{}, from, true},
		{from, to, from, true},
		{from, to, from.Add(time.Hour), true},
		{from, to, to, false},
		{from, to, from.Add(-time.Nanosecond), false},
		{from, time.Time{}, to.AddDate(10, 0, 0), true},
		{time.Time{}, to, from.AddDate(-10, 0, 0), true},
	}
	for _, tt := range tests {
		r, err := NewExchangeRateBuilder("ecb", Historic).
			SetBase(EUR).
			SetTerm(USD).
			SetFactor(MustParseNumber("1.08")).
			SetValidity(tt.from, tt.to).
			Build()
		if err != nil {
			t.Errorf("Build() failed: %v", err)
			continue
		}
		if got := r.ValidAt(tt.at); got != tt.want {
			t.Errorf("%v.ValidAt(%v) = %v, want %v", r, tt.at, got, tt.want)
		}
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, term, factor, amount, want string
		}{
			{"JPY", "USD", "0.0075", "100", "0.75"},
			{"EUR", "USD", "1.0995", "100.00", "109.95"},
			{"OMR", "USD", "2.59765", "100.000", "259.76"},
			{"EUR", "JPY", "161.235", "10.00", "1612"},
			{"USD", "OMR", "0.3845", "1.00", "0.384"},
		}
		for _, tt := range tests {
			r := MustParseExchRate("ecb", Historic, tt.base, tt.term, tt.factor)
			a := MustParseAmount(tt.base, tt.amount)
			want := MustParseAmount(tt.term, tt.want)
			got, err := r.Conv(a)
			if err != nil {
				t.Errorf("%v.Conv(%q) failed: %v", r, a, err)
				continue
			}
			if got != want {
				t.Errorf("%v.Conv(%q) = %q, want %q", r, a, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, term, factor, curr, amount string
		}{
			"currency 1": {"USD", "EUR", "1.2000", "JPY", "100"},
			"currency 2": {"XXX", "EUR", "1.2000", "XXX", "100"},
			"overflow 1": {"USD", "JPY", "1000.00", "USD", "10000000000000000.00"},
			"overflow 2": {"USD", "EUR", "10.0000", "USD", "10000000000000000.00"},
			"overflow 3": {"USD", "OMR", "10.00000", "USD", "1000000000000000.00"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				r := MustParseExchRate("ecb", Any, tt.base, tt.term, tt.factor)
				a := MustParseAmount(tt.curr, tt.amount)
				_, err := r.Conv(a)
				if err == nil {
					t.Errorf("%v.Conv(%q) did not fail", r, a)
				}
			})
		}
	})
}

func TestExchangeRate_ConvWith(t *testing.T) {
	r := MustParseExchRate("ecb", Historic, "EUR", "JPY", "161.235")
	a := MustParseAmount("EUR", "10.00")
	tests := []struct {
		f    RoundedFactory
		want string
	}{
		{NewRoundedFactory(ScaleOperator{scale: 0, mode: Up}), "1613"},
		{NewRoundedFactory(ScaleOperator{scale: 0, mode: Down}), "1612"},
		{NewRoundedFactory(MathContextOperator{prec: 2, mode: HalfUp}), "1600"},
	}
	for _, tt := range tests {
		got, err := r.ConvWith(a, tt.f)
		if err != nil {
			t.Errorf("%v.ConvWith(%q, %v) failed: %v", r, a, tt.f, err)
			continue
		}
		want := MustParseAmount("JPY", tt.want)
		if got != want {
			t.Errorf("%v.ConvWith(%q, %v) = %q, want %q", r, a, tt.f, got, want)
		}
	}

	t.Run("error", func(t *testing.T) {
		_, err := r.ConvWith(a, RoundedFactory{})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("%v.ConvWith(%q, RoundedFactory{}) = %v, want %v", r, a, err, ErrConfiguration)
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, term, factor, want string
		}{
			{"USD", "EUR", "0.5", "2"},
			{"USD", "EUR", "3", "0.3333333333333333"},
			{"EUR", "USD", "1.5", "0.6666666666666667"},
			{"USD", "JPY", "150", "0.006666666666666667"},
			{"EUR", "EUR", "1", "1"},
		}
		for _, tt := range tests {
			r := MustParseExchRate("ecb", Historic, tt.base, tt.term, tt.factor)
			got, err := r.Inv()
			if err != nil {
				t.Errorf("%v.Inv() failed: %v", r, err)
				continue
			}
			want := MustParseExchRate("ecb", Historic, tt.term, tt.base, tt.want)
			if !got.Equal(want) {
				t.Errorf("%v.Inv() = %v, want %v", r, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("ecb", Historic, "USD", "EUR", "0")
		_, err := r.Inv()
		if !errors.Is(err, ErrArithmetic) {
			t.Errorf("%v.Inv() = %v, want %v", r, err, ErrArithmetic)
		}
	})
}

func TestExchangeRate_Compose(t *testing.T) {
	eurusd := MustParseExchRate("ecb", Historic, "EUR", "USD", "1.10")
	usdjpy := MustParseExchRate("ecb", Historic, "USD", "JPY", "150.5")
	jpygbp := MustParseExchRate("imf", Realtime, "JPY", "GBP", "0.0052")

	t.Run("same provider", func(t *testing.T) {
		got, err := eurusd.Compose(usdjpy)
		if err != nil {
			t.Fatalf("%v.Compose(%v) failed: %v", eurusd, usdjpy, err)
		}
		if got.Base() != EUR || got.Term() != JPY {
			t.Errorf("%v.Compose(%v) = %v, want EUR/JPY", eurusd, usdjpy, got)
		}
		if got.Factor().String() != "165.550" {
			t.Errorf("%v.Compose(%v).Factor() = %v, want 165.550", eurusd, usdjpy, got.Factor())
		}
		if got.Provider() != "ecb" || got.RateType() != Historic {
			t.Errorf("%v.Compose(%v) = %v, want provider ecb and type HISTORIC", eurusd, usdjpy, got)
		}
		chain := got.Chain()
		if len(chain) != 2 || !chain[0].Equal(eurusd) || !chain[1].Equal(usdjpy) {
			t.Errorf("%v.Compose(%v).Chain() = %v, want [%v %v]", eurusd, usdjpy, chain, eurusd, usdjpy)
		}
		if !got.IsDerived() {
			t.Errorf("%v.Compose(%v).IsDerived() = false, want true", eurusd, usdjpy)
		}
	})

	t.Run("flattened chain", func(t *testing.T) {
		eurjpy, err := eurusd.Compose(usdjpy)
		if err != nil {
			t.Fatalf("%v.Compose(%v) failed: %v", eurusd, usdjpy, err)
		}
		got, err := eurjpy.Compose(jpygbp)
		if err != nil {
			t.Fatalf("%v.Compose(%v) failed: %v", eurjpy, jpygbp, err)
		}
		if n := len(got.Chain()); n != 3 {
			t.Errorf("len(%v.Chain()) = %v, want 3", got, n)
		}
		if got.Provider() != "ecb,imf" || got.RateType() != Any {
			t.Errorf("%v.Compose(%v) = %v, want provider ecb,imf and type ANY", eurjpy, jpygbp, got)
		}
	})

	t.Run("validity", func(t *testing.T) {
		d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		d3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		r, err := NewExchangeRateBuilderFrom(eurusd).SetValidity(d1, d3).Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		q, err := NewExchangeRateBuilderFrom(usdjpy).SetValidity(d2, time.Time{}).Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		got, err := r.Compose(q)
		if err != nil {
			t.Fatalf("%v.Compose(%v) failed: %v", r, q, err)
		}
		if !got.ValidFrom().Equal(d2) || !got.ValidTo().Equal(d3) {
			t.Errorf("%v.Compose(%v) is valid in [%v, %v), want [%v, %v)", r, q, got.ValidFrom(), got.ValidTo(), d2, d3)
		}

		q, err = NewExchangeRateBuilderFrom(usdjpy).SetValidity(d3, time.Time{}).Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		if _, err := r.Compose(q); !errors.Is(err, ErrValidation) {
			t.Errorf("%v.Compose(%v) = %v, want %v", r, q, err, ErrValidation)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := usdjpy.Compose(eurusd)
		if err == nil {
			t.Errorf("%v.Compose(%v) did not fail", usdjpy, eurusd)
		}
	})
}

func TestExchangeRate_Chain(t *testing.T) {
	hop := MustParseExchRate("ecb", Historic, "EUR", "USD", "1.10")
	r, err := NewExchangeRateBuilder("ecb", Historic).
		SetBase(EUR).
		SetTerm(USD).
		SetFactor(MustParseNumber("1.10")).
		AddExchangeRate(hop).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	chain := r.Chain()
	chain[0] = MustParseExchRate("imf", Any, "GBP", "JPY", "190")
	if !r.Chain()[0].Equal(hop) {
		t.Errorf("modifying %v.Chain() changed the rate", r)
	}
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		r    ExchangeRate
		want string
	}{
		{MustParseExchRate("myprovider", Any, "EUR", "GBP", "1.1"), "EUR/GBP 1.1 (myprovider, ANY)"},
		{MustParseExchRate("ecb", Historic, "EUR", "GBP", "0.8523"), "EUR/GBP 0.8523 (ecb, HISTORIC)"},
		{MustParseExchRate("ecb", Realtime, "USD", "JPY", "1.5e2"), "USD/JPY 150 (ecb, REALTIME)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
