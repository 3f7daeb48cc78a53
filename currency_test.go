package monetary

import (
	"encoding/json"
	"testing"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
			{"978", EUR},
			{"GBP", GBP},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "Usd",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{ISK, 0},
		{AED, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
		{CLF, 4},
		{Currency(255), 0},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{JPY, "392"},
		{USD, "840"},
		{OMR, "512"},
		{Currency(255), "999"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
		{Currency(255), "XXX"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Currency
		if err := got.UnmarshalText([]byte("eur")); err != nil {
			t.Fatalf("UnmarshalText(\"eur\") failed: %v", err)
		}
		if got != EUR {
			t.Errorf("UnmarshalText(\"eur\") = %v, want %v", got, EUR)
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Currency
		if err := got.UnmarshalText([]byte("UUU")); err == nil {
			t.Errorf("UnmarshalText(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_JSON(t *testing.T) {
	type payload struct {
		Curr Currency `json:"curr"`
	}

	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(payload{Curr: GBP})
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		if want := `{"curr":"GBP"}`; string(got) != want {
			t.Errorf("json.Marshal = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want Currency
		}{
			{`{"curr":"JPY"}`, JPY},
			{`{"curr":"392"}`, JPY},
			{`{"curr":null}`, USD},
			{`{}`, USD},
		}
		for _, tt := range tests {
			got := payload{Curr: USD}
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got.Curr != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.data, got.Curr, tt.want)
			}
		}
	})
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []any{"USD", []byte("USD"), "840"}
		for _, tt := range tests {
			var got Currency
			if err := got.Scan(tt); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt, err)
				continue
			}
			if got != USD {
				t.Errorf("Scan(%v) = %v, want %v", tt, got, USD)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, "UUU", []byte("UUU")}
		for _, tt := range tests {
			var got Currency
			if err := got.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := OMR.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got != "OMR" {
		t.Errorf("Value() = %v, want OMR", got)
	}
}
