package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/govalues/monetary"
)

// rateTable is the YAML layout of a rate file:
//
//	provider: ecb
//	type: HISTORIC
//	rates:
//	  - base: EUR
//	    term: USD
//	    factor: "1.0812"
//	    valid_from: 2024-06-03T00:00:00Z
//	    context:
//	      fixing: daily
type rateTable struct {
	Provider string      `yaml:"provider"`
	Type     string      `yaml:"type"`
	Rates    []rateEntry `yaml:"rates"`
}

type rateEntry struct {
	Provider  string            `yaml:"provider"`
	Type      string            `yaml:"type"`
	Base      string            `yaml:"base"`
	Term      string            `yaml:"term"`
	Factor    string            `yaml:"factor"`
	ValidFrom string            `yaml:"valid_from"`
	ValidTo   string            `yaml:"valid_to"`
	Context   map[string]string `yaml:"context"`
}

// LoadRates decodes a YAML rate table.
// The provider and rate type of an entry default to the ones of the table,
// and the provider of the table defaults to provider.
// A missing rate type means [monetary.Any].
func LoadRates(r io.Reader, provider string) ([]monetary.ExchangeRate, error) {
	var table rateTable
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding rates: %w", err)
	}
	if table.Provider != "" {
		provider = table.Provider
	}
	rates := make([]monetary.ExchangeRate, 0, len(table.Rates))
	for i, e := range table.Rates {
		if e.Provider == "" {
			e.Provider = provider
		}
		if e.Type == "" {
			e.Type = table.Type
		}
		rate, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("rate #%d: %w", i+1, err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

func (e rateEntry) build() (monetary.ExchangeRate, error) {
	rt := monetary.Any
	if e.Type != "" {
		var err error
		rt, err = monetary.ParseRateType(e.Type)
		if err != nil {
			return monetary.ExchangeRate{}, err
		}
	}
	b := monetary.NewExchangeRateBuilder(e.Provider, rt)
	if e.Base != "" {
		c, err := monetary.ParseCurr(e.Base)
		if err != nil {
			return monetary.ExchangeRate{}, err
		}
		b.SetBase(c)
	}
	if e.Term != "" {
		c, err := monetary.ParseCurr(e.Term)
		if err != nil {
			return monetary.ExchangeRate{}, err
		}
		b.SetTerm(c)
	}
	if e.Factor != "" {
		f, err := monetary.ParseNumber(e.Factor)
		if err != nil {
			return monetary.ExchangeRate{}, err
		}
		b.SetFactor(f)
	}
	from, err := parseTime(e.ValidFrom)
	if err != nil {
		return monetary.ExchangeRate{}, err
	}
	to, err := parseTime(e.ValidTo)
	if err != nil {
		return monetary.ExchangeRate{}, err
	}
	b.SetValidity(from, to)
	if len(e.Context) > 0 {
		b.SetProviderContext(monetary.NewRateContext(e.Context))
	}
	return b.Build()
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing validity: %w", err)
	}
	return t, nil
}
