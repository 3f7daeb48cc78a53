// Package config loads the rounding policy and exchange rate tables used by
// the command line tool.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/govalues/monetary"
)

// Config is populated from MONETARY_* environment variables.
type Config struct {
	// RoundingMode is the mode of the rounded factory.
	RoundingMode monetary.RoundingMode `env:"MONETARY_ROUNDING_MODE" envDefault:"HALF_EVEN"`
	// Scale is the number of digits after the decimal point, nil if not set.
	Scale *int `env:"MONETARY_SCALE"`
	// Precision is the number of significant digits, nil if not set.
	Precision *int `env:"MONETARY_PRECISION"`
	// Provider is used for rates that do not name one.
	Provider string `env:"MONETARY_PROVIDER" envDefault:"config"`
	// RatesFile is a YAML rate table, see LoadRates.
	RatesFile string `env:"MONETARY_RATES_FILE"`
	// LogFormat is either "logfmt" or "json".
	LogFormat string `env:"MONETARY_LOG_FORMAT" envDefault:"logfmt"`
	// LogLevel is the lowest level logged: debug, info, warn or error.
	LogLevel string `env:"MONETARY_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("parse env: unknown log format %q", c.LogFormat)
	}
	if _, err := c.levelOption(); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) levelOption() (level.Option, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// Factory builds a rounded factory from the configured mode, scale and precision.
// A scale, a precision, or both must be set.
func (c Config) Factory() (monetary.RoundedFactory, error) {
	b := monetary.NewRoundedFactoryBuilder(c.RoundingMode)
	switch {
	case c.Scale != nil && c.Precision != nil:
		return b.WithScale(*c.Scale).WithPrecision(*c.Precision).Build()
	case c.Scale != nil:
		return b.WithScale(*c.Scale).Build()
	case c.Precision != nil:
		return b.WithPrecision(*c.Precision).Build()
	}
	return monetary.RoundedFactory{}, fmt.Errorf("%w: neither scale nor precision is set", monetary.ErrConfiguration)
}

// Logger returns a logger writing to w in the configured format.
// Events below the configured level are dropped, info if the level is unknown.
func (c Config) Logger(w io.Writer) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if strings.EqualFold(c.LogFormat, "json") {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	opt, err := c.levelOption()
	if err != nil {
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// Rates loads the configured rate table.
// It returns no rates if the rates file is not set.
func (c Config) Rates() ([]monetary.ExchangeRate, error) {
	if c.RatesFile == "" {
		return nil, nil
	}
	f, err := os.Open(c.RatesFile)
	if err != nil {
		return nil, fmt.Errorf("opening rates: %w", err)
	}
	defer f.Close()
	return LoadRates(f, c.Provider)
}
