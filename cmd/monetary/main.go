// Command monetary rounds numbers and converts amounts between currencies.
//
// The rounding policy and the rate table are read from MONETARY_* environment
// variables and can be overridden with flags.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/govalues/monetary"
	"github.com/govalues/monetary/internal/config"
	"github.com/govalues/monetary/internal/ratecache"
)

// Set via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by the subcommands.
type app struct {
	cfg    config.Config
	logger log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "monetary",
		Short:         "Round numbers and convert amounts between currencies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("mode", "", "rounding mode, e.g. HALF_UP (default $MONETARY_ROUNDING_MODE or HALF_EVEN)")
	flags.Int("scale", 0, "number of digits after the decimal point")
	flags.Int("precision", 0, "number of significant digits")
	flags.String("rates", "", "YAML rate table (default $MONETARY_RATES_FILE)")

	root.AddCommand(
		a.roundCmd(),
		a.convertCmd(),
		a.ratesCmd(),
		versionCmd(),
	)
	return root
}

// load reads the environment and applies the flags on top of it.
func (a *app) load(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		s, _ := flags.GetString("mode")
		if cfg.RoundingMode, err = monetary.ParseRoundingMode(s); err != nil {
			return err
		}
	}
	if flags.Changed("scale") {
		scale, _ := flags.GetInt("scale")
		cfg.Scale = &scale
	}
	if flags.Changed("precision") {
		prec, _ := flags.GetInt("precision")
		cfg.Precision = &prec
	}
	if flags.Changed("rates") {
		cfg.RatesFile, _ = flags.GetString("rates")
	}
	a.cfg = cfg
	a.logger = cfg.Logger(stderr)
	return nil
}

func (a *app) roundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round NUMBER...",
		Short: "Round numbers with the configured scale and precision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.cfg.Factory()
			if err != nil {
				return err
			}
			level.Debug(a.logger).Log("msg", "rounding", "factory", f)
			out := cmd.OutOrStdout()
			for _, s := range args {
				n, err := monetary.ParseNumber(s)
				if err != nil {
					return err
				}
				r, err := n.RoundWith(f)
				if err != nil {
					return fmt.Errorf("rounding %v: %w", n, err)
				}
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "convert CURRENCY AMOUNT TERM",
		Short: "Convert an amount using the rate table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := monetary.ParseAmount(args[0], args[1])
			if err != nil {
				return err
			}
			term, err := monetary.ParseCurr(args[2])
			if err != nil {
				return err
			}
			t := time.Now()
			if at != "" {
				if t, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}
			}
			cache, err := a.cache()
			if err != nil {
				return err
			}
			r, err := cache.Lookup(b.Curr(), term, t)
			if err != nil {
				return err
			}
			level.Info(a.logger).Log("msg", "rate selected", "rate", r)

			var c monetary.Amount
			if a.cfg.Scale != nil || a.cfg.Precision != nil {
				f, ferr := a.cfg.Factory()
				if ferr != nil {
					return ferr
				}
				c, err = r.ConvWith(b, f)
			} else {
				c, err = r.Conv(b)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "point in time of the conversion, RFC 3339 (default now)")
	return cmd
}

func (a *app) ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "List the rates of the rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := a.cache()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range cache.Rates() {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
}

// cache loads the rate table into a new cache.
func (a *app) cache() (*ratecache.Cache, error) {
	rates, err := a.cfg.Rates()
	if err != nil {
		return nil, err
	}
	cache := ratecache.New(a.logger)
	n := cache.AddAll(rates)
	level.Debug(a.logger).Log("msg", "rates loaded", "file", a.cfg.RatesFile, "count", n)
	return cache, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip loading the configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "monetary %s\n", version)
		},
	}
}
