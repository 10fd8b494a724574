// Package config defines the giftcalc runtime configuration and parses it
// from command-line flags and GIFTCALC_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	apperrors "github.com/agbru/giftcalc/internal/errors"
	"github.com/agbru/giftcalc/internal/giftcost"
	"github.com/agbru/giftcalc/internal/ui"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "GIFTCALC_"

// AppConfig aggregates the application's configuration parameters.
// The zero-argument invocation uses DefaultConfig, which reproduces the
// fixed behaviour: read gift_costs.txt and print four lines.
type AppConfig struct {
	// InputFile is the path of the cost list.
	InputFile string
	// Strategy selects the strategy to run, or "all".
	Strategy string
	// Runs is how many times each strategy is executed; the fastest run is
	// reported.
	Runs int
	// Details appends the comparison table and run statistics.
	Details bool
	// JSON replaces the text report with a single JSON document.
	JSON bool
	// MetricsFile, when set, receives a Prometheus textfile export.
	MetricsFile string
	// Progress shows a spinner on stderr while the input is loaded.
	Progress bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// NoColor disables colored output.
	NoColor bool
	// Theme names the color palette: dark, light or none.
	Theme string
}

// DefaultConfig returns the configuration used when no flags or
// environment overrides are present.
func DefaultConfig() AppConfig {
	return AppConfig{
		InputFile: giftcost.DefaultInputFile,
		Strategy:  "all",
		Runs:      1,
		Theme:     ui.DefaultThemeName,
	}
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableStrategies: The registered strategy names.
//
// Returns:
//   - error: A ConfigError or ValidationError describing the first problem found.
func (c AppConfig) Validate(availableStrategies []string) error {
	if c.InputFile == "" {
		return apperrors.ValidationError{Field: "input", Message: "must not be empty"}
	}
	if c.Runs < 1 {
		return apperrors.ValidationError{Field: "runs", Message: fmt.Sprintf("must be at least 1, got %d", c.Runs)}
	}
	if c.Strategy != "all" && !slices.Contains(availableStrategies, c.Strategy) {
		return apperrors.NewConfigError("unknown strategy %q (available: all, %s)", c.Strategy, strings.Join(availableStrategies, ", "))
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if c.JSON && c.Details {
		return apperrors.NewConfigError("-json and -details cannot be combined")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// environment overrides for flags that were not set explicitly, then
// validates the result. Priority: flags > environment > defaults.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The arguments after the program name.
//   - errWriter: Where usage and flag errors are written.
//   - availableStrategies: The registered strategy names, for -strategy validation.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h was given, or a configuration error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := DefaultConfig()
	fs.StringVar(&cfg.InputFile, "input", cfg.InputFile, "Path of the gift cost list (one integer per line).")
	fs.StringVar(&cfg.InputFile, "i", cfg.InputFile, "Shorthand for -input.")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, fmt.Sprintf("Strategy to run: all, %s.", strings.Join(availableStrategies, ", ")))
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Run each strategy N times and report the fastest run.")
	fs.BoolVar(&cfg.Details, "details", false, "Show the comparison table and run statistics.")
	fs.BoolVar(&cfg.Details, "d", false, "Shorthand for -details.")
	fs.BoolVar(&cfg.JSON, "json", false, "Print a JSON report instead of text.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write a Prometheus textfile with durations and totals.")
	fs.BoolVar(&cfg.Progress, "progress", false, "Show a spinner on stderr while loading.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging on stderr.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, fmt.Sprintf("Color theme: %s.", strings.Join(ui.ThemeNames(), ", ")))

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Totals the taxed price of gifts under %d with a loop and a bulk\n", giftcost.Threshold)
		fmt.Fprintf(errWriter, "filter-and-reduce, and reports how long each strategy took.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q (use -input to choose the cost file)", fs.Arg(0))
	}

	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.Validate(availableStrategies); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
