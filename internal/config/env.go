// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/giftcalc/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the GIFTCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"INPUT", []string{"input", "i"}, func(c *AppConfig, v string) error {
		c.InputFile = v
		return nil
	}},
	{"STRATEGY", []string{"strategy"}, func(c *AppConfig, v string) error {
		c.Strategy = v
		return nil
	}},
	{"RUNS", []string{"runs"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.ValidationError{Field: EnvPrefix + "RUNS", Message: fmt.Sprintf("not an integer: %q", v)}
		}
		c.Runs = parsed
		return nil
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) error {
		c.Theme = v
		return nil
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},

	{"DETAILS", []string{"details", "d"}, func(c *AppConfig, v string) error {
		c.Details = parseBoolEnv(v, c.Details)
		return nil
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) error {
		c.JSON = parseBoolEnv(v, c.JSON)
		return nil
	}},
	{"PROGRESS", []string{"progress"}, func(c *AppConfig, v string) error {
		c.Progress = parseBoolEnv(v, c.Progress)
		return nil
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(c *AppConfig, v string) error {
		c.Verbose = parseBoolEnv(v, c.Verbose)
		return nil
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) error {
		c.NoColor = parseBoolEnv(v, c.NoColor)
		return nil
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
//
// Supported environment variables (all prefixed with GIFTCALC_):
//   - INPUT, STRATEGY, RUNS, THEME, METRICS_FILE, DETAILS, JSON, PROGRESS, VERBOSE, NO_COLOR
//
// Unrecognised boolean values keep the current setting; a RUNS value that is
// not an integer is an error.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				return err
			}
		}
	}
	return nil
}
