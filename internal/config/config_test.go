package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/agbru/giftcalc/internal/errors"
)

var strategies = []string{"loop", "bulk"}

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("giftcalc", nil, &errBuf, strategies)
	if err != nil {
		t.Fatalf("ParseConfig with no args: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults %+v, got %+v", DefaultConfig(), cfg)
	}
	if cfg.InputFile != "gift_costs.txt" || cfg.Runs != 1 || cfg.Strategy != "all" || cfg.Theme != "dark" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(AppConfig) bool
	}{
		{"input long", []string{"-input", "a.txt"}, func(c AppConfig) bool { return c.InputFile == "a.txt" }},
		{"input short", []string{"-i", "b.txt"}, func(c AppConfig) bool { return c.InputFile == "b.txt" }},
		{"strategy", []string{"-strategy", "bulk"}, func(c AppConfig) bool { return c.Strategy == "bulk" }},
		{"runs", []string{"-runs", "5"}, func(c AppConfig) bool { return c.Runs == 5 }},
		{"details short", []string{"-d"}, func(c AppConfig) bool { return c.Details }},
		{"json", []string{"--json"}, func(c AppConfig) bool { return c.JSON }},
		{"metrics file", []string{"-metrics-file", "m.prom"}, func(c AppConfig) bool { return c.MetricsFile == "m.prom" }},
		{"verbose", []string{"-v"}, func(c AppConfig) bool { return c.Verbose }},
		{"no color", []string{"-no-color"}, func(c AppConfig) bool { return c.NoColor }},
		{"progress", []string{"-progress"}, func(c AppConfig) bool { return c.Progress }},
		{"theme", []string{"-theme", "light"}, func(c AppConfig) bool { return c.Theme == "light" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("giftcalc", tt.args, &bytes.Buffer{}, strategies)
			if err != nil {
				t.Fatalf("ParseConfig(%v): %v", tt.args, err)
			}
			if !tt.check(cfg) {
				t.Errorf("ParseConfig(%v) produced %+v", tt.args, cfg)
			}
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		checkAs func(error) bool
	}{
		{"zero runs", []string{"-runs", "0"}, func(err error) bool {
			var v apperrors.ValidationError
			return errors.As(err, &v) && v.Field == "runs"
		}},
		{"empty input", []string{"-input", ""}, func(err error) bool {
			var v apperrors.ValidationError
			return errors.As(err, &v) && v.Field == "input"
		}},
		{"unknown strategy", []string{"-strategy", "numpy"}, func(err error) bool {
			var c apperrors.ConfigError
			return errors.As(err, &c) && strings.Contains(c.Message, "numpy")
		}},
		{"json with details", []string{"-json", "-details"}, func(err error) bool {
			var c apperrors.ConfigError
			return errors.As(err, &c)
		}},
		{"positional argument", []string{"costs.txt"}, func(err error) bool {
			var c apperrors.ConfigError
			return errors.As(err, &c) && strings.Contains(c.Message, "costs.txt")
		}},
		{"unknown theme", []string{"-theme", "sepia"}, func(err error) bool {
			var c apperrors.ConfigError
			return errors.As(err, &c) && strings.Contains(c.Message, "sepia")
		}},
		{"help", []string{"-h"}, func(err error) bool { return errors.Is(err, flag.ErrHelp) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("giftcalc", tt.args, &bytes.Buffer{}, strategies)
			if err == nil {
				t.Fatalf("ParseConfig(%v) should fail", tt.args)
			}
			if !tt.checkAs(err) {
				t.Errorf("ParseConfig(%v) returned unexpected error %T: %v", tt.args, err, err)
			}
		})
	}
}

func TestParseConfig_Usage(t *testing.T) {
	var errBuf bytes.Buffer
	_, _ = ParseConfig("giftcalc", []string{"-h"}, &errBuf, strategies)
	if !strings.Contains(errBuf.String(), "Usage: giftcalc") {
		t.Errorf("usage output missing, got %q", errBuf.String())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GIFTCALC_INPUT", "env.txt")
	t.Setenv("GIFTCALC_RUNS", "3")
	t.Setenv("GIFTCALC_DETAILS", "yes")
	t.Setenv("GIFTCALC_NO_COLOR", "1")
	t.Setenv("GIFTCALC_METRICS_FILE", "out.prom")
	t.Setenv("GIFTCALC_THEME", "light")
	t.Setenv("GIFTCALC_STRATEGY", "loop")

	cfg, err := ParseConfig("giftcalc", nil, &bytes.Buffer{}, strategies)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.InputFile != "env.txt" || cfg.Runs != 3 || !cfg.Details || !cfg.NoColor || cfg.MetricsFile != "out.prom" ||
		cfg.Theme != "light" || cfg.Strategy != "loop" {
		t.Errorf("environment overrides not applied: %+v", cfg)
	}
}

func TestEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv("GIFTCALC_INPUT", "env.txt")
	t.Setenv("GIFTCALC_RUNS", "3")

	cfg, err := ParseConfig("giftcalc", []string{"-i", "flag.txt", "-runs", "2"}, &bytes.Buffer{}, strategies)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.InputFile != "flag.txt" || cfg.Runs != 2 {
		t.Errorf("flags should take priority over environment: %+v", cfg)
	}
}

func TestEnvOverrides_UnrecognisedBoolIgnored(t *testing.T) {
	t.Setenv("GIFTCALC_JSON", "maybe")

	cfg, err := ParseConfig("giftcalc", nil, &bytes.Buffer{}, strategies)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.JSON {
		t.Errorf("unrecognised boolean should leave the default: %+v", cfg)
	}
}

func TestEnvOverrides_NonNumericRuns(t *testing.T) {
	t.Setenv("GIFTCALC_RUNS", "many")

	_, err := ParseConfig("giftcalc", nil, &bytes.Buffer{}, strategies)
	var v apperrors.ValidationError
	if !errors.As(err, &v) || v.Field != "GIFTCALC_RUNS" || !strings.Contains(v.Message, `"many"`) {
		t.Fatalf("expected ValidationError for GIFTCALC_RUNS, got %T: %v", err, err)
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
	}

	// An explicit flag shadows the bad value.
	cfg, err := ParseConfig("giftcalc", []string{"-runs", "2"}, &bytes.Buffer{}, strategies)
	if err != nil || cfg.Runs != 2 {
		t.Errorf("ParseConfig with -runs 2 = %+v, %v", cfg, err)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}
