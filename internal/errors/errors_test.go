// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 0, "-runs"),
			expected: "invalid value 0 for flag -runs",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestFileAccessError(t *testing.T) {
	t.Parallel()
	cause := &fs.PathError{Op: "open", Path: "gift_costs.txt", Err: fs.ErrNotExist}
	var err error = &FileAccessError{Path: "gift_costs.txt", Cause: cause}

	if !strings.Contains(err.Error(), `"gift_costs.txt"`) {
		t.Errorf("message should name the path, got %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should find fs.ErrNotExist through FileAccessError")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Error("errors.As should find *fs.PathError through FileAccessError")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	_, numErr := strconv.ParseInt("abc", 10, 64)

	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "with source",
			err:      &ParseError{Source: "gift_costs.txt", Line: 3, Token: "abc", Cause: numErr},
			expected: `gift_costs.txt:3: invalid integer "abc"`,
		},
		{
			name:     "without source",
			err:      &ParseError{Line: 1, Token: "", Cause: numErr},
			expected: `line 1: invalid integer ""`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, strconv.ErrSyntax) {
				t.Error("errors.Is should find strconv.ErrSyntax through ParseError")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "runs", Message: "must be at least 1"},
			expected: `validation error for "runs": must be at least 1`,
		},
		{
			name:     "Error with different field",
			err:      ValidationError{Field: "input", Message: "must not be empty"},
			expected: `validation error for "input": must not be empty`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Error("expected error to be ValidationError type")
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load costs",
			expectedMsg: "failed to load costs: file not found",
		},
		{
			name:        "preserves error chain",
			original:    fs.ErrPermission,
			format:      "open input",
			expectedMsg: "open input: permission denied",
			checkIs:     fs.ErrPermission,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("short write"),
			format:      "writing %s (%d bytes)",
			args:        []any{"metrics.prom", 512},
			expectedMsg: "writing metrics.prom (512 bytes): short write",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	fileErr := &FileAccessError{Path: "x", Cause: fs.ErrNotExist}
	parseErr := &ParseError{Line: 1, Token: "abc", Cause: strconv.ErrSyntax}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"file access", fileErr, ExitErrorInput},
		{"wrapped file access", fmt.Errorf("load: %w", fileErr), ExitErrorInput},
		{"parse", parseErr, ExitErrorInput},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "runs", Message: "bad"}, ExitErrorConfig},
		{"mismatch", MismatchError{Reference: "loop", Other: "bulk"}, ExitErrorMismatch},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}

type noColors struct{}

func (noColors) Red() string   { return "" }
func (noColors) Reset() string { return "" }

func TestHandleError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	code := HandleError(&ParseError{Source: "in.txt", Line: 2, Token: "abc", Cause: strconv.ErrSyntax}, &buf, noColors{})
	if code != ExitErrorInput {
		t.Errorf("expected exit code %d, got %d", ExitErrorInput, code)
	}
	if got := buf.String(); got != "Error: in.txt:2: invalid integer \"abc\"\n" {
		t.Errorf("unexpected diagnostic %q", got)
	}

	buf.Reset()
	if code := HandleError(nil, &buf, noColors{}); code != ExitSuccess || buf.Len() != 0 {
		t.Errorf("HandleError(nil) = %d with output %q", code, buf.String())
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
