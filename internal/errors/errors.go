package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error.
	ExitErrorInput    = 2 // Indicates the input file could not be read or parsed.
	ExitErrorMismatch = 3 // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// FileAccessError reports that the input file is missing or unreadable.
// Cause is usually an *fs.PathError, so errors.Is(err, fs.ErrNotExist)
// works through it.
type FileAccessError struct {
	// Path is the file that could not be read.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns a message naming the path and the I/O failure.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error.
func (e *FileAccessError) Unwrap() error { return e.Cause }

// ParseError reports an input line that is not a base-10 integer.
type ParseError struct {
	// Source names the input (usually the file path).
	Source string
	// Line is the 1-based line number of the offending token.
	Line int
	// Token is the raw text that failed conversion.
	Token string
	// Cause is the conversion error, typically a *strconv.NumError.
	Cause error
}

// Error returns a message locating the offending token.
func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: invalid integer %q", e.Line, e.Token)
	}
	return fmt.Sprintf("%s:%d: invalid integer %q", e.Source, e.Line, e.Token)
}

// Unwrap returns the conversion error.
func (e *ParseError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that two strategies produced totals further apart
// than the agreement tolerance.
type MismatchError struct {
	Reference, Other           string
	ReferenceTotal, OtherTotal float64
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("total of %q (%v) disagrees with %q (%v)",
		e.Other, e.OtherTotal, e.Reference, e.ReferenceTotal)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsInputError reports whether err is a FileAccessError or a ParseError.
func IsInputError(err error) bool {
	var fileErr *FileAccessError
	var parseErr *ParseError
	return errors.As(err, &fileErr) || errors.As(err, &parseErr)
}

// ExitCodeFor maps an error chain to the process exit status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	var validationErr ValidationError
	var mismatchErr MismatchError
	switch {
	case IsInputError(err):
		return ExitErrorInput
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}
