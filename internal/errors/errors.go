package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// Every failure, whatever its class, exits with 1; only cancellation by a
// signal differs.
const (
	ExitSuccess       = 0   // Indicates successful execution (including --help).
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 1   // Indicates a configuration error.
	ExitErrorInput    = 1   // Indicates an invalid distance value.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags,
// conflicting modes or unreadable configuration files.
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

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Value is the raw value that was rejected, if any.
	Value string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// OutOfRangeError reports an integer index outside the domain a method can
// represent, such as a Fibonacci index that would overflow 64 bits.
type OutOfRangeError struct {
	// Field is the name of the rejected parameter.
	Field string
	// Value is the requested index.
	Value int
	// Max is the largest accepted index.
	Max int
}

// Error returns a formatted message describing the range violation.
func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range (maximum %d)", e.Field, e.Value, e.Max)
}

// ConversionError encapsulates a failed conversion while preserving the
// original cause and the method that was running.
type ConversionError struct {
	// Method is the conversion method that failed.
	Method string
	// Cause is the underlying error.
	Cause error
}

// Error returns the method name followed by the cause.
func (e ConversionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e ConversionError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err stems from a rejected distance value.
func IsInputError(err error) bool {
	var ve ValidationError
	var re OutOfRangeError
	return errors.As(err, &ve) || errors.As(err, &re)
}
