// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
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
			err:      NewConfigError("invalid value %d for flag %s", 42, "--precision"),
			expected: "invalid value 42 for flag --precision",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
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

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "with value",
			err:      ValidationError{Field: "miles", Value: "-3", Message: "must be non-negative"},
			expected: `invalid miles "-3": must be non-negative`,
		},
		{
			name:     "without value",
			err:      ValidationError{Field: "step", Message: "must be positive"},
			expected: "invalid step: must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOutOfRangeError(t *testing.T) {
	t.Parallel()
	err := OutOfRangeError{Field: "miles", Value: 94, Max: 93}
	if got, want := err.Error(), "miles 94 is out of range (maximum 93)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("lookup: %w", err)
	var target OutOfRangeError
	if !errors.As(wrapped, &target) {
		t.Fatal("expected errors.As to find OutOfRangeError")
	}
	if target.Max != 93 {
		t.Errorf("Max = %d, want 93", target.Max)
	}
}

func TestConversionError(t *testing.T) {
	t.Parallel()
	cause := context.Canceled
	err := ConversionError{Method: "binet", Cause: cause}

	if got, want := err.Error(), "binet: context canceled"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("errors.Is should see the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("base")
	err := WrapError(base, "reading %s", "config.toml")
	if err.Error() != "reading config.toml: base" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match base")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{context.DeadlineExceeded, true},
		{fmt.Errorf("sweep: %w", context.Canceled), true},
		{errors.New("other"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsInputError(t *testing.T) {
	t.Parallel()
	if !IsInputError(ValidationError{Field: "miles"}) {
		t.Error("ValidationError should be an input error")
	}
	if !IsInputError(fmt.Errorf("x: %w", OutOfRangeError{Field: "miles", Value: 100, Max: 93})) {
		t.Error("wrapped OutOfRangeError should be an input error")
	}
	if IsInputError(NewConfigError("conflict")) {
		t.Error("ConfigError should not be an input error")
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"out of range", OutOfRangeError{Field: "miles", Value: 94, Max: 93}, ExitErrorInput,
			"Distance too large. Maximum supported value is 93 miles."},
		{"validation", ValidationError{Field: "miles", Value: "abc", Message: "must be positive integer"}, ExitErrorInput,
			"Invalid distance value 'abc'. Must be positive integer."},
		{"config", NewConfigError("Cannot use both --fib and --basic options simultaneously"), ExitErrorConfig,
			"Cannot use both --fib and --basic options simultaneously"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleError(tt.err, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut != "" && !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantOut)
			}
			if tt.err == nil && buf.Len() != 0 {
				t.Errorf("expected no output for nil error, got %q", buf.String())
			}
		})
	}
}

type bracketColors struct{}

func (bracketColors) Red() string    { return "[red]" }
func (bracketColors) Yellow() string { return "[yellow]" }
func (bracketColors) Reset() string  { return "[reset]" }

func TestHandleError_UsesColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	HandleError(errors.New("boom"), &buf, bracketColors{})
	if !strings.HasPrefix(buf.String(), "[red]Error:[reset]") {
		t.Errorf("expected colored prefix, got %q", buf.String())
	}
}
