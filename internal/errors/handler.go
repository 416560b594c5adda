package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (DefaultColorProvider) Red() string    { return "" }
func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// HandleError prints a user-facing message for err and returns the exit code
// to use. The message wording is stable so that scripts can match on it.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var rangeErr OutOfRangeError
	var validationErr ValidationError
	var configErr ConfigError
	switch {
	case errors.As(err, &rangeErr):
		fmt.Fprintf(out, "%sError:%s Distance too large. Maximum supported value is %d miles.\n",
			colors.Red(), colors.Reset(), rangeErr.Max)
		return ExitErrorInput
	case errors.As(err, &validationErr):
		fmt.Fprintf(out, "%sError:%s Invalid distance value '%s'. %s.\n",
			colors.Red(), colors.Reset(), validationErr.Value, capitalize(validationErr.Message))
		return ExitErrorInput
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sError:%s %s\n", colors.Red(), colors.Reset(), configErr.Message)
		return ExitErrorConfig
	case IsContextError(err):
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	}
	fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	return ExitErrorGeneric
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
