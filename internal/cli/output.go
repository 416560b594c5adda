// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayConversion], [DisplayComparison], [DisplaySweep].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatConversion], [FormatFibonacci].
//
//   - Write* functions serialize data for machines.
//     Examples: [WriteJSON].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
)

// Formatter renders numbers with a fixed number of decimals, optionally with
// the digit grouping and decimal separator of a locale.
type Formatter struct {
	precision int
	printer   *message.Printer
}

// NewFormatter creates a Formatter. An empty locale keeps the plain C
// formatting ("1234.50"); any BCP 47 tag such as "fr" or "de-CH" switches to
// that locale's conventions ("1 234,50").
func NewFormatter(precision int, locale string) (Formatter, error) {
	f := Formatter{precision: precision}
	if locale == "" {
		return f, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, apperrors.NewConfigError("unknown locale '%s': %v", locale, err)
	}
	f.printer = message.NewPrinter(tag)
	return f, nil
}

// Precision returns the number of decimals printed.
func (f Formatter) Precision() int { return f.precision }

// Distance formats a distance with the configured precision.
func (f Formatter) Distance(v float64) string {
	return f.decimal(v, f.precision)
}

// Count formats an integer.
func (f Formatter) Count(n uint64) string {
	if f.printer == nil {
		return strconv.FormatUint(n, 10)
	}
	return f.printer.Sprintf("%d", n)
}

// Percent formats a ratio as a percentage with four decimals.
func (f Formatter) Percent(ratio float64) string {
	return f.decimal(ratio*100, 4) + "%"
}

func (f Formatter) decimal(v float64, precision int) string {
	if f.printer == nil {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

// FormatConversion renders one conversion as "X miles = Y km".
func FormatConversion(res conversion.Result, f Formatter) string {
	return fmt.Sprintf("%s miles = %s km", f.Distance(res.Miles), f.Distance(res.Kilometers))
}

// FormatFibonacci renders the integer-indexed path. The successor of 93
// does not fit in 64 bits and is reported with the exact formula instead.
func FormatFibonacci(res conversion.IndexResult, f Formatter) string {
	if res.Outcome != conversion.OutcomeFibonacciIndex {
		return fmt.Sprintf("%d miles = %s km (using exact formula)", res.Miles, f.Distance(res.Kilometers))
	}
	return fmt.Sprintf("%d miles = %s km (using Fibonacci)", res.Miles, f.Count(res.Fibonacci))
}

// DisplayConversion writes one conversion line. The method name is appended
// for every method but the exact one, whose output matches the basic mode.
func DisplayConversion(out io.Writer, res conversion.Result, name string, f Formatter) {
	line := FormatConversion(res, f)
	if res.Method != conversion.MethodExact && name != "" {
		line += fmt.Sprintf(" (using %s)", name)
	}
	fmt.Fprintln(out, line)
}

// DisplayFibonacci writes the result of the integer-indexed path.
func DisplayFibonacci(out io.Writer, res conversion.IndexResult, f Formatter) {
	fmt.Fprintln(out, FormatFibonacci(res, f))
}

// DisplayQuiet writes a bare distance, for scripts.
func DisplayQuiet(out io.Writer, km float64, f Formatter) {
	fmt.Fprintln(out, f.Distance(km))
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
