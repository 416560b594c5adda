// Package config provides the configuration management for fibkm. It defines
// the configuration structure, parses command-line arguments, layers the
// optional TOML file and FIBKM_ environment variables underneath them, and
// validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by fibkm.
const EnvPrefix = "FIBKM_"

// Default configuration values.
const (
	DefaultMethod    = string(conversion.MethodExact)
	DefaultPrecision = 2
	DefaultSweepFrom = 1.0
	DefaultSweepTo   = 1000.0
	DefaultSweepStep = 0.5

	// MaxPrecision bounds the number of decimals printed.
	MaxPrecision = 12
)

// Mode is the single action a run performs.
type Mode int

const (
	// ModeHelp prints the usage text. It is also the mode of a run with no
	// arguments.
	ModeHelp Mode = iota
	// ModeCompletion prints a shell completion script.
	ModeCompletion
	// ModeFibonacci converts a whole number of miles through F(n+1).
	ModeFibonacci
	// ModeBasic converts one distance with the exact formula.
	ModeBasic
	// ModeDistances converts each positional distance with the selected method.
	ModeDistances
	// ModeCompare runs every method on each positional distance.
	ModeCompare
	// ModeSweep aggregates the error of every method over a range.
	ModeSweep
	// ModeTUI starts the interactive explorer.
	ModeTUI
)

func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeCompletion:
		return "completion"
	case ModeFibonacci:
		return "fib"
	case ModeBasic:
		return "basic"
	case ModeDistances:
		return "distances"
	case ModeCompare:
		return "compare"
	case ModeSweep:
		return "sweep"
	case ModeTUI:
		return "tui"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AppConfig aggregates the settings of one run.
type AppConfig struct {
	// Help requests the usage text.
	Help bool
	// Fib is the raw --fib value, validated by the integer-indexed path.
	Fib string
	// Basic is the raw --basic value.
	Basic string
	// Method selects the conversion method for positional distances.
	Method string
	// Compare runs every method on the positional distances.
	Compare bool
	// Sweep aggregates error statistics over [From, To] by Step.
	Sweep bool
	From  float64
	To    float64
	Step  float64
	// Precision is the number of decimals printed for distances.
	Precision int
	// JSONOutput prints results as JSON.
	JSONOutput bool
	// Quiet prints bare values, one per line, for scripts.
	Quiet bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// Details appends the per-method counters gathered during the run.
	Details bool
	// NoColor disables colours. NO_COLOR is honoured as well.
	NoColor bool
	// Locale, when set, formats numbers with that locale's separators,
	// for instance "fr" or "de-CH".
	Locale string
	// TUI starts the interactive explorer.
	TUI bool
	// Completion names a shell to print a completion script for.
	Completion string
	// ConfigFile is the TOML file providing defaults.
	ConfigFile string
	// Args holds the positional distances, in order.
	Args []string
}

// Mode returns the action selected by the configuration. Validate guarantees
// at most one of the exclusive modes is set.
func (c AppConfig) Mode() Mode {
	switch {
	case c.Help:
		return ModeHelp
	case c.Completion != "":
		return ModeCompletion
	case c.TUI:
		return ModeTUI
	case c.Fib != "":
		return ModeFibonacci
	case c.Basic != "":
		return ModeBasic
	case c.Compare:
		return ModeCompare
	case c.Sweep:
		return ModeSweep
	case len(c.Args) > 0:
		return ModeDistances
	}
	return ModeHelp
}

// SweepOptions returns the sweep range.
func (c AppConfig) SweepOptions() conversion.SweepOptions {
	return conversion.SweepOptions{From: c.From, To: c.To, Step: c.Step}
}

// ConversionMethod returns the parsed Method. It must only be called on a
// validated configuration.
func (c AppConfig) ConversionMethod() conversion.Method {
	m, err := conversion.ParseMethod(c.Method)
	if err != nil {
		return conversion.MethodExact
	}
	return m
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if _, err := conversion.ParseMethod(c.Method); err != nil {
		names := make([]string, 0, len(conversion.Methods()))
		for _, m := range conversion.Methods() {
			names = append(names, string(m))
		}
		return apperrors.NewConfigError("unrecognized method: '%s'. Valid methods are: [%s]", c.Method, strings.Join(names, ", "))
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return apperrors.NewConfigError("precision must be between 0 and %d: %d", MaxPrecision, c.Precision)
	}
	if c.Completion != "" && !isSupportedShell(c.Completion) {
		return apperrors.NewConfigError("unsupported shell for completion: '%s'. Valid shells are: [%s]", c.Completion, strings.Join(SupportedShells, ", "))
	}
	if c.Fib != "" && c.Basic != "" {
		return apperrors.NewConfigError("Cannot use both --fib and --basic options simultaneously")
	}

	var modes []string
	for _, m := range []struct {
		name string
		on   bool
	}{
		{"--fib", c.Fib != ""},
		{"--basic", c.Basic != ""},
		{"--compare", c.Compare},
		{"--sweep", c.Sweep},
		{"--tui", c.TUI},
	} {
		if m.on {
			modes = append(modes, m.name)
		}
	}
	if len(modes) > 1 {
		return apperrors.NewConfigError("only one mode may be used per call, got %s", strings.Join(modes, " and "))
	}

	if c.Compare && len(c.Args) == 0 {
		return apperrors.NewConfigError("--compare requires at least one distance")
	}
	if c.Sweep {
		if err := c.SweepOptions().Validate(); err != nil {
			return apperrors.NewConfigError("invalid sweep range: %v", err)
		}
	}
	if c.JSONOutput && c.Quiet {
		return apperrors.NewConfigError("--json and --quiet cannot be combined")
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig, applies
// the TOML file and environment layers to every setting not given on the
// command line, and validates the result.
//
// Flags and positional distances may be interleaved, as in
// "fibkm 10 -m binet 20". A "--" argument ends flag parsing.
//
// Every failure, including unknown flags, is returned as a ConfigError and
// nothing is printed.
func ParseConfig(programName string, args []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	config := AppConfig{}
	defineFlags(fs, &config)
	setCustomUsage(fs)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return AppConfig{}, err
	}
	config.Args = positional

	if err := applyLayers(&config, fs); err != nil {
		return AppConfig{}, err
	}

	config.Method = strings.ToLower(strings.TrimSpace(config.Method))
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	if (config.Fib != "" || config.Basic != "") && isFlagSetAny(fs, "method", "m") &&
		config.ConversionMethod() != conversion.MethodExact {
		return AppConfig{}, apperrors.NewConfigError("--method cannot be combined with --fib or --basic")
	}
	return config, nil
}

// defineFlags declares every command-line flag on fs, bound to config.
func defineFlags(fs *flag.FlagSet, config *AppConfig) {
	fs.BoolVar(&config.Help, "help", false, "Show help information.")
	fs.BoolVar(&config.Help, "h", false, "Show help information (shorthand).")
	fs.StringVar(&config.Fib, "fib", "", "Convert `miles` to km using Fibonacci (1-93 miles).")
	fs.StringVar(&config.Fib, "f", "", "Fibonacci conversion (shorthand).")
	fs.StringVar(&config.Basic, "basic", "", "Convert `miles` to km using the standard formula.")
	fs.StringVar(&config.Basic, "b", "", "Standard conversion (shorthand).")
	fs.StringVar(&config.Method, "method", DefaultMethod, "Conversion `method` for distances: exact, interpolate, cached or binet.")
	fs.StringVar(&config.Method, "m", DefaultMethod, "Method (shorthand).")
	fs.BoolVar(&config.Compare, "compare", false, "Compare every method on the given distances.")
	fs.BoolVar(&config.Sweep, "sweep", false, "Report the error of every method over a range of distances.")
	fs.Float64Var(&config.From, "from", DefaultSweepFrom, "First `distance` of the sweep.")
	fs.Float64Var(&config.To, "to", DefaultSweepTo, "Last `distance` of the sweep.")
	fs.Float64Var(&config.Step, "step", DefaultSweepStep, "`Increment` between sweep distances.")
	fs.IntVar(&config.Precision, "precision", DefaultPrecision, "Number of `decimals` printed.")
	fs.IntVar(&config.Precision, "p", DefaultPrecision, "Precision (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - bare values for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Log every conversion on stderr.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Print per-method counters after the output.")
	fs.BoolVar(&config.Details, "d", false, "Details (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Locale, "locale", "", "Format numbers for a `locale`, e.g. fr or de-CH.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive explorer.")
	fs.StringVar(&config.Completion, "completion", "", "Generate `shell` completion script (bash, zsh, fish).")
	fs.StringVar(&config.ConfigFile, "config", "", "TOML `file` with default settings.")
}

// parseInterleaved parses flags until the arguments are exhausted, setting
// aside each positional argument it stops at.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			return nil, apperrors.NewConfigError("%v (see --help)", err)
		}
		remaining := fs.Args()
		consumed := len(rest) - len(remaining)
		if consumed > 0 && rest[consumed-1] == "--" {
			positional = append(positional, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}
	return positional, nil
}

// isFlagSet reports whether a flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny reports whether any of the aliases of a flag was given.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}
