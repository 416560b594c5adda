package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/fibkm/internal/ui"
)

// SupportedShells lists the shells a completion script can be generated for.
var SupportedShells = []string{"bash", "zsh", "fish"}

func isSupportedShell(name string) bool {
	for _, s := range SupportedShells {
		if s == name {
			return true
		}
	}
	return false
}

// shorthands maps each long flag to its one-letter alias, so both are listed
// on a single usage line.
var shorthands = map[string]string{
	"help":      "h",
	"fib":       "f",
	"basic":     "b",
	"method":    "m",
	"precision": "p",
	"quiet":     "q",
	"verbose":   "v",
	"details":   "d",
}

func isShorthand(name string) bool {
	for _, s := range shorthands {
		if s == name {
			return true
		}
	}
	return false
}

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		writeUsage(fs.Output(), fs, usageTheme())
	}
}

// usageTheme respects NO_COLOR even before app initialization.
func usageTheme() ui.Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ui.NoColorTheme
	}
	return ui.GetCurrentTheme()
}

func writeUsage(out io.Writer, fs *flag.FlagSet, t ui.Theme) {
	fmt.Fprintf(out, "\n%sDistance converter: miles to kilometers%s\n", t.Bold, t.Reset)
	fmt.Fprintf(out, "Exact conversion and Fibonacci-based approximations.\n\n")
	fmt.Fprintf(out, "%sUsage:%s\n  %s [options] [distance...]\n\n%sOptions:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

	fs.VisitAll(func(f *flag.Flag) {
		if isShorthand(f.Name) {
			return
		}
		name, usage := flag.UnquoteUsage(f)
		flagSig := "--" + f.Name
		if short, ok := shorthands[f.Name]; ok {
			flagSig = "-" + short + ", " + flagSig
		} else {
			flagSig = "    " + flagSig
		}
		if len(name) > 0 {
			flagSig += " " + name
		}

		fmt.Fprintf(out, "  %s%-26s%s %s", t.Primary, flagSig, t.Reset, usage)

		if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
			fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
		}
		fmt.Fprintln(out)
	})

	fmt.Fprintf(out, "\n%sEnvironment:%s\n  ", t.Warning, t.Reset)
	keys := make([]string, 0, len(settings)+1)
	keys = append(keys, EnvPrefix+"CONFIG")
	for _, s := range settings {
		keys = append(keys, EnvPrefix+s.envKey)
	}
	fmt.Fprintln(out, strings.Join(keys, ", "))
	fmt.Fprintln(out)
}

// PrintUsage writes the usage text for programName to out using the active
// theme. It is used when a run has nothing to do.
func PrintUsage(programName string, out io.Writer) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(out)
	defineFlags(fs, &AppConfig{})
	writeUsage(out, fs, usageTheme())
}
