package config

import (
	"flag"
	"io"

	"github.com/agbru/fibkm/internal/conversion"
)

// FlagInfo describes one command-line flag, for shell completion.
type FlagInfo struct {
	Name       string
	Short      string
	Usage      string
	TakesValue bool
	// Values lists the accepted values when they form a closed set.
	Values []string
}

// Flags returns every long flag in lexical order.
func Flags() []FlagInfo {
	fs := flag.NewFlagSet("fibkm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defineFlags(fs, &AppConfig{})

	methods := make([]string, 0, len(conversion.Methods()))
	for _, m := range conversion.Methods() {
		methods = append(methods, string(m))
	}
	closed := map[string][]string{
		"method":     methods,
		"completion": SupportedShells,
	}

	var out []FlagInfo
	fs.VisitAll(func(f *flag.Flag) {
		if isShorthand(f.Name) {
			return
		}
		_, usage := flag.UnquoteUsage(f)
		info := FlagInfo{
			Name:       f.Name,
			Short:      shorthands[f.Name],
			Usage:      usage,
			TakesValue: !isBoolFlag(f),
			Values:     closed[f.Name],
		}
		out = append(out, info)
	})
	return out
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
