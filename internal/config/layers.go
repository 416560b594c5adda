package config

import (
	"flag"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

// setting ties one configuration value to its flag aliases, its environment
// key (without the FIBKM_ prefix) and its path in the TOML file.
type setting struct {
	flags    []string
	envKey   string
	fileKey  []string
	fromEnv  func(*AppConfig, envConfig)
	fromFile func(*AppConfig, fileConfig)
}

// settings is the declarative table of every layered value.
var settings = []setting{
	{[]string{"method", "m"}, "METHOD", []string{"method"},
		func(c *AppConfig, e envConfig) { c.Method = e.Method },
		func(c *AppConfig, f fileConfig) { c.Method = f.Method }},
	{[]string{"precision", "p"}, "PRECISION", []string{"precision"},
		func(c *AppConfig, e envConfig) { c.Precision = e.Precision },
		func(c *AppConfig, f fileConfig) { c.Precision = f.Precision }},
	{[]string{"from"}, "SWEEP_FROM", []string{"sweep", "from"},
		func(c *AppConfig, e envConfig) { c.From = e.From },
		func(c *AppConfig, f fileConfig) { c.From = f.Sweep.From }},
	{[]string{"to"}, "SWEEP_TO", []string{"sweep", "to"},
		func(c *AppConfig, e envConfig) { c.To = e.To },
		func(c *AppConfig, f fileConfig) { c.To = f.Sweep.To }},
	{[]string{"step"}, "SWEEP_STEP", []string{"sweep", "step"},
		func(c *AppConfig, e envConfig) { c.Step = e.Step },
		func(c *AppConfig, f fileConfig) { c.Step = f.Sweep.Step }},
	{[]string{"locale"}, "LOCALE", []string{"locale"},
		func(c *AppConfig, e envConfig) { c.Locale = e.Locale },
		func(c *AppConfig, f fileConfig) { c.Locale = f.Locale }},

	{[]string{"json"}, "JSON", []string{"json"},
		func(c *AppConfig, e envConfig) { c.JSONOutput = e.JSON },
		func(c *AppConfig, f fileConfig) { c.JSONOutput = f.JSON }},
	{[]string{"quiet", "q"}, "QUIET", []string{"quiet"},
		func(c *AppConfig, e envConfig) { c.Quiet = e.Quiet },
		func(c *AppConfig, f fileConfig) { c.Quiet = f.Quiet }},
	{[]string{"verbose", "v"}, "VERBOSE", []string{"verbose"},
		func(c *AppConfig, e envConfig) { c.Verbose = e.Verbose },
		func(c *AppConfig, f fileConfig) { c.Verbose = f.Verbose }},
	{[]string{"details", "d"}, "DETAILS", []string{"details"},
		func(c *AppConfig, e envConfig) { c.Details = e.Details },
		func(c *AppConfig, f fileConfig) { c.Details = f.Details }},
	{[]string{"no-color"}, "NO_COLOR", []string{"no_color"},
		func(c *AppConfig, e envConfig) { c.NoColor = e.NoColor },
		func(c *AppConfig, f fileConfig) { c.NoColor = f.NoColor }},
}

// applyLayers fills every setting not given on the command line, first from
// the TOML file and then from the environment, which takes precedence:
// flags > environment > file > defaults.
func applyLayers(config *AppConfig, fs *flag.FlagSet) error {
	ec, err := loadEnv()
	if err != nil {
		return apperrors.NewConfigError("invalid environment: %v", err)
	}

	if config.ConfigFile == "" && envSet("CONFIG") {
		config.ConfigFile = ec.ConfigFile
	}
	var file *loadedFile
	if config.ConfigFile != "" {
		if file, err = loadFile(config.ConfigFile); err != nil {
			return apperrors.NewConfigError("%v", err)
		}
	}

	for _, s := range settings {
		if isFlagSetAny(fs, s.flags...) {
			continue
		}
		if file.defines(s.fileKey...) {
			s.fromFile(config, file.values)
		}
		if envSet(s.envKey) {
			s.fromEnv(config, ec)
		}
	}
	return nil
}
