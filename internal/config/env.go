package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the raw FIBKM_ environment values.
type envConfig struct {
	ConfigFile string  `env:"FIBKM_CONFIG"`
	Method     string  `env:"FIBKM_METHOD"`
	Precision  int     `env:"FIBKM_PRECISION"`
	From       float64 `env:"FIBKM_SWEEP_FROM"`
	To         float64 `env:"FIBKM_SWEEP_TO"`
	Step       float64 `env:"FIBKM_SWEEP_STEP"`
	JSON       bool    `env:"FIBKM_JSON"`
	Quiet      bool    `env:"FIBKM_QUIET"`
	Verbose    bool    `env:"FIBKM_VERBOSE"`
	Details    bool    `env:"FIBKM_DETAILS"`
	NoColor    bool    `env:"FIBKM_NO_COLOR"`
	Locale     string  `env:"FIBKM_LOCALE"`
}

// loadEnv decodes the environment. A variable that is present but cannot be
// parsed, such as FIBKM_PRECISION=two, is an error.
func loadEnv() (envConfig, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return envConfig{}, err
	}
	return ec, nil
}

// envSet reports whether an environment variable is present and non-empty.
func envSet(key string) bool {
	val, ok := os.LookupEnv(EnvPrefix + key)
	return ok && val != ""
}
