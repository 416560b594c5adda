package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML configuration file:
//
//	method = "binet"
//	precision = 3
//	locale = "fr"
//
//	[sweep]
//	from = 5
//	to = 500
//	step = 0.25
type fileConfig struct {
	Method    string    `toml:"method"`
	Precision int       `toml:"precision"`
	JSON      bool      `toml:"json"`
	Quiet     bool      `toml:"quiet"`
	Verbose   bool      `toml:"verbose"`
	Details   bool      `toml:"details"`
	NoColor   bool      `toml:"no_color"`
	Locale    string    `toml:"locale"`
	Sweep     sweepFile `toml:"sweep"`
}

type sweepFile struct {
	From float64 `toml:"from"`
	To   float64 `toml:"to"`
	Step float64 `toml:"step"`
}

// loadedFile is a decoded file together with the keys it defines.
type loadedFile struct {
	values fileConfig
	md     toml.MetaData
}

func (f *loadedFile) defines(key ...string) bool {
	return f != nil && f.md.IsDefined(key...)
}

// loadFile reads and decodes the TOML file at path. Unknown keys are
// rejected so typos do not go unnoticed.
func loadFile(path string) (*loadedFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("missing configuration file: %s - %w", path, err)
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in configuration file %s: %s", path, strings.Join(keys, ", "))
	}
	return &loadedFile{values: fc, md: md}, nil
}
