// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config holds the project configuration for the generators.
// All paths default to the TyIPA package layout relative to the working
// directory; an ipagen.toml can override any of them.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

type Config struct {
	Diacritics Diacritics `toml:"diacritics"`
	Symbols    Symbols    `toml:"symbols"`
	Watch      Watch      `toml:"watch"`
}

type Diacritics struct {
	Definitions string `toml:"definitions"` // CSV table of diacritic definitions
	Functions   string `toml:"functions"`   // generated accenting functions
	Manual      string `toml:"manual"`      // generated display listing
}

type Symbols struct {
	Source     string `toml:"source"`     // hand-maintained symbol source
	Dictionary string `toml:"dictionary"` // generated symbol dictionary
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	Exclude  []string      `toml:"exclude"` // glob patterns for editor droppings
}

// Default returns the configuration matching the TyIPA package layout.
func Default() *Config {
	return &Config{
		Diacritics: Diacritics{
			Definitions: "src/_diacritics.csv",
			Functions:   "src/_diacritics.typ",
			Manual:      "manual/_list-diacritics.typ",
		},
		Symbols: Symbols{
			Source:     "src/sym.typ",
			Dictionary: "src/_sym-dict.typ",
		},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
			Exclude:  []string{"*~", "*.swp", ".#*", "#*#"},
		},
	}
}

// Load reads the TOML file at path and fills in defaults for anything
// it does not set.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	defaults := Default()
	if cfg.Diacritics.Definitions == "" {
		cfg.Diacritics.Definitions = defaults.Diacritics.Definitions
	}
	if cfg.Diacritics.Functions == "" {
		cfg.Diacritics.Functions = defaults.Diacritics.Functions
	}
	if cfg.Diacritics.Manual == "" {
		cfg.Diacritics.Manual = defaults.Diacritics.Manual
	}
	if cfg.Symbols.Source == "" {
		cfg.Symbols.Source = defaults.Symbols.Source
	}
	if cfg.Symbols.Dictionary == "" {
		cfg.Symbols.Dictionary = defaults.Symbols.Dictionary
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = defaults.Watch.Debounce
	}
	if len(cfg.Watch.Exclude) == 0 {
		cfg.Watch.Exclude = defaults.Watch.Exclude
	}

	return cfg, nil
}
