// Package config holds file-handling and search preferences, loaded from a
// TOML file with sensible defaults when no file exists.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	File   FileConfig   `toml:"file"`
	Search SearchConfig `toml:"search"`
}

// FileConfig controls loading and saving of documents.
type FileConfig struct {
	// DefaultEncoding is the charset assigned to newly created documents.
	DefaultEncoding string `toml:"default_encoding"`

	// DefaultOpenEncoding forces a charset when opening files; empty
	// means auto-detect.
	DefaultOpenEncoding string `toml:"default_open_encoding"`

	// ReplaceTabs converts tabs to spaces on save.
	ReplaceTabs bool `toml:"replace_tabs"`

	// StripTrailingSpaces removes trailing whitespace on save.
	StripTrailingSpaces bool `toml:"strip_trailing_spaces"`

	// FinalNewline appends a missing newline at the end of file on save.
	FinalNewline bool `toml:"final_newline"`

	// TabWidth is the number of spaces written per tab when tabs are
	// replaced on save.
	TabWidth int `toml:"tab_width"`

	// UseTabs is the indentation default when detection is inconclusive.
	UseTabs bool `toml:"use_tabs"`

	// DiskCheckTimeout is the minimum interval in seconds between disk
	// staleness polls. Zero disables polling entirely.
	DiskCheckTimeout int `toml:"disk_check_timeout"`
}

// SearchConfig controls search behavior.
type SearchConfig struct {
	// SuppressWrapPrompt wraps searches without asking.
	SuppressWrapPrompt bool `toml:"suppress_wrap_prompt"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File: FileConfig{
			DefaultEncoding:  "UTF-8",
			FinalNewline:     true,
			TabWidth:         4,
			UseTabs:          true,
			DiskCheckTimeout: 30,
		},
	}
}

// Load reads configuration from path, layered over the defaults. A missing
// file is not an error and yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
