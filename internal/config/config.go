// Package config loads the picker's settings from a yaml file layered over
// built-in defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/selectfile/internal/browser"
	"github.com/idelchi/selectfile/internal/dirsize"
	"github.com/idelchi/selectfile/internal/logger"
	"github.com/idelchi/selectfile/internal/selection"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all application configuration values.
// Keys present in the config file override defaults, including explicit zero values.
type Config struct {
	// Browser controls what the picker shows and allows.
	Browser BrowserConfig `yaml:"browser"`
	// Size bounds the recursive directory size calculation.
	Size SizeConfig `yaml:"size"`
	// Venv bounds the virtual environment detection cache.
	Venv VenvConfig `yaml:"venv"`
	// Report configures the folder report.
	Report ReportConfig `yaml:"report"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// BrowserConfig configures the browser.
type BrowserConfig struct {
	// SelectFiles allows choosing files.
	SelectFiles bool `yaml:"select_files"`
	// SelectDirs allows choosing directories.
	SelectDirs bool `yaml:"select_dirs"`
	// ShowHidden lists dot-files.
	ShowHidden bool `yaml:"show_hidden"`
	// SortMode is the initial sort key (name, created, accessed, modified, size, extension).
	SortMode string `yaml:"sort_mode"`
	// SortOrder is the initial sort direction (asc or desc).
	SortOrder string `yaml:"sort_order"`
}

// SizeConfig configures the directory size aggregator.
type SizeConfig struct {
	MaxDepth  int `yaml:"max_depth"`
	MaxItems  int `yaml:"max_items"`
	CacheSize int `yaml:"cache_size"`
}

// VenvConfig configures virtual environment detection.
type VenvConfig struct {
	CacheSize int `yaml:"cache_size"`
}

// ReportConfig configures the folder report.
type ReportConfig struct {
	// TopN is the number of largest entries listed.
	TopN int `yaml:"top_n"`
	// Excludes are regular expressions of paths to leave out.
	Excludes []string `yaml:"excludes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			SelectFiles: true,
			SelectDirs:  false,
			ShowHidden:  false,
			SortMode:    browser.SortByName.String(),
			SortOrder:   browser.Ascending.String(),
		},
		Size: SizeConfig{
			MaxDepth:  dirsize.DefaultMaxDepth,
			MaxItems:  dirsize.DefaultMaxItems,
			CacheSize: dirsize.DefaultCacheSize,
		},
		Venv: VenvConfig{
			CacheSize: selection.DefaultVenvCacheSize,
		},
		Report: ReportConfig{
			TopN:     10,
			Excludes: []string{`.*\.git/.*`, `.*node_modules/.*`},
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for values the picker cannot use.
func (c *Config) Validate() error {
	if !c.Browser.SelectFiles && !c.Browser.SelectDirs {
		return fmt.Errorf("%w: at least one of browser.select_files and browser.select_dirs must be true", ErrInvalid)
	}

	if _, err := browser.ParseSortMode(c.Browser.SortMode); err != nil {
		return fmt.Errorf("%w: browser.sort_mode: %w", ErrInvalid, err)
	}

	if _, err := browser.ParseSortOrder(c.Browser.SortOrder); err != nil {
		return fmt.Errorf("%w: browser.sort_order: %w", ErrInvalid, err)
	}

	// Checked in file order so the first offending key is always the one reported.
	positive := []struct {
		key   string
		value int
	}{
		{"size.max_depth", c.Size.MaxDepth},
		{"size.max_items", c.Size.MaxItems},
		{"size.cache_size", c.Size.CacheSize},
		{"venv.cache_size", c.Venv.CacheSize},
		{"report.top_n", c.Report.TopN},
	}

	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.key, p.value)
		}
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q must be one of debug, info, warn, error", ErrInvalid, c.LogLevel)
	}

	return nil
}

// SortMode returns the parsed sort mode. Call after Validate.
func (c *Config) SortMode() browser.SortMode {
	m, _ := browser.ParseSortMode(c.Browser.SortMode)

	return m
}

// SortOrder returns the parsed sort order. Call after Validate.
func (c *Config) SortOrder() browser.SortOrder {
	o, _ := browser.ParseSortOrder(c.Browser.SortOrder)

	return o
}

// Level returns the parsed log level.
func (c *Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)

	return l
}
