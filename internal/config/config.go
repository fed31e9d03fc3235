// Package config holds the meshpath command settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/meshpath/endpoint"
)

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all command settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Search  SearchConfig  `yaml:"search"`
	Render  RenderConfig  `yaml:"render"`
}

// LoggingConfig holds log level and rotating file settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// SearchConfig holds query settings.
type SearchConfig struct {
	Heuristic     string        `yaml:"heuristic"`
	Scale         float64       `yaml:"scale"`
	Tolerance     float64       `yaml:"tolerance"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"` // 0 = none
	Workers       int           `yaml:"workers"` // 0 = GOMAXPROCS
	CacheSize     int           `yaml:"cache_size"`
}

// RenderConfig holds plot output settings. Width and Height are inches.
type RenderConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Format     string  `yaml:"format"`
	Projection string  `yaml:"projection"`
}

// Default returns a Config with the built-in values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Search: SearchConfig{
			Heuristic: "euclidean",
			Scale:     1,
			Tolerance: endpoint.DefaultTolerance,
			CacheSize: 16,
		},
		Render: RenderConfig{
			Width:      6,
			Height:     6,
			Format:     "png",
			Projection: "xy",
		},
	}
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case !(c.Search.Scale > 0):
		return fmt.Errorf("%w: search.scale must be positive (%v)", ErrInvalid, c.Search.Scale)
	case !(c.Search.Tolerance > 0):
		return fmt.Errorf("%w: search.tolerance must be positive (%v)", ErrInvalid, c.Search.Tolerance)
	case c.Search.MaxExpansions < 0:
		return fmt.Errorf("%w: search.max_expansions cannot be negative (%d)", ErrInvalid, c.Search.MaxExpansions)
	case c.Search.Timeout < 0:
		return fmt.Errorf("%w: search.timeout cannot be negative (%v)", ErrInvalid, c.Search.Timeout)
	case c.Search.Workers < 0:
		return fmt.Errorf("%w: search.workers cannot be negative (%d)", ErrInvalid, c.Search.Workers)
	case c.Search.CacheSize < 1:
		return fmt.Errorf("%w: search.cache_size must be at least 1 (%d)", ErrInvalid, c.Search.CacheSize)
	case !(c.Render.Width > 0) || !(c.Render.Height > 0):
		return fmt.Errorf("%w: render size must be positive (%vx%v)", ErrInvalid, c.Render.Width, c.Render.Height)
	}

	return nil
}
