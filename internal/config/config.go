// Package config provides configuration structures and defaults for probetable.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MikhailWahib/probetable/internal/table"
)

const (
	defaultSize     = 10
	defaultStrategy = "linear"
)

// Environment variables read by FromEnv
const (
	EnvSize     = "PROBETABLE_SIZE"
	EnvStrategy = "PROBETABLE_STRATEGY"
	EnvVerbose  = "PROBETABLE_VERBOSE"
)

// Config holds the parameters a table is built with.
type Config struct {
	// Size is the fixed number of slots
	Size int
	// Strategy is a name accepted by table.ParseStrategy
	Strategy string
	// Verbose logs rejected inserts
	Verbose bool
}

// DefaultConfig returns a Config struct populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Size:     defaultSize,
		Strategy: defaultStrategy,
	}
}

// FillDefaults sets any zero-value fields in the Config to their default values.
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.Size == 0 {
		c.Size = def.Size
	}
	if c.Strategy == "" {
		c.Strategy = def.Strategy
	}
}

// Validate checks that the config describes a table that can be built.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: %d", table.ErrInvalidSize, c.Size)
	}
	if _, err := table.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// ParsedStrategy returns the Strategy named by c.Strategy
func (c *Config) ParsedStrategy() (table.Strategy, error) {
	return table.ParseStrategy(c.Strategy)
}

// FromEnv returns the default config overlaid with any PROBETABLE_* variables set
// in the environment.
func FromEnv() (*Config, error) {
	c := DefaultConfig()

	if v := os.Getenv(EnvSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvSize, v, err)
		}
		c.Size = size
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}
		c.Verbose = verbose
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
