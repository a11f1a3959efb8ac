package events

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds event bus settings.
type Config struct {
	BufferSize int64 `toml:"buffer_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BufferSize string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BufferSize != 0 {
		c.BufferSize = overlay.BufferSize
	}
}

func (c *Config) loadDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = 64
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BufferSize != "" {
		if v := os.Getenv(env.BufferSize); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.BufferSize = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer_size cannot be negative")
	}
	return nil
}
