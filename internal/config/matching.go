package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/reclaim-app/reclaim/internal/scoring"
)

const (
	EnvSweepEnabled  = "RECLAIM_SWEEP_ENABLED"
	EnvSweepInterval = "RECLAIM_SWEEP_INTERVAL"
	EnvSweepWorkers  = "RECLAIM_SWEEP_WORKERS"
)

var weightsEnv = &scoring.WeightsEnv{
	Category:    "RECLAIM_MATCH_WEIGHT_CATEGORY",
	Location:    "RECLAIM_MATCH_WEIGHT_LOCATION",
	Date:        "RECLAIM_MATCH_WEIGHT_DATE",
	Title:       "RECLAIM_MATCH_WEIGHT_TITLE",
	Description: "RECLAIM_MATCH_WEIGHT_DESCRIPTION",
	Identifier:  "RECLAIM_MATCH_WEIGHT_IDENTIFIER",
}

// MatchingConfig holds similarity factor weights and background sweep
// scheduling. The sweep scheduler is opt-in; the manual sweep endpoint
// works regardless.
type MatchingConfig struct {
	Weights       scoring.Weights `toml:"weights"`
	SweepEnabled  bool            `toml:"sweep_enabled"`
	SweepInterval string          `toml:"sweep_interval"`
	SweepWorkers  int             `toml:"sweep_workers"`
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *MatchingConfig) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation
// for the matching config and its nested weights.
func (c *MatchingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Weights.Finalize(weightsEnv); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. SweepEnabled always
// overwrites since false is a valid override.
func (c *MatchingConfig) Merge(overlay *MatchingConfig) {
	c.SweepEnabled = overlay.SweepEnabled
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.SweepWorkers != 0 {
		c.SweepWorkers = overlay.SweepWorkers
	}

	c.Weights.Merge(&overlay.Weights)
}

func (c *MatchingConfig) loadDefaults() {
	if c.SweepInterval == "" {
		c.SweepInterval = "1h"
	}
	// SweepWorkers 0 means one worker per CPU, capped by batch size.
}

func (c *MatchingConfig) loadEnv() {
	if v := os.Getenv(EnvSweepEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.SweepEnabled = enabled
		}
	}
	if v := os.Getenv(EnvSweepInterval); v != "" {
		c.SweepInterval = v
	}
	if v := os.Getenv(EnvSweepWorkers); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.SweepWorkers = workers
		}
	}
}

func (c *MatchingConfig) validate() error {
	interval, err := time.ParseDuration(c.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	if interval <= 0 {
		return fmt.Errorf("sweep_interval must be positive: %s", c.SweepInterval)
	}
	if c.SweepWorkers < 0 {
		return fmt.Errorf("sweep_workers cannot be negative: %d", c.SweepWorkers)
	}
	return nil
}
