// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"fmt"
	"math"
	"time"
)

// Config contains all configuration for the recommendation service.
type Config struct {
	// Scale maps model ratings to the scale users see.
	// Default: factor 2, offset 0 (0.5-5 model, 1-10 users).
	Scale Transform `json:"scale"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultTopN is used when a request does not specify TopN.
	// Default: 50.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps TopN.
	// Default: 500.
	MaxTopN int `json:"max_top_n"`

	// MaxRatings caps the number of ratings accepted per request.
	// Zero disables the check.
	// Default: 1000.
	MaxRatings int `json:"max_ratings"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled turns on memoization of ranked results.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached result stays valid.
	// Default: 10m.
	TTL time.Duration `json:"ttl"`

	// Size is the maximum number of cached results.
	// Default: 1024.
	Size int `json:"size"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scale: Transform{Factor: 2, Offset: 0},
		Limits: LimitsConfig{
			DefaultTopN: 50,
			MaxTopN:     500,
			MaxRatings:  1000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
			Size:    1024,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := c.Scale.Validate(); err != nil {
		return err
	}

	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d",
			c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}
	if c.Limits.MaxRatings < 0 {
		return fmt.Errorf("limits.max_ratings must be non-negative, got %d", c.Limits.MaxRatings)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.Size < 1 {
			return fmt.Errorf("cache.size must be positive, got %d", c.Cache.Size)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// topN applies the default and the cap to a requested result count.
func (c *Config) topN(requested int) int {
	if requested <= 0 {
		return c.Limits.DefaultTopN
	}
	return min(requested, c.Limits.MaxTopN)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
