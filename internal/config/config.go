// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package config

import (
	"time"

	"github.com/tomtom215/reelfold/internal/logging"
	"github.com/tomtom215/reelfold/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Model     ModelConfig     `koanf:"model"`
	Scale     ScaleConfig     `koanf:"scale"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates the movie catalog.
type CatalogConfig struct {
	// Path is a CSV file with at least movieId and title columns.
	Path string `koanf:"path"`

	// FoldArticles makes "Matrix, The" and "The Matrix" resolve alike.
	FoldArticles bool `koanf:"fold_articles"`
}

// ModelConfig locates the trained factor model.
type ModelConfig struct {
	ArtifactPath string `koanf:"artifact_path"`
}

// ScaleConfig is the linear map from model ratings to user-facing ratings.
type ScaleConfig struct {
	Factor float64 `koanf:"factor"`
	Offset float64 `koanf:"offset"`
}

// RecommendConfig holds request limits and result cache settings
type RecommendConfig struct {
	DefaultTopN  int           `koanf:"default_top_n"`
	MaxTopN      int           `koanf:"max_top_n"`
	MaxRatings   int           `koanf:"max_ratings"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheSize    int           `koanf:"cache_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingSettings converts the logging section for logging.Init.
func (c *Config) LoggingSettings() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	if c.Logging.Format != "" {
		lc.Format = c.Logging.Format
	}
	lc.Caller = c.Logging.Caller
	return lc
}

// RecommendConfig converts the scale and recommend sections into the
// service configuration.
func (c *Config) RecommendConfig() *recommend.Config {
	return &recommend.Config{
		Scale: recommend.Transform{
			Factor: c.Scale.Factor,
			Offset: c.Scale.Offset,
		},
		Limits: recommend.LimitsConfig{
			DefaultTopN: c.Recommend.DefaultTopN,
			MaxTopN:     c.Recommend.MaxTopN,
			MaxRatings:  c.Recommend.MaxRatings,
		},
		Cache: recommend.CacheConfig{
			Enabled: c.Recommend.CacheEnabled,
			TTL:     c.Recommend.CacheTTL,
			Size:    c.Recommend.CacheSize,
		},
	}
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
