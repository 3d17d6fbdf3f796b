// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/reelfold/internal/logging"
)

// Rate limit bounds. Disabled rate limiting skips the check.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100_000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate reports the first invalid setting. Messages name the environment
// variable that controls the setting, since that is what operators edit.
func (c *Config) Validate() error {
	checks := []func() error{
		c.validateServer,
		c.validateArtifacts,
		func() error {
			if err := c.RecommendConfig().Validate(); err != nil {
				return fmt.Errorf("recommend: %w", err)
			}
			return nil
		},
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	switch {
	case c.Server.Port < 1 || c.Server.Port > 65535:
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	case c.Server.Timeout <= 0:
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

// validateArtifacts requires both startup artifacts. Whether the files exist
// is checked when they load.
func (c *Config) validateArtifacts() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("CATALOG_PATH is required")
	}
	if strings.TrimSpace(c.Model.ArtifactPath) == "" {
		return errors.New("MODEL_PATH is required")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if n := c.Security.RateLimitReqs; n < minRateLimitRequests || n > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d, got %d",
			minRateLimitRequests, maxRateLimitRequests, n)
	}
	if w := c.Security.RateLimitWindow; w < minRateLimitWindow || w > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v, got %v",
			minRateLimitWindow, maxRateLimitWindow, w)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level (trace, debug, info, warn, error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
