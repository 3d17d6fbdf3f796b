// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is used when NewCacheJanitorService gets a
// non-positive interval.
const DefaultSweepInterval = time.Minute

// CacheSweeper drops expired cache entries. Satisfied by *recommend.Service.
type CacheSweeper interface {
	SweepCache() int
}

// CacheJanitorService periodically sweeps the recommendation result cache.
// Expired entries are never served, but without a sweep they hold memory
// until the LRU evicts them.
type CacheJanitorService struct {
	sweeper  CacheSweeper
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor that sweeps every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(sweeper CacheSweeper, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheJanitorService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.sweeper.SweepCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired cache entries")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
