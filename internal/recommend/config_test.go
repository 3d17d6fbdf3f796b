// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/reelfold/internal/factors"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Limits.DefaultTopN != 50 {
		t.Errorf("DefaultTopN = %d, want 50", cfg.Limits.DefaultTopN)
	}
	if cfg.Scale != (Transform{Factor: 2}) {
		t.Errorf("Scale = %+v, want factor 2 offset 0", cfg.Scale)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero scale factor", func(c *Config) { c.Scale.Factor = 0 }, "scale.factor"},
		{"negative scale factor", func(c *Config) { c.Scale.Factor = -2 }, "scale.factor"},
		{"nan offset", func(c *Config) { c.Scale.Offset = math.NaN() }, "scale.offset"},
		{"zero default top n", func(c *Config) { c.Limits.DefaultTopN = 0 }, "default_top_n"},
		{"max below default", func(c *Config) { c.Limits.MaxTopN = 10 }, "max_top_n"},
		{"negative max ratings", func(c *Config) { c.Limits.MaxRatings = -1 }, "max_ratings"},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, "cache.ttl"},
		{"zero size", func(c *Config) { c.Cache.Size = 0 }, "cache.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	disabled := DefaultConfig()
	disabled.Cache = CacheConfig{Enabled: false}
	if err := disabled.Validate(); err != nil {
		t.Errorf("disabled cache should not need ttl/size: %v", err)
	}
}

func TestConfigTopN(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	tests := map[int]int{0: 50, -3: 50, 10: 10, 500: 500, 10000: 500}
	for in, want := range tests {
		if got := cfg.topN(in); got != want {
			t.Errorf("topN(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()

	tr := Transform{Factor: 2, Offset: 0}
	if tr.ToExternal(4) != 8 || tr.ToInternal(8) != 4 {
		t.Errorf("x2 transform wrong: %v / %v", tr.ToExternal(4), tr.ToInternal(8))
	}

	lo, hi := tr.Range(factors.Scale{Lo: 0.5, Hi: 5})
	if lo != 1 || hi != 10 {
		t.Errorf("Range = [%v, %v], want [1, 10]", lo, hi)
	}

	shifted := Transform{Factor: 1, Offset: -1}
	for _, v := range []float64{0.5, 1, 3.25, 5} {
		if got := shifted.ToInternal(shifted.ToExternal(v)); !approxEqual(got, v) {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}
