// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are probed in order when CONFIG_PATH is unset or missing.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelfold/config.yaml",
	"/etc/reelfold/config.yml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig is the lowest configuration layer.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    8642,
			Host:    "0.0.0.0",
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:         "/data/movies.csv",
			FoldArticles: false,
		},
		Model: ModelConfig{
			ArtifactPath: "/data/model.json",
		},
		// MovieLens style: trained on 0.5-5 stars, shown on 1-10
		Scale: ScaleConfig{
			Factor: 2,
			Offset: 0,
		},
		Recommend: RecommendConfig{
			DefaultTopN:  50,
			MaxTopN:      500,
			MaxRatings:   1000,
			CacheEnabled: true,
			CacheTTL:     10 * time.Minute,
			CacheSize:    1024,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf builds the Config from three layers, later ones winning:
// the built-in defaults, an optional YAML file (see findConfigFile) and the
// environment variables listed in envMappings. The result is validated.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// findConfigFile returns $CONFIG_PATH when it exists, else the first of
// DefaultConfigPaths that exists, else "".
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		if len(items) == 0 {
			continue
		}
		if err := k.Set(path, items); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"catalog_path":          "catalog.path",
	"catalog_fold_articles": "catalog.fold_articles",
	"model_path":            "model.artifact_path",

	"scale_factor": "scale.factor",
	"scale_offset": "scale.offset",

	"recommend_top_n":         "recommend.default_top_n",
	"recommend_max_top_n":     "recommend.max_top_n",
	"recommend_max_ratings":   "recommend.max_ratings",
	"recommend_cache_enabled": "recommend.cache_enabled",
	"recommend_cache_ttl":     "recommend.cache_ttl",
	"recommend_cache_size":    "recommend.cache_size",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_PATH -> catalog.path
//   - RECOMMEND_TOP_N -> recommend.default_top_n
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
//
// Unmapped keys return an empty string and are skipped, so unrelated
// environment variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
