// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package config provides centralized configuration management for Reelfold.

Configuration is layered with Koanf v2. Built-in defaults are loaded first,
then an optional YAML file, then environment variables. Later layers win.

# Configuration File

The file is looked up at CONFIG_PATH, then config.yaml / config.yml in the
working directory, then /etc/reelfold/config.yaml. A missing file is not an
error.

	server:
	  host: 0.0.0.0
	  port: 8642
	catalog:
	  path: /data/movies.csv
	  fold_articles: true
	model:
	  artifact_path: /data/model.json
	scale:
	  factor: 2
	recommend:
	  default_top_n: 50
	  cache_ttl: 10m

# Environment Variables

Only the variables listed in the mapping table are read. Everything else in
the environment is ignored.

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line (default: false)

Data:
  - CATALOG_PATH: movies CSV with movieId and title columns
  - CATALOG_FOLD_ARTICLES: treat "Matrix, The" and "The Matrix" alike
  - MODEL_PATH: trained factor artifact (JSON)

Recommendations:
  - SCALE_FACTOR, SCALE_OFFSET: external = internal*factor + offset
  - RECOMMEND_TOP_N, RECOMMEND_MAX_TOP_N, RECOMMEND_MAX_RATINGS
  - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_SIZE

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	svc, err := recommend.NewService(idx, store, cfg.RecommendConfig(), logger)
*/
package config
