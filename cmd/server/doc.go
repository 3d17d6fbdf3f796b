// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package main is the entry point for the reelfold recommendation server.

reelfold serves movie recommendations from a pretrained biased matrix
factorization. A client posts the titles and ratings of movies it has seen;
the server resolves each title against the catalog, folds the user into the
model's latent space with a ridge regression and returns the highest
predicted unseen movies.

# Startup

 1. Configuration: koanf v2, defaults < config file < environment
 2. Logging: zerolog, JSON or console
 3. Artifacts: the catalog CSV (via DuckDB) and the factor model JSON load
    concurrently; either failing is fatal
 4. Recommendation service with its result cache
 5. Supervisor tree: HTTP server and cache janitor

# Configuration

	HTTP_PORT=8642              # listen port
	CATALOG_PATH=/data/movies.csv
	MODEL_PATH=/data/model.json
	SCALE_FACTOR=2              # external rating = factor × model rating + offset
	RECOMMEND_TOP_N=50
	CORS_ORIGINS=https://app.example.com
	LOG_LEVEL=info
	LOG_FORMAT=json

CONFIG_PATH points at a YAML file with the same keys in nested form
(server.port, catalog.path, ...).

# Endpoints

	POST /api/v1/recommendations
	GET  /api/v1/catalog/resolve?title=&year=
	GET  /api/v1/model
	PUT  /api/v1/users/{userID}/ratings   (501, the model is frozen)
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics
	GET  /swagger/*                     (OpenAPI document and UI)

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests for up to 10 seconds.
*/
package main
