// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package api provides the HTTP interface of the recommendation service.

Routing uses chi. Every JSON endpoint answers with the standard envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "INVALID_RATING", "message": "...", "details": {...}}, "meta": {...}}

# Endpoints

  - POST /api/v1/recommendations: rate a few movies, get the best unseen ones
  - GET  /api/v1/catalog/resolve?title=&year=: show how a title resolves
  - GET  /api/v1/model: loaded model summary
  - PUT  /api/v1/users/{userID}/ratings: online update (always 501)
  - GET  /api/v1/health/live, /api/v1/health/ready: probes
  - GET  /metrics: Prometheus exposition

# Error Codes

  - 400 BAD_REQUEST: body is not valid JSON for the request type
  - 400 VALIDATION_FAILED: a rating record is malformed or there are too many
  - 400 INVALID_FILTER: the CEL filter does not compile to a bool
  - 422 INVALID_RATING: a rating is outside the accepted scale
  - 429 TOO_MANY_REQUESTS: rate limit exceeded
  - 500 MODEL_CORRUPT: the fold-in system was not positive definite
  - 501 NOT_IMPLEMENTED: online rating updates
  - 503 SERVICE_UNAVAILABLE: request timed out or was cancelled

# Middleware

Global: request ID with logging context, RealIP, Recoverer, CORS and the
access log. The /api/v1 group adds rate limiting, security headers,
Prometheus metrics and response compression.
*/
package api
