// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package middleware provides HTTP middleware shared by the API router.

# Available Middleware

  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by chi route pattern rather than raw path
  - AccessLog: one structured zerolog line per request, carrying the
    request and correlation IDs from the context

Both have the func(http.Handler) http.Handler shape and mount directly with
chi's r.Use:

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.AccessLog)
	    r.Use(middleware.PrometheusMetrics)
	    r.Post("/recommendations", h.Recommendations)
	})

Request IDs, CORS and rate limiting come from chi, go-chi/cors and
go-chi/httprate and are configured in the api package.
*/
package middleware
