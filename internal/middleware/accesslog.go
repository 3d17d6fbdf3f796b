// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelfold/internal/logging"
)

// AccessLog writes one structured line per completed request using the
// request-scoped logger, so request_id and correlation_id are attached.
// Server errors log at error level, client errors at warn, the rest at debug.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger := logging.Ctx(r.Context())
		var ev *zerolog.Event
		switch {
		case rec.statusCode >= http.StatusInternalServerError:
			ev = logger.Error()
		case rec.statusCode >= http.StatusBadRequest:
			ev = logger.Warn()
		default:
			ev = logger.Debug()
		}

		ev.Str("component", "http").
			Str("method", r.Method).
			Str("route", RoutePattern(r)).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rec.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
