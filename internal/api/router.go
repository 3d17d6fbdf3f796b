// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the OpenAPI document served under /swagger.
	_ "github.com/tomtom215/reelfold/internal/api/docs"
	"github.com/tomtom215/reelfold/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler *Handler
	chiMW   *ChiMiddleware
}

// NewRouter creates a router. A nil ChiMiddleware selects
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(DefaultChiMiddlewareConfig())
	}
	return &Router{handler: handler, chiMW: chiMW}
}

// SetupChi builds the full route tree.
//
// Middleware order: request ID first so every later layer logs it, then
// RealIP so rate limiting keys on the client address, then panic recovery.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMW.CORS())
	r.Use(middleware.AccessLog)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Probes stay outside the rate limiter.
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMW.RateLimit("api"))
			r.Use(middleware.PrometheusMetrics)
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Post("/recommendations", router.handler.Recommendations)
			r.Get("/catalog/resolve", router.handler.CatalogResolve)
			r.Get("/model", router.handler.ModelInfo)
			r.Put("/users/{userID}/ratings", router.handler.UpdateRatings)
		})
	})

	return r
}
