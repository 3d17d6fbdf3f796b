// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package metrics exposes Prometheus instrumentation for Reelfold.
//
// Collectors are registered on the default registry through promauto and are
// served by promhttp at /metrics. Callers use the Record* helpers rather than
// touching the vectors directly so label sets stay consistent.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeEmpty     = "empty"
	OutcomeInvalid   = "invalid"
	OutcomeSingular  = "singular"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Rating resolution results.
const (
	RatingExact        = "exact"
	RatingFuzzy        = "fuzzy"
	RatingUnresolved   = "unresolved"
	RatingUnknownModel = "unknown_model"
)

// Pipeline stages.
const (
	StageResolve = "resolve"
	StageSolve   = "solve"
	StageRank    = "rank"
	StageTotal   = "total"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Recommendation pipeline duration in seconds by stage",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"stage"},
	)

	RecommendRatings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_ratings_total",
			Help: "Submitted ratings by resolution result",
		},
		[]string{"result"},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation result cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation result cache misses",
		},
	)

	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)

	// Model Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of rows in the loaded catalog",
		},
	)

	ModelItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_items",
			Help: "Number of items in the loaded factor model",
		},
	)

	ModelFactors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_factors",
			Help: "Latent dimension of the loaded factor model",
		},
	)

	ModelLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_load_duration_seconds",
			Help:    "Time spent loading startup artifacts",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"artifact"}, // "catalog", "factors"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records the outcome and total latency of one request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.WithLabelValues(StageTotal).Observe(duration.Seconds())
}

// RecordStage records the latency of a single pipeline stage.
func RecordStage(stage string, duration time.Duration) {
	RecommendDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordRatings adds n ratings to the given resolution result.
func RecordRatings(result string, n int) {
	if n <= 0 {
		return
	}
	RecommendRatings.WithLabelValues(result).Add(float64(n))
}

// RecordCacheLookup counts a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// SetCacheEntries publishes the current result cache size.
func SetCacheEntries(n int) {
	RecommendCacheEntries.Set(float64(n))
}

// SetModelInfo publishes the size of the loaded catalog and model.
func SetModelInfo(catalogItems, modelItems, factors int) {
	CatalogItems.Set(float64(catalogItems))
	ModelItems.Set(float64(modelItems))
	ModelFactors.Set(float64(factors))
}

// RecordArtifactLoad records how long a startup artifact took to load.
func RecordArtifactLoad(artifact string, duration time.Duration) {
	ModelLoadDuration.WithLabelValues(artifact).Observe(duration.Seconds())
}
