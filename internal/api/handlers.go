// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/recommend"
)

// Recommender is the part of *recommend.Service the handlers use.
type Recommender interface {
	GetRecommendations(ctx context.Context, req recommend.Request) (*recommend.Result, error)
	UpdateUserRatings(ctx context.Context, userID string, ratings []recommend.RawRating) error
	Resolve(title string, year int) (int, catalog.Match)
	Lookup(id int) (catalog.Item, bool)
	ModelInfo() recommend.ModelInfo
}

// DefaultRequestTimeout bounds a single recommendation request.
const DefaultRequestTimeout = 10 * time.Second

// maxBodyBytes caps request bodies. A thousand ratings fit comfortably.
const maxBodyBytes = 1 << 20

// Handler serves the API endpoints.
type Handler struct {
	service   Recommender
	timeout   time.Duration
	startTime time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// NewHandler creates a new API handler.
func NewHandler(service Recommender, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:   service,
		timeout:   DefaultRequestTimeout,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
