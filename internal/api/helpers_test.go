// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/factors"
	"github.com/tomtom215/reelfold/internal/recommend"
)

// envelope is APIResponse with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

// newExampleService builds the three-item model: μ=3, zero biases,
// q1=(1,0), q2=(0,1), q3=(1,1), λ=0.1, titles A/B/C from 2000.
func newExampleService(t *testing.T) *recommend.Service {
	t.Helper()

	store, err := factors.New(factors.Snapshot{
		GlobalMean:     3,
		Regularization: 0.1,
		Scale:          factors.Scale{Lo: 0.5, Hi: 5},
		Dim:            2,
		Items: []factors.ItemFactors{
			{ID: 1, Factor: []float64{1, 0}},
			{ID: 2, Factor: []float64{0, 1}},
			{ID: 3, Factor: []float64{1, 1}},
		},
	})
	if err != nil {
		t.Fatalf("factors.New: %v", err)
	}
	idx := catalog.Build([]catalog.Item{
		{ID: 1, Title: "A", Year: 2000},
		{ID: 2, Title: "B", Year: 2000},
		{ID: 3, Title: "C", Year: 2000},
	})

	svc, err := recommend.NewService(idx, store, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func testMiddlewareConfig() *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://reelfold.example"}
	cfg.RateLimitDisabled = true
	return cfg
}

func newTestRouter(t *testing.T, svc Recommender, cfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testMiddlewareConfig()
	}
	return NewRouter(NewHandler(svc), NewChiMiddleware(cfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// stubRecommender returns canned answers so tests can drive error paths the
// real service only reaches with a corrupt model.
type stubRecommender struct {
	err   error
	delay time.Duration
	info  recommend.ModelInfo
}

func (s *stubRecommender) GetRecommendations(ctx context.Context, _ recommend.Request) (*recommend.Result, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &recommend.Result{Predictions: []recommend.Prediction{}}, nil
}

func (s *stubRecommender) UpdateUserRatings(context.Context, string, []recommend.RawRating) error {
	return recommend.ErrOnlineUpdateUnsupported
}

func (s *stubRecommender) Resolve(string, int) (int, catalog.Match) { return 0, catalog.MatchNone }

func (s *stubRecommender) Lookup(int) (catalog.Item, bool) { return catalog.Item{}, false }

func (s *stubRecommender) ModelInfo() recommend.ModelInfo { return s.info }
