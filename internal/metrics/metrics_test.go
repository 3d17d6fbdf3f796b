// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"recommendations ok", "POST", "/api/v1/recommendations", "200", 12 * time.Millisecond},
		{"recommendations invalid", "POST", "/api/v1/recommendations", "422", time.Millisecond},
		{"resolve", "GET", "/api/v1/catalog/resolve", "200", 300 * time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after != before+1 {
				t.Errorf("api_requests_total: got %v, want %v", after, before+1)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc: got %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec: got %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendRequests.WithLabelValues(OutcomeOK))
	RecordRecommendation(OutcomeOK, 3*time.Millisecond)
	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues(OutcomeOK)); got != before+1 {
		t.Errorf("recommend_requests_total{ok}: got %v, want %v", got, before+1)
	}

	hist := &dto.Metric{}
	if err := RecommendDuration.WithLabelValues(StageTotal).(prometheus.Metric).Write(hist); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	if hist.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected total stage histogram to have samples")
	}
}

func TestRecordRatings(t *testing.T) {
	before := testutil.ToFloat64(RecommendRatings.WithLabelValues(RatingFuzzy))
	RecordRatings(RatingFuzzy, 3)
	RecordRatings(RatingFuzzy, 0)
	if got := testutil.ToFloat64(RecommendRatings.WithLabelValues(RatingFuzzy)); got != before+3 {
		t.Errorf("recommend_ratings_total{fuzzy}: got %v, want %v", got, before+3)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(RecommendCacheHits)
	misses := testutil.ToFloat64(RecommendCacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(RecommendCacheHits); got != hits+1 {
		t.Errorf("cache hits: got %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(RecommendCacheMisses); got != misses+2 {
		t.Errorf("cache misses: got %v, want %v", got, misses+2)
	}
}

func TestSetModelInfo(t *testing.T) {
	SetModelInfo(9742, 9724, 300)

	if got := testutil.ToFloat64(CatalogItems); got != 9742 {
		t.Errorf("catalog_items = %v", got)
	}
	if got := testutil.ToFloat64(ModelItems); got != 9724 {
		t.Errorf("model_items = %v", got)
	}
	if got := testutil.ToFloat64(ModelFactors); got != 300 {
		t.Errorf("model_factors = %v", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/v1/recommendations"))
	RecordRateLimitHit("/api/v1/recommendations")
	if got := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/v1/recommendations")); got != before+1 {
		t.Errorf("rate limit hits: got %v, want %v", got, before+1)
	}
}
