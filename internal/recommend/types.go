// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

// RawRating is a user-supplied rating on the external scale, identified by
// free-text title and release year.
type RawRating struct {
	Title string  `json:"title" validate:"required,max=500"`
	Year  int     `json:"year" validate:"gte=0,lte=9999"`
	Value float64 `json:"rating"`
}

// ResolvedRating is a rating attached to a catalog id and rescaled onto the
// model's training scale.
type ResolvedRating struct {
	ItemID int
	Value  float64
}

// Embedding is a folded-in user latent vector. It is request-scoped and never
// mutated after Solve returns it.
type Embedding []float64

// Prediction is one recommended item.
type Prediction struct {
	ItemID int    `json:"item_id"`
	Title  string `json:"title"`
	// Year is nil when the catalog has no release year for the item.
	Year            *int    `json:"year"`
	PredictedRating float64 `json:"predicted_rating"`
}

// Request asks for recommendations for one user.
type Request struct {
	// UserID is only used for logging; the service keeps no per-user state.
	UserID  string
	Ratings []RawRating
	// TopN is the maximum number of predictions. Zero selects the configured
	// default; values above the configured maximum are clamped.
	TopN int
	// Filter is an optional CEL expression over `item` (see Filter).
	Filter string
}

// Stats describes how a request's ratings were used.
type Stats struct {
	Submitted      int  `json:"submitted"`
	Resolved       int  `json:"resolved"`
	Unresolved     int  `json:"unresolved"`
	ExactMatches   int  `json:"exact_matches"`
	FuzzyMatches   int  `json:"fuzzy_matches"`
	UnknownToModel int  `json:"unknown_to_model"`
	CacheHit       bool `json:"cache_hit"`
}

// Result is the output of GetRecommendations. Predictions is never nil.
type Result struct {
	Predictions []Prediction `json:"predictions"`
	Stats       Stats        `json:"stats"`
}
