// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelfold/internal/cache"
	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/factors"
	"github.com/tomtom215/reelfold/internal/logging"
	"github.com/tomtom215/reelfold/internal/metrics"
)

// Catalog resolves ratings and annotates predictions. *catalog.Index
// implements it.
type Catalog interface {
	Resolve(title string, year int) (int, catalog.Match)
	Lookup(id int) (catalog.Item, bool)
	Len() int
}

// Model is the factor model the service folds users into. *factors.Store
// implements it.
type Model interface {
	FactorSource
	ItemSource
	Len() int
}

// cachedResult is what the result cache stores per resolved input.
type cachedResult struct {
	predictions []Prediction
	used        int
}

// Service runs the resolve, rescale, solve and rank pipeline.
// It is safe for concurrent use.
type Service struct {
	catalog Catalog
	model   Model
	config  *Config
	logger  zerolog.Logger
	cache   *cache.LRU[uint64, cachedResult]
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithoutCache disables result caching regardless of Config.Cache.
func WithoutCache() ServiceOption {
	return func(s *Service) {
		s.cache = nil
	}
}

// NewService creates a recommendation service over an immutable catalog and
// factor model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cat Catalog, model Model, cfg *Config, logger zerolog.Logger, opts ...ServiceOption) (*Service, error) {
	if cat == nil || model == nil {
		return nil, errors.New("catalog and model are required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{
		catalog: cat,
		model:   model,
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		s.cache = cache.New[uint64, cachedResult](cfg.Cache.Size, cfg.Cache.TTL)
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// RatingRange returns the accepted external rating interval [T(lo), T(hi)].
func (s *Service) RatingRange() (lo, hi float64) {
	return s.config.Scale.Range(s.model.Scale())
}

// GetRecommendations resolves the request's ratings, folds the user into the
// model and returns the best unrated items.
//
// A request whose ratings all fail to resolve (or are unknown to the model)
// succeeds with an empty prediction list. Ratings outside RatingRange are
// rejected with an *InvalidRatingError before any work is done.
func (s *Service) GetRecommendations(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	logger := s.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("user_id", req.UserID).
		Logger()

	res, outcome, err := s.run(ctx, req, logger)
	metrics.RecordRecommendation(outcome, time.Since(start))

	if err != nil {
		ev := logger.Warn()
		if outcome == metrics.OutcomeSingular || outcome == metrics.OutcomeError {
			ev = logger.Error()
		}
		ev.Err(err).Str("outcome", outcome).Msg("recommendation request failed")
		return nil, err
	}

	logger.Info().
		Int("submitted", res.Stats.Submitted).
		Int("resolved", res.Stats.Resolved).
		Int("unresolved", res.Stats.Unresolved).
		Int("unknown_to_model", res.Stats.UnknownToModel).
		Int("predictions", len(res.Predictions)).
		Bool("cache_hit", res.Stats.CacheHit).
		Dur("duration", time.Since(start)).
		Msg("recommendations generated")

	return res, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (s *Service) run(ctx context.Context, req Request, logger zerolog.Logger) (*Result, string, error) {
	if err := s.validate(req.Ratings); err != nil {
		return nil, metrics.OutcomeInvalid, err
	}
	filter, err := CompileFilter(req.Filter)
	if err != nil {
		return nil, metrics.OutcomeInvalid, err
	}
	if err := ctx.Err(); err != nil {
		return nil, metrics.OutcomeCancelled, err
	}

	topN := s.config.topN(req.TopN)
	res := &Result{
		Predictions: []Prediction{},
		Stats:       Stats{Submitted: len(req.Ratings)},
	}

	stageStart := time.Now()
	resolved, excluded := s.resolve(req.Ratings, &res.Stats, logger)
	metrics.RecordStage(metrics.StageResolve, time.Since(stageStart))

	if len(resolved) == 0 {
		return res, metrics.OutcomeEmpty, nil
	}

	key := cacheKey(resolved, topN, filter.String())
	if s.cache != nil {
		cached, hit := s.cache.Get(key)
		metrics.RecordCacheLookup(hit)
		if hit {
			res.Predictions = slices.Clone(cached.predictions)
			res.Stats.UnknownToModel = res.Stats.Resolved - cached.used
			res.Stats.CacheHit = true
			metrics.RecordRatings(metrics.RatingUnknownModel, res.Stats.UnknownToModel)
			return res, outcomeFor(res), nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, metrics.OutcomeCancelled, err
	}

	stageStart = time.Now()
	p, used, err := solve(resolved, s.model)
	metrics.RecordStage(metrics.StageSolve, time.Since(stageStart))

	res.Stats.UnknownToModel = res.Stats.Resolved - used
	metrics.RecordRatings(metrics.RatingUnknownModel, res.Stats.UnknownToModel)

	switch {
	case errors.Is(err, ErrEmptyRatings):
		logger.Debug().Int("resolved", res.Stats.Resolved).Msg("no resolved rating is known to the model")
		s.remember(key, cachedResult{predictions: res.Predictions, used: used})
		return res, metrics.OutcomeEmpty, nil
	case errors.Is(err, ErrSingularSystem):
		return nil, metrics.OutcomeSingular, err
	case err != nil:
		return nil, metrics.OutcomeError, err
	}

	if err := ctx.Err(); err != nil {
		return nil, metrics.OutcomeCancelled, err
	}

	stageStart = time.Now()
	res.Predictions = Rank(p, s.model, s.catalog, excluded, topN, RankOptions{
		Transform: s.config.Scale,
		Filter:    filter,
	})
	metrics.RecordStage(metrics.StageRank, time.Since(stageStart))

	s.remember(key, cachedResult{predictions: slices.Clone(res.Predictions), used: used})
	return res, outcomeFor(res), nil
}

// validate rejects oversize requests and out-of-range rating values.
func (s *Service) validate(ratings []RawRating) error {
	if limit := s.config.Limits.MaxRatings; limit > 0 && len(ratings) > limit {
		return fmt.Errorf("%w: %d ratings, limit %d", ErrTooManyRatings, len(ratings), limit)
	}

	lo, hi := s.RatingRange()
	for i, r := range ratings {
		if !finite(r.Value) || r.Value < lo || r.Value > hi {
			return &InvalidRatingError{Index: i, Title: r.Title, Value: r.Value, Min: lo, Max: hi}
		}
	}
	return nil
}

// resolve maps raw ratings to catalog ids on the model scale. Duplicates are
// kept; every resolved id is excluded from ranking.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (s *Service) resolve(ratings []RawRating, stats *Stats, logger zerolog.Logger) ([]ResolvedRating, map[int]struct{}) {
	resolved := make([]ResolvedRating, 0, len(ratings))
	excluded := make(map[int]struct{}, len(ratings))

	for _, r := range ratings {
		id, match := s.catalog.Resolve(r.Title, r.Year)
		switch match {
		case catalog.MatchExact:
			stats.ExactMatches++
		case catalog.MatchFuzzy:
			stats.FuzzyMatches++
		default:
			stats.Unresolved++
			logger.Debug().Str("title", r.Title).Int("year", r.Year).Msg("rating did not resolve to a catalog item")
			continue
		}

		resolved = append(resolved, ResolvedRating{ItemID: id, Value: s.config.Scale.ToInternal(r.Value)})
		excluded[id] = struct{}{}
	}
	stats.Resolved = len(resolved)

	metrics.RecordRatings(metrics.RatingExact, stats.ExactMatches)
	metrics.RecordRatings(metrics.RatingFuzzy, stats.FuzzyMatches)
	metrics.RecordRatings(metrics.RatingUnresolved, stats.Unresolved)

	return resolved, excluded
}

func (s *Service) remember(key uint64, r cachedResult) {
	if s.cache == nil {
		return
	}
	s.cache.Add(key, r)
	metrics.SetCacheEntries(s.cache.Len())
}

// SweepCache drops expired result cache entries and returns how many were
// removed. Expired entries are never served, so sweeping only frees memory.
func (s *Service) SweepCache() int {
	if s.cache == nil {
		return 0
	}
	removed := s.cache.CleanupExpired()
	metrics.SetCacheEntries(s.cache.Len())
	return removed
}

// UpdateUserRatings would fold new ratings into the trained model. The model
// is frozen, so it always returns ErrOnlineUpdateUnsupported.
func (s *Service) UpdateUserRatings(ctx context.Context, userID string, ratings []RawRating) error {
	logging.Ctx(ctx).Debug().
		Str("user_id", userID).
		Int("ratings", len(ratings)).
		Msg("online rating update requested")
	return ErrOnlineUpdateUnsupported
}

// Resolve exposes catalog resolution for diagnostics.
func (s *Service) Resolve(title string, year int) (int, catalog.Match) {
	return s.catalog.Resolve(title, year)
}

// Lookup returns catalog metadata for id.
func (s *Service) Lookup(id int) (catalog.Item, bool) {
	return s.catalog.Lookup(id)
}

// ModelInfo describes the loaded model.
type ModelInfo struct {
	Factors        int           `json:"factors"`
	Items          int           `json:"items"`
	CatalogItems   int           `json:"catalog_items"`
	GlobalMean     float64       `json:"global_mean"`
	Regularization float64       `json:"regularization"`
	ModelScale     factors.Scale `json:"model_scale"`
	RatingScale    factors.Scale `json:"rating_scale"`
}

// ModelInfo returns a summary of the loaded catalog and model.
func (s *Service) ModelInfo() ModelInfo {
	lo, hi := s.RatingRange()
	return ModelInfo{
		Factors:        s.model.Dim(),
		Items:          s.model.Len(),
		CatalogItems:   s.catalog.Len(),
		GlobalMean:     s.model.GlobalMean(),
		Regularization: s.model.Regularization(),
		ModelScale:     s.model.Scale(),
		RatingScale:    factors.Scale{Lo: lo, Hi: hi},
	}
}

func outcomeFor(res *Result) string {
	if len(res.Predictions) == 0 {
		return metrics.OutcomeEmpty
	}
	return metrics.OutcomeOK
}

// cacheKey hashes the resolved ratings in order together with the result
// shaping parameters.
func cacheKey(resolved []ResolvedRating, topN int, filter string) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, r := range resolved {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(r.ItemID)))
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(r.Value))
		_, _ = d.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(topN)))
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(filter)
	return d.Sum64()
}
