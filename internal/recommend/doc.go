// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package recommend produces movie recommendations for a new user from a
// handful of explicit ratings and a frozen, pretrained factor model.
//
// # Pipeline
//
// A request flows through four stages, each a plain function or method that
// can be exercised on its own:
//
//   - Resolve: free-text (title, year) ratings are mapped to catalog ids
//     through a catalog.Index. Misses are dropped and counted.
//   - Rescale: external ratings (e.g. 1-10) are mapped onto the model's
//     training scale (e.g. 0.5-5) with a configurable linear Transform.
//   - Solve: the user's latent vector p is folded in by ridge regression,
//     solving (QᵀQ + λI) p = Qᵀy with a Cholesky factorization.
//   - Rank: every unrated item is scored as μ + b_i + p·q_i, clipped to the
//     model scale, mapped back to the external scale and ordered best first.
//
// # Guarantees
//
//   - Deterministic: identical inputs produce bit-identical outputs.
//   - Stateless: the catalog and factor store are immutable snapshots and the
//     only shared mutable state is the optional result cache.
//   - No retraining: the model is never updated online; see
//     Service.UpdateUserRatings.
//
// # Usage
//
//	svc, err := recommend.NewService(idx, store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	res, err := svc.GetRecommendations(ctx, recommend.Request{
//	    UserID:  "42",
//	    Ratings: []recommend.RawRating{{Title: "Toy Story", Year: 1995, Value: 8}},
//	})
package recommend
