// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"cmp"
	"iter"
	"slices"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/factors"
)

// ItemSource is the part of the factor model the ranker needs.
// *factors.Store implements it.
type ItemSource interface {
	GlobalMean() float64
	Scale() factors.Scale
	All() iter.Seq[factors.Entry]
}

// CatalogView annotates predictions with display metadata.
// *catalog.Index implements it.
type CatalogView interface {
	Lookup(id int) (catalog.Item, bool)
}

// RankOptions tunes Rank.
type RankOptions struct {
	// Transform maps clipped model scores to the external scale.
	Transform Transform
	// Filter optionally restricts candidates. Nil accepts everything.
	Filter *Filter
}

type scored struct {
	id    int
	score float64
	item  catalog.Item
}

// Rank scores every model item that is not excluded and is present in the
// catalog as μ + b_i + p·q_i, clips it to the model scale, maps it to the
// external scale and returns the topN best, ties broken by ascending id.
func Rank(p Embedding, store ItemSource, cat CatalogView, excluded map[int]struct{}, topN int, opts RankOptions) []Prediction {
	if topN <= 0 {
		return []Prediction{}
	}

	mu := store.GlobalMean()
	sc := store.Scale()

	var candidates []scored
	for e := range store.All() {
		if _, skip := excluded[e.ID]; skip {
			continue
		}
		item, ok := cat.Lookup(e.ID)
		if !ok {
			continue
		}

		raw := mu + e.Bias + dot(p, e.Factor)
		score := opts.Transform.ToExternal(sc.Clip(raw))

		if opts.Filter != nil && !opts.Filter.Accept(Candidate{
			ItemID:          e.ID,
			Title:           item.Title,
			Year:            item.Year,
			Bias:            e.Bias,
			PredictedRating: score,
		}) {
			continue
		}

		candidates = append(candidates, scored{id: e.ID, score: score, item: item})
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	out := make([]Prediction, len(candidates))
	for i, c := range candidates {
		out[i] = Prediction{
			ItemID:          c.id,
			Title:           c.item.Title,
			Year:            yearPtr(c.item.Year),
			PredictedRating: c.score,
		}
	}
	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func yearPtr(y int) *int {
	if y == 0 {
		return nil
	}
	return &y
}
