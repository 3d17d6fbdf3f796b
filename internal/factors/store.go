// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package factors holds the pretrained biased matrix factorization that
// recommendations are computed against.
//
// A Store is an immutable snapshot: global mean, per-item bias and latent
// vector, the ridge regularization weight and the rating scale. It is loaded
// once at startup (Load / LoadFile) and shared read-only by every request.
package factors

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

var (
	// ErrNotFound is returned by Lookup for ids the model was not trained on.
	ErrNotFound = errors.New("item not in model")

	// ErrInvalidModel marks a snapshot that failed consistency checks.
	ErrInvalidModel = errors.New("invalid factor model")
)

// Scale is the closed rating interval the model was trained on.
type Scale struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Clip clamps v into [Lo, Hi].
func (s Scale) Clip(v float64) float64 {
	return math.Min(math.Max(v, s.Lo), s.Hi)
}

// ItemFactors is the trained parameters of one item.
type ItemFactors struct {
	ID     int       `json:"id"`
	Bias   float64   `json:"bias"`
	Factor []float64 `json:"factor"`
}

// Entry is one element of Store.All. Factor must not be modified.
type Entry struct {
	ID     int
	Bias   float64
	Factor []float64
}

// Snapshot is the raw content of a model, used to build a Store in memory.
type Snapshot struct {
	GlobalMean     float64
	Regularization float64
	Scale          Scale
	Dim            int
	Items          []ItemFactors
}

// Store is a validated, read-only factor model.
type Store struct {
	globalMean     float64
	regularization float64
	scale          Scale
	dim            int

	ids   []int // ascending
	index map[int]int
	bias  []float64
	// factors is a dense ids×dim matrix.
	factors []float64
}

// New validates snap and builds a Store from it. Factor vectors are copied.
func New(snap Snapshot) (*Store, error) {
	if err := validate(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	items := slices.Clone(snap.Items)
	slices.SortFunc(items, func(a, b ItemFactors) int { return cmp.Compare(a.ID, b.ID) })

	s := &Store{
		globalMean:     snap.GlobalMean,
		regularization: snap.Regularization,
		scale:          snap.Scale,
		dim:            snap.Dim,
		ids:            make([]int, len(items)),
		index:          make(map[int]int, len(items)),
		bias:           make([]float64, len(items)),
		factors:        make([]float64, 0, len(items)*snap.Dim),
	}
	for i, it := range items {
		s.ids[i] = it.ID
		s.index[it.ID] = i
		s.bias[i] = it.Bias
		s.factors = append(s.factors, it.Factor...)
	}
	return s, nil
}

func validate(snap *Snapshot) error {
	switch {
	case snap.Dim <= 0:
		return fmt.Errorf("factor dimension must be positive, got %d", snap.Dim)
	case !finite(snap.GlobalMean):
		return errors.New("global mean is not finite")
	case !finite(snap.Regularization) || snap.Regularization <= 0:
		return fmt.Errorf("regularization must be positive, got %v", snap.Regularization)
	case !finite(snap.Scale.Lo) || !finite(snap.Scale.Hi) || snap.Scale.Lo >= snap.Scale.Hi:
		return fmt.Errorf("invalid rating scale [%v, %v]", snap.Scale.Lo, snap.Scale.Hi)
	case len(snap.Items) == 0:
		return errors.New("model has no items")
	}

	seen := make(map[int]struct{}, len(snap.Items))
	for _, it := range snap.Items {
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = struct{}{}

		if len(it.Factor) != snap.Dim {
			return fmt.Errorf("item %d: factor length %d, want %d", it.ID, len(it.Factor), snap.Dim)
		}
		if !finite(it.Bias) {
			return fmt.Errorf("item %d: bias is not finite", it.ID)
		}
		for k, v := range it.Factor {
			if !finite(v) {
				return fmt.Errorf("item %d: factor[%d] is not finite", it.ID, k)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Lookup returns the bias and latent vector of item id. The returned slice
// aliases the store and must not be modified.
func (s *Store) Lookup(id int) (bias float64, factor []float64, err error) {
	i, ok := s.index[id]
	if !ok {
		return 0, nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return s.bias[i], s.row(i), nil
}

// All yields every item in ascending id order. Each call starts a fresh
// traversal.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, id := range s.ids {
			if !yield(Entry{ID: id, Bias: s.bias[i], Factor: s.row(i)}) {
				return
			}
		}
	}
}

func (s *Store) row(i int) []float64 {
	off := i * s.dim
	return s.factors[off : off+s.dim : off+s.dim]
}

// GlobalMean returns the training-set mean rating.
func (s *Store) GlobalMean() float64 { return s.globalMean }

// Regularization returns the ridge weight used for user fold-in.
func (s *Store) Regularization() float64 { return s.regularization }

// Scale returns the training rating scale.
func (s *Store) Scale() Scale { return s.scale }

// Dim returns the latent dimension.
func (s *Store) Dim() int { return s.dim }

// Len returns the number of items in the model.
func (s *Store) Len() int { return len(s.ids) }
