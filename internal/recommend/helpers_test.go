// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/factors"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// exampleStore is the three-item, two-factor model used throughout:
// μ=3, zero biases, q1=(1,0), q2=(0,1), q3=(1,1), λ=0.1, scale [0.5, 5].
func exampleStore(t *testing.T) *factors.Store {
	t.Helper()
	s, err := factors.New(factors.Snapshot{
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
	return s
}

func exampleCatalog() *catalog.Index {
	return catalog.Build([]catalog.Item{
		{ID: 1, Title: "A", Year: 2000},
		{ID: 2, Title: "B", Year: 2000},
		{ID: 3, Title: "C", Year: 2000},
	})
}

// fakeModel is a hand-built FactorSource that skips factors.New validation,
// so tests can feed the solver data a real store would reject.
type fakeModel struct {
	mean   float64
	lambda float64
	dim    int
	items  map[int][]float64
	biases map[int]float64
}

func (f *fakeModel) GlobalMean() float64     { return f.mean }
func (f *fakeModel) Regularization() float64 { return f.lambda }
func (f *fakeModel) Dim() int                { return f.dim }

func (f *fakeModel) Lookup(id int) (float64, []float64, error) {
	q, ok := f.items[id]
	if !ok {
		return 0, nil, fmt.Errorf("item %d: %w", id, factors.ErrNotFound)
	}
	return f.biases[id], q, nil
}
