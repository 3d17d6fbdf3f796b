// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/reelfold/internal/factors"
)

// FactorSource is the part of the factor model the solver needs.
// *factors.Store implements it.
type FactorSource interface {
	GlobalMean() float64
	Regularization() float64
	Dim() int
	Lookup(id int) (bias float64, factor []float64, err error)
}

// Solve folds a new user into the model by ridge regression.
//
// Each rating whose item exists in the store contributes a row q_i to Q and
// a residual y_i = r_i - μ - b_i to y; unknown items are skipped. The user
// vector p is the solution of
//
//	(QᵀQ + λI) p = Qᵀy
//
// computed by Cholesky factorization and two triangular solves. It returns
// ErrEmptyRatings when no rating matched, and a wrapped ErrSingularSystem when
// the system is not positive definite.
func Solve(ratings []ResolvedRating, store FactorSource) (Embedding, error) {
	p, _, err := solve(ratings, store)
	return p, err
}

// solve is Solve that also reports how many ratings were used.
//
//nolint:gocritic // A, b follow standard linear algebra notation
func solve(ratings []ResolvedRating, store FactorSource) (Embedding, int, error) {
	n := store.Dim()
	mu := store.GlobalMean()

	// A holds the lower triangle of QᵀQ, row-major n×n.
	A := make([]float64, n*n)
	b := make([]float64, n)

	used := 0
	for _, r := range ratings {
		bias, q, err := store.Lookup(r.ItemID)
		if errors.Is(err, factors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, used, fmt.Errorf("lookup item %d: %w", r.ItemID, err)
		}

		y := r.Value - mu - bias
		for i := 0; i < n; i++ {
			qi := q[i]
			b[i] += qi * y
			row := A[i*n : i*n+i+1]
			for j := range row {
				row[j] += qi * q[j]
			}
		}
		used++
	}

	if used == 0 {
		return nil, 0, ErrEmptyRatings
	}

	lambda := store.Regularization()
	for i := 0; i < n; i++ {
		A[i*n+i] += lambda
	}

	p, err := choleskySolve(A, b, n)
	if err != nil {
		return nil, used, err
	}
	return p, used, nil
}

// choleskySolve solves A x = b for symmetric positive definite A, given by
// its lower triangle in row-major order. A is overwritten with L where A = LLᵀ.
//
//nolint:gocritic // A, L follow standard linear algebra notation
func choleskySolve(A, b []float64, n int) (Embedding, error) {
	for j := 0; j < n; j++ {
		d := A[j*n+j]
		for k := 0; k < j; k++ {
			d -= A[j*n+k] * A[j*n+k]
		}
		// !(d > 0) also rejects NaN.
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: pivot %d is %v", ErrSingularSystem, j, d)
		}
		ljj := math.Sqrt(d)
		A[j*n+j] = ljj

		for i := j + 1; i < n; i++ {
			s := A[i*n+j]
			for k := 0; k < j; k++ {
				s -= A[i*n+k] * A[j*n+k]
			}
			A[i*n+j] = s / ljj
		}
	}

	// L z = b
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		s := b[i]
		for k := 0; k < i; k++ {
			s -= A[i*n+k] * z[k]
		}
		z[i] = s / A[i*n+i]
	}

	// Lᵀ x = z
	x := make(Embedding, n)
	for i := n - 1; i >= 0; i-- {
		s := z[i]
		for k := i + 1; k < n; k++ {
			s -= A[k*n+i] * x[k]
		}
		x[i] = s / A[i*n+i]
	}

	for i, v := range x {
		if !finite(v) {
			return nil, fmt.Errorf("%w: non-finite solution at %d", ErrSingularSystem, i)
		}
	}
	return x, nil
}
