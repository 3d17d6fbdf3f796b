// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	filterEnv     *cel.Env
	filterEnvErr  error
	filterEnvOnce sync.Once
)

func getFilterEnv() (*cel.Env, error) {
	filterEnvOnce.Do(func() {
		filterEnv, filterEnvErr = cel.NewEnv(
			cel.Variable("item", cel.DynType),
		)
	})
	return filterEnv, filterEnvErr
}

// Filter is a compiled CEL predicate over candidate items. The expression
// sees a single variable, item, with the fields:
//
//	item.id                int
//	item.title             string
//	item.year              int (0 when unknown)
//	item.bias              double
//	item.predicted_rating  double, on the external scale
//
// Examples:
//
//	item.year >= 2000
//	item.predicted_rating > 7.0 && !item.title.contains("Christmas")
//
// A Filter is safe for concurrent use. Items for which evaluation fails or
// yields a non-boolean are rejected.
type Filter struct {
	expr string
	prg  cel.Program
}

// CompileFilter compiles expr. An empty or blank expression yields a nil
// Filter, which accepts everything.
func CompileFilter(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	env, err := getFilterEnv()
	if err != nil {
		return nil, fmt.Errorf("filter environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: expression must return bool, got %s", ErrInvalidFilter, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Accept reports whether the candidate passes the filter.
func (f *Filter) Accept(c Candidate) bool {
	if f == nil {
		return true
	}

	out, _, err := f.prg.Eval(map[string]any{
		"item": map[string]any{
			"id":               int64(c.ItemID),
			"title":            c.Title,
			"year":             int64(c.Year),
			"bias":             c.Bias,
			"predicted_rating": c.PredictedRating,
		},
	})
	if err != nil {
		return false
	}
	ok, isBool := out.Value().(bool)
	return isBool && ok
}

// Candidate is the view of an item a Filter evaluates.
type Candidate struct {
	ItemID          int
	Title           string
	Year            int
	Bias            float64
	PredictedRating float64
}
