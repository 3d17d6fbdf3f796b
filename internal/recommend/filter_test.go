// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package recommend

import (
	"errors"
	"testing"
)

func TestCompileFilter(t *testing.T) {
	t.Parallel()

	candidate := Candidate{ItemID: 3, Title: "Toy Story", Year: 1995, Bias: 0.4, PredictedRating: 8.2}

	tests := []struct {
		name    string
		expr    string
		want    bool
		wantErr bool
	}{
		{"empty accepts all", "", true, false},
		{"blank accepts all", "   ", true, false},
		{"year comparison", "item.year >= 1990", true, false},
		{"year rejects", "item.year > 2000", false, false},
		{"string function", `item.title.contains("Story")`, true, false},
		{"score and id", "item.predicted_rating > 8.0 && item.id != 4", true, false},
		{"bias", "item.bias < 0.0", false, false},
		{"unknown field rejects at runtime", "item.genre == 'Comedy'", false, false},
		{"non-boolean result rejects at runtime", "item.title", false, false},
		{"syntax error", "item.year >=", false, true},
		{"non-boolean constant", "1 + 2", false, true},
		{"undeclared variable", "movie.year > 1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := CompileFilter(tt.expr)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFilter) {
					t.Fatalf("expected ErrInvalidFilter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompileFilter(%q): %v", tt.expr, err)
			}
			if got := f.Accept(candidate); got != tt.want {
				t.Errorf("Accept() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	t.Parallel()

	var nilFilter *Filter
	if nilFilter.String() != "" {
		t.Error("nil filter should render as empty")
	}

	f, err := CompileFilter("  item.year > 2000 ")
	if err != nil {
		t.Fatalf("CompileFilter: %v", err)
	}
	if f.String() != "item.year > 2000" {
		t.Errorf("String() = %q", f.String())
	}
}
