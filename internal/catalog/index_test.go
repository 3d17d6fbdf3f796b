// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package catalog

import (
	"sync"
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: 1, Title: "Toy Story", Year: 1995},
		{ID: 2, Title: "Jumanji", Year: 1995},
		{ID: 3, Title: "Heat", Year: 1995},
		{ID: 4, Title: "Heat", Year: 1995},
		{ID: 5, Title: "Toy Story 2", Year: 1999},
		{ID: 6, Title: "Matrix, The", Year: 1999},
		{ID: 7, Title: "Sabrina", Year: 1995},
		{ID: 8, Title: "Lost Tapes", Year: 0},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	idx := Build(testItems())

	tests := []struct {
		name      string
		title     string
		year      int
		wantID    int
		wantMatch Match
	}{
		{"exact", "Toy Story", 1995, 1, MatchExact},
		{"exact case and space insensitive", "  toy STORY ", 1995, 1, MatchExact},
		{"exact with year suffix in query", "Toy Story (1995)", 1995, 1, MatchExact},
		{"wrong year", "Toy Story", 1996, 0, MatchNone},
		{"ambiguous exact falls back to first fuzzy", "Heat", 1995, 3, MatchFuzzy},
		{"query contained in catalog title", "Jumanj", 1995, 2, MatchFuzzy},
		{"catalog title contained in query", "Toy Story 2: Special Edition", 1999, 5, MatchFuzzy},
		{"fuzzy respects load order", "a", 1995, 2, MatchFuzzy},
		{"unknown year entries", "Lost Tapes", 0, 8, MatchExact},
		{"no match", "Casablanca", 1942, 0, MatchNone},
		{"empty query", "   ", 1995, 0, MatchNone},
		{"year only query", "(1995)", 1995, 0, MatchNone},
		{"article not folded by default", "The Matrix", 1999, 0, MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, match := idx.Resolve(tt.title, tt.year)
			if id != tt.wantID || match != tt.wantMatch {
				t.Errorf("Resolve(%q, %d) = (%d, %v), want (%d, %v)",
					tt.title, tt.year, id, match, tt.wantID, tt.wantMatch)
			}
		})
	}
}

func TestResolve_ArticleFolding(t *testing.T) {
	t.Parallel()

	idx := Build(testItems(), WithArticleFolding())

	for _, q := range []string{"The Matrix", "Matrix, The", "the matrix (1999)"} {
		id, match := idx.Resolve(q, 1999)
		if id != 6 || match != MatchExact {
			t.Errorf("Resolve(%q) = (%d, %v), want (6, exact)", q, id, match)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	items := testItems()
	a := Build(items)
	b := Build(items)

	for _, item := range items {
		idA, mA := a.Resolve(item.Title, item.Year)
		idB, mB := b.Resolve(item.Title, item.Year)
		if idA != idB || mA != mB {
			t.Errorf("non-deterministic resolution for %q", item.Title)
		}
	}
}

func TestBuild_CopiesInput(t *testing.T) {
	t.Parallel()

	items := testItems()
	idx := Build(items)
	items[0].Title = "Mutated"

	got, ok := idx.Lookup(1)
	if !ok || got.Title != "Toy Story" {
		t.Errorf("index must not alias caller slice, got %+v", got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	idx := Build(append(testItems(), Item{ID: 1, Title: "Duplicate", Year: 2001}))

	item, ok := idx.Lookup(1)
	if !ok {
		t.Fatal("expected id 1 to be found")
	}
	if item.Title != "Toy Story" || item.Year != 1995 {
		t.Errorf("Lookup(1) = %+v, want first occurrence", item)
	}
	if id, m := idx.Resolve("Duplicate", 2001); m != MatchNone {
		t.Errorf("Resolve(Duplicate) = (%d, %v), repeated id must not resolve", id, m)
	}
	if _, ok := idx.Lookup(999); ok {
		t.Error("expected unknown id to be absent")
	}
	if idx.Len() != 8 {
		t.Errorf("Len() = %d, want 8", idx.Len())
	}
}

func TestResolve_ConcurrentReads(t *testing.T) {
	t.Parallel()

	idx := Build(testItems())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if id, m := idx.Resolve("Toy Story", 1995); id != 1 || m != MatchExact {
					t.Errorf("concurrent Resolve = (%d, %v)", id, m)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMatchString(t *testing.T) {
	t.Parallel()

	tests := map[Match]string{
		MatchNone:  "none",
		MatchExact: "exact",
		MatchFuzzy: "fuzzy",
		Match(42):  "none",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Match(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
