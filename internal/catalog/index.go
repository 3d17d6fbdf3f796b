// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

// Package catalog resolves free-text (title, year) pairs to catalog item ids.
//
// An Index is built once from the loaded catalog and is read-only afterwards,
// so it can be shared by any number of goroutines without locking.
//
// Resolution is a three-way outcome:
//
//	id, match := idx.Resolve("Toy Story", 1995)
//	switch match {
//	case catalog.MatchExact: // unique (title, year) hit
//	case catalog.MatchFuzzy: // first same-year substring hit, in load order
//	case catalog.MatchNone:  // unresolved, caller drops the rating
//	}
package catalog

import "strings"

// Item is one catalog entry.
type Item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Year is the release year, 0 when unknown.
	Year int `json:"year,omitempty"`
}

// Match describes how a query was resolved.
type Match int

const (
	MatchNone Match = iota
	MatchExact
	MatchFuzzy
)

// String returns the lowercase match name used in logs, metrics and JSON.
func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Option configures Build.
type Option func(*options)

type options struct {
	foldArticles bool
}

// WithArticleFolding treats "Matrix, The" and "The Matrix" as the same title
// on both the catalog and the query side.
func WithArticleFolding() Option {
	return func(o *options) {
		o.foldArticles = true
	}
}

type titleKey struct {
	title string
	year  int
}

// Index is an immutable lookup structure over a catalog.
type Index struct {
	opts  options
	items []Item
	// norm[i] is the normalized title of items[i].
	norm   []string
	byID   map[int]int
	exact  map[titleKey][]int
	byYear map[int][]int
}

// Build indexes items in the given order. Load order is significant: it
// decides which entry wins a fuzzy tie. A row repeating an earlier id is
// dropped so that a resolved id always names the title it matched;
// LoadCSV rejects such catalogs outright.
func Build(items []Item, opts ...Option) *Index {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		opts:   o,
		items:  make([]Item, 0, len(items)),
		norm:   make([]string, 0, len(items)),
		byID:   make(map[int]int, len(items)),
		exact:  make(map[titleKey][]int, len(items)),
		byYear: make(map[int][]int),
	}
	for _, item := range items {
		if _, dup := idx.byID[item.ID]; dup {
			continue
		}
		i := len(idx.items)
		n := normalizeTitle(item.Title, o.foldArticles)
		idx.items = append(idx.items, item)
		idx.norm = append(idx.norm, n)
		idx.byID[item.ID] = i

		key := titleKey{title: n, year: item.Year}
		idx.exact[key] = append(idx.exact[key], i)
		idx.byYear[item.Year] = append(idx.byYear[item.Year], i)
	}

	return idx
}

// Resolve maps a free-text title and year to an item id.
//
// An exact hit requires exactly one catalog entry with the same normalized
// title and year. Otherwise the first same-year entry, in load order, whose
// normalized title contains the query or is contained by it is returned as a
// fuzzy hit. An empty normalized query never resolves.
func (idx *Index) Resolve(title string, year int) (int, Match) {
	q := normalizeTitle(title, idx.opts.foldArticles)
	if q == "" {
		return 0, MatchNone
	}

	if hits := idx.exact[titleKey{title: q, year: year}]; len(hits) == 1 {
		return idx.items[hits[0]].ID, MatchExact
	}

	for _, i := range idx.byYear[year] {
		candidate := idx.norm[i]
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, q) || strings.Contains(q, candidate) {
			return idx.items[i].ID, MatchFuzzy
		}
	}

	return 0, MatchNone
}

// Lookup returns the catalog entry for id.
func (idx *Index) Lookup(id int) (Item, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return Item{}, false
	}
	return idx.items[i], true
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int {
	return len(idx.items)
}
