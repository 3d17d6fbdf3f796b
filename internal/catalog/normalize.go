// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// trailingYear matches a "(YYYY)" suffix with surrounding whitespace.
	trailingYear = regexp.MustCompile(`\s*\(\d{4}\)\s*$`)

	// anyYear matches a "(YYYY)" group anywhere in a title.
	anyYear = regexp.MustCompile(`\((\d{4})\)`)
)

// trailingArticles are the catalog suffix forms rewritten by article folding,
// e.g. "Matrix, The" -> "the matrix".
var trailingArticles = []string{"the", "a", "an"}

// normalizeTitle lowercases and trims title and strips a trailing year.
func normalizeTitle(title string, foldArticles bool) string {
	n := strings.ToLower(title)
	n = trailingYear.ReplaceAllString(n, "")
	n = strings.TrimSpace(n)
	if foldArticles {
		n = foldArticle(n)
	}
	return n
}

// foldArticle rewrites "x, the" as "the x". Input must already be lowercase.
func foldArticle(title string) string {
	for _, article := range trailingArticles {
		suffix := ", " + article
		if strings.HasSuffix(title, suffix) {
			return article + " " + strings.TrimSpace(strings.TrimSuffix(title, suffix))
		}
	}
	return title
}

// ParseTitleYear splits a catalog title such as "Toy Story (1995)" into its
// display title and release year. Year is 0 when the title carries none.
// When several "(YYYY)" groups appear, the first one is the year, matching
// how the training pipeline labelled the catalog.
func ParseTitleYear(raw string) (title string, year int) {
	title = strings.TrimSpace(raw)

	if m := anyYear.FindStringSubmatch(title); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			year = y
		}
	}

	title = strings.TrimSpace(trailingYear.ReplaceAllString(title, ""))
	return title, year
}
