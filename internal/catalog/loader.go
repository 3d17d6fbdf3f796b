// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	// DuckDB driver - reads the catalog CSV through read_csv
	_ "github.com/duckdb/duckdb-go/v2"
)

// Required catalog CSV columns (MovieLens movies.csv layout).
const (
	ColumnID    = "movieId"
	ColumnTitle = "title"
)

var (
	// ErrEmptyCatalog is returned when the catalog source holds no rows.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidID marks a row whose id is present but not an integer.
	ErrInvalidID = errors.New("invalid item id")

	// ErrDuplicateID marks a second row carrying an id already loaded.
	ErrDuplicateID = errors.New("duplicate item id")
)

// LoadError reports a catalog that could not be read. It is fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("catalog: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadCSV reads a movieId,title[,genres,...] CSV in file order. Titles carry
// their release year as a "(YYYY)" suffix, which is split into Item.Year.
// Rows with an empty id or title are skipped. An id that is not an integer
// or repeats an earlier row fails the load, naming the CSV line.
func LoadCSV(ctx context.Context, path string) ([]Item, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open duckdb: %w", err)}
	}
	defer db.Close() //nolint:errcheck // in-memory database, nothing to flush

	source := fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoteLiteral(path))

	if err := verifyColumns(ctx, db, source); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	query := fmt.Sprintf(
		"SELECT %[1]s, TRY_CAST(%[1]s AS BIGINT), %[2]s FROM %[3]s",
		quoteIdent(ColumnID), quoteIdent(ColumnTitle), source,
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("query catalog: %w", err)}
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var items []Item
	seen := make(map[int]int)
	// Line 1 is the header.
	for line := 2; rows.Next(); line++ {
		var (
			raw   sql.NullString
			id    sql.NullInt64
			title sql.NullString
		)
		if err := rows.Scan(&raw, &id, &title); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("scan row: %w", err)}
		}
		if !raw.Valid || !title.Valid {
			continue
		}
		if !id.Valid {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %w %q", line, ErrInvalidID, raw.String)}
		}
		itemID := int(id.Int64)
		if first, dup := seen[itemID]; dup {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %w %d, first seen on line %d", line, ErrDuplicateID, itemID, first)}
		}
		seen[itemID] = line

		name, year := ParseTitleYear(title.String)
		items = append(items, Item{ID: itemID, Title: name, Year: year})
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("iterate rows: %w", err)}
	}

	if len(items) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptyCatalog}
	}
	return items, nil
}

// verifyColumns checks the CSV header carries the id and title columns.
func verifyColumns(ctx context.Context, db *sql.DB, source string) error {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}
	for _, required := range []string{ColumnID, ColumnTitle} {
		if !have[required] {
			return fmt.Errorf("missing column %q", required)
		}
	}
	return nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
