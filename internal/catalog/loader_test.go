// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, strings.Join([]string{
		"movieId,title,genres",
		"1,Toy Story (1995),Adventure|Animation",
		`11,"American President, The (1995)",Comedy|Drama`,
		"2,Jumanji (1995),Adventure",
		"99,Untitled Project,Drama",
		"",
	}, "\n"))

	items, err := LoadCSV(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	want := []Item{
		{ID: 1, Title: "Toy Story", Year: 1995},
		{ID: 11, Title: "American President, The", Year: 1995},
		{ID: 2, Title: "Jumanji", Year: 1995},
		{ID: 99, Title: "Untitled Project", Year: 0},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}

	idx := Build(items)
	if id, m := idx.Resolve("Toy Story", 1995); id != 1 || m != MatchExact {
		t.Errorf("Resolve after load = (%d, %v), want (1, exact)", id, m)
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
		wantMsg string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.csv")
			},
			wantErr: fs.ErrNotExist,
		},
		{
			name: "missing title column",
			path: func(t *testing.T) string {
				return writeCSV(t, "movieId,name\n1,Toy Story (1995)\n")
			},
			wantMsg: `missing column "title"`,
		},
		{
			name: "no usable rows",
			path: func(t *testing.T) string {
				return writeCSV(t, "movieId,title\n,Toy Story (1995)\n")
			},
			wantErr: ErrEmptyCatalog,
		},
		{
			name: "non-integer id",
			path: func(t *testing.T) string {
				return writeCSV(t, "movieId,title\n1,Toy Story (1995)\nabc,Jumanji (1995)\n")
			},
			wantErr: ErrInvalidID,
			wantMsg: `line 3: invalid item id "abc"`,
		},
		{
			name: "repeated id",
			path: func(t *testing.T) string {
				return writeCSV(t, "movieId,title\n1,Toy Story (1995)\n2,Jumanji (1995)\n1,Heat (1995)\n")
			},
			wantErr: ErrDuplicateID,
			wantMsg: "line 4: duplicate item id 1, first seen on line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := tt.path(t)
			_, err := LoadCSV(context.Background(), path)
			if err == nil {
				t.Fatal("expected error")
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T: %v", err, err)
			}
			if loadErr.Path != path {
				t.Errorf("LoadError.Path = %q, want %q", loadErr.Path, path)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected errors.Is(%v), got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
