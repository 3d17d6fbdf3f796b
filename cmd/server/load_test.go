// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/config"
	"github.com/tomtom215/reelfold/internal/factors"
)

const testCatalogCSV = `movieId,title,genres
1,"Matrix, The (1999)",Action|Sci-Fi
2,Heat (1995),Crime
3,Unreleased Project,Drama
`

const testModelJSON = `{"version":1,"global_mean":3.5,"regularization":0.1,
"rating_scale":{"lo":0.5,"hi":5},"factors":2,
"items":[{"id":1,"bias":0.2,"factor":[0.5,0.1]},{"id":2,"bias":-0.1,"factor":[0.0,0.4]}]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Catalog: config.CatalogConfig{Path: writeFile(t, dir, "movies.csv", testCatalogCSV)},
		Model:   config.ModelConfig{ArtifactPath: writeFile(t, dir, "model.json", testModelJSON)},
	}
}

func TestLoadArtifacts(t *testing.T) {
	cfg := testConfig(t)

	idx, store, err := loadArtifacts(context.Background(), cfg)
	if err != nil {
		t.Fatalf("loadArtifacts: %v", err)
	}
	if idx.Len() != 3 {
		t.Errorf("catalog items = %d, want 3", idx.Len())
	}
	if store.Len() != 2 || store.Dim() != 2 {
		t.Errorf("model = %d items × %d factors, want 2 × 2", store.Len(), store.Dim())
	}

	if _, m := idx.Resolve("The Matrix", 1999); m != catalog.MatchNone && m != catalog.MatchFuzzy {
		t.Errorf("without folding, %q should not match exactly, got %v", "The Matrix", m)
	}
}

func TestLoadArtifacts_ArticleFolding(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.FoldArticles = true

	idx, _, err := loadArtifacts(context.Background(), cfg)
	if err != nil {
		t.Fatalf("loadArtifacts: %v", err)
	}
	if id, m := idx.Resolve("The Matrix", 1999); id != 1 || m != catalog.MatchExact {
		t.Errorf("Resolve(The Matrix) = (%d, %v), want (1, exact)", id, m)
	}
}

func TestLoadArtifacts_Errors(t *testing.T) {
	t.Run("missing catalog", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.csv")

		_, _, err := loadArtifacts(context.Background(), cfg)
		var loadErr *catalog.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *catalog.LoadError, got %T: %v", err, err)
		}
	})

	t.Run("corrupt model", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Model.ArtifactPath = writeFile(t, t.TempDir(), "model.json", `{"version":1,"factors":2,"items":[]}`)

		_, _, err := loadArtifacts(context.Background(), cfg)
		var loadErr *factors.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *factors.LoadError, got %T: %v", err, err)
		}
		if !errors.Is(err, factors.ErrInvalidModel) {
			t.Errorf("expected ErrInvalidModel, got %v", err)
		}
	})
}
