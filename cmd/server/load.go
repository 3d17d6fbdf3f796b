// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package main

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelfold/internal/catalog"
	"github.com/tomtom215/reelfold/internal/config"
	"github.com/tomtom215/reelfold/internal/factors"
	"github.com/tomtom215/reelfold/internal/logging"
	"github.com/tomtom215/reelfold/internal/metrics"
)

// Artifact labels for ModelLoadDuration.
const (
	artifactCatalog = "catalog"
	artifactModel   = "factors"
)

// loadArtifacts reads the catalog and the factor model concurrently. The
// first failure cancels the other load.
func loadArtifacts(ctx context.Context, cfg *config.Config) (*catalog.Index, *factors.Store, error) {
	var (
		idx   *catalog.Index
		store *factors.Store
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		items, err := catalog.LoadCSV(gctx, cfg.Catalog.Path)
		if err != nil {
			return err
		}

		var opts []catalog.Option
		if cfg.Catalog.FoldArticles {
			opts = append(opts, catalog.WithArticleFolding())
		}
		idx = catalog.Build(items, opts...)

		elapsed := time.Since(start)
		metrics.RecordArtifactLoad(artifactCatalog, elapsed)
		logging.Info().
			Str("path", cfg.Catalog.Path).
			Int("items", idx.Len()).
			Bool("fold_articles", cfg.Catalog.FoldArticles).
			Dur("duration", elapsed).
			Msg("Catalog loaded")
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		s, err := factors.LoadFile(cfg.Model.ArtifactPath)
		if err != nil {
			return err
		}
		store = s

		elapsed := time.Since(start)
		metrics.RecordArtifactLoad(artifactModel, elapsed)
		logging.Info().
			Str("path", cfg.Model.ArtifactPath).
			Int("items", s.Len()).
			Int("factors", s.Dim()).
			Float64("regularization", s.Regularization()).
			Dur("duration", elapsed).
			Msg("Factor model loaded")
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	metrics.SetModelInfo(idx.Len(), store.Len(), store.Dim())
	return idx, store, nil
}
