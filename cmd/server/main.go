// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelfold/internal/api"
	"github.com/tomtom215/reelfold/internal/config"
	"github.com/tomtom215/reelfold/internal/logging"
	"github.com/tomtom215/reelfold/internal/recommend"
	"github.com/tomtom215/reelfold/internal/supervisor"
	"github.com/tomtom215/reelfold/internal/supervisor/services"
)

const (
	shutdownTimeout    = 10 * time.Second
	cacheSweepInterval = time.Minute
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Config not loaded yet, so this uses the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LoggingSettings())
	logging.Info().Msg("Starting reelfold")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS for production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	idx, store, err := loadArtifacts(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog or factor model")
	}

	svc, err := recommend.NewService(idx, store, cfg.RecommendConfig(), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation service")
	}
	lo, hi := svc.RatingRange()
	logging.Info().
		Float64("rating_min", lo).
		Float64("rating_max", hi).
		Bool("cache_enabled", cfg.Recommend.CacheEnabled).
		Msg("Recommendation service ready")

	// Supervisor events go through the slog bridge into zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(svc, api.WithRequestTimeout(min(api.DefaultRequestTimeout, cfg.Server.Timeout)))
	chiMW := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, addr, shutdownTimeout, logging.WithComponent("http")))
	if cfg.Recommend.CacheEnabled {
		tree.AddMaintenanceService(services.NewCacheJanitorService(svc, cacheSweepInterval, logging.WithComponent("cache")))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("reelfold stopped")
}
