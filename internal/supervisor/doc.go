// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package supervisor runs reelfold's long-lived services under suture v4.

# Tree

	reelfold
	├── maintenance-layer
	│   └── CacheJanitorService (when the result cache is enabled)
	└── api-layer
	    └── HTTPServerService

Crashed services restart with backoff once FailureThreshold failures
accumulate; failures decay at FailureDecay per second. Supervisor events are
logged through sutureslog, which takes the *slog.Logger produced by
logging.NewSlogLogger so they land in the same zerolog stream as everything
else.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped with error")
	}

Services live in the services subpackage.
*/
package supervisor
