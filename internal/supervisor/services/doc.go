// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

/*
Package services provides suture.Service wrappers for reelfold components.

Each wrapper turns a component's lifecycle into suture's context-aware
Serve(ctx) error and implements fmt.Stringer so supervisor events name it.

HTTPServerService runs the API server. Context cancellation triggers
http.Server.Shutdown with a bounded drain timeout; a listener failure is
returned so the supervisor restarts the server with backoff.

CacheJanitorService sweeps expired entries from the recommendation result
cache on a fixed interval.

	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 10*time.Second, logger))
	tree.AddMaintenanceService(services.NewCacheJanitorService(svc, time.Minute, logger))
*/
package services
