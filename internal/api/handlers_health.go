// Reelfold - Movie Recommendations from Pretrained Rating Factors
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelfold

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 as long as the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 only when a catalog and a model with items are loaded,
// 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	var catalogItems, modelItems int
	if h.service != nil {
		info := h.service.ModelInfo()
		catalogItems, modelItems = info.CatalogItems, info.Items
	}
	ready := catalogItems > 0 && modelItems > 0

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).SuccessStatus(status, map[string]interface{}{
		"ready":         ready,
		"catalog_items": catalogItems,
		"model_items":   modelItems,
		"uptime":        time.Since(h.startTime).Seconds(),
	})
}
