// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"net/http"
	"time"
)

// LiveStatus is the liveness check payload.
type LiveStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadyStatus is the readiness check payload.
type ReadyStatus struct {
	Ready     bool      `json:"ready"`
	Records   int       `json:"records"`
	Dimension int       `json:"dimension"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// HealthLive handles GET /api/v1/health/live.
// Returns 200 if the process is alive, regardless of corpus state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready.
// Returns 200 once the corpus is loaded and the service attached, 503 before.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}

	stats := svc.Stats()
	rw.Success(ReadyStatus{
		Ready:     true,
		Records:   stats.Records,
		Dimension: stats.Dimension,
		LoadedAt:  stats.LoadedAt,
	})
}
