// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/mediarec/internal/config"
	"github.com/tomtom215/mediarec/internal/corpus"
	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/recommend"
)

// Recommender is the recommendation service as seen by the handlers.
// *recommend.Service implements it.
type Recommender interface {
	Recommend(ctx context.Context, q recommend.Query) (*recommend.Result, error)
	Facets() *recommend.Facets
	Suggest(prefix string, limit int) []recommend.Suggestion
	Titles(offset, limit int) ([]string, int)
	Lookup(id string) (corpus.MediaRecord, bool)
	Stats() recommend.Stats
}

var _ Recommender = (*recommend.Service)(nil)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, service attachment (this file)
//   - handlers_helpers.go: shared parsing and error helpers
//   - handlers_health.go: liveness and readiness endpoints
//   - handlers_catalog.go: corpus stats, facets, titles, media lookup
//   - handlers_recommend.go: recommendation queries
type Handler struct {
	config    *config.Config
	service   atomic.Pointer[serviceRef]
	startTime time.Time
}

// serviceRef boxes the interface so it can live in an atomic.Pointer.
type serviceRef struct {
	Recommender
}

// NewHandler creates a Handler. Data endpoints answer 503 until a service
// is attached with AttachService.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config:    cfg,
		startTime: time.Now(),
	}
}

// AttachService makes svc available to the data endpoints and flips the
// readiness endpoint to ready. It is safe to call while serving.
func (h *Handler) AttachService(svc Recommender) error {
	if svc == nil {
		return ErrNilService
	}
	h.service.Store(&serviceRef{svc})
	logging.Info().Msg("Recommendation service attached, API ready")
	return nil
}

// requireService returns the attached service, or writes a 503 and
// returns nil.
func (h *Handler) requireService(rw *ResponseWriter) Recommender {
	ref := h.service.Load()
	if ref == nil {
		rw.ServiceUnavailable("Corpus is still loading")
		return nil
	}
	return ref.Recommender
}

// queryContext bounds request work by the configured query timeout.
func (h *Handler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.config.Recommend.QueryTimeout)
}
