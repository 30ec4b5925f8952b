// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/validation"
)

// defaultTitlesPageSize is the page size for GET /titles without q or limit.
const defaultTitlesPageSize = 50

// Corpus handles GET /api/v1/corpus.
func (h *Handler) Corpus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}
	rw.Success(svc.Stats())
}

// Facets handles GET /api/v1/facets.
func (h *Handler) Facets(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}
	rw.Success(svc.Facets())
}

// Titles handles GET /api/v1/titles.
//
// With q it returns up to limit autocomplete suggestions for the prefix.
// Without q it returns one page of the sorted title list with pagination
// metadata.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}

	values := r.URL.Query()
	req := TitlesRequest{Q: values.Get("q")}

	defaultLimit := defaultTitlesPageSize
	if req.Q != "" {
		defaultLimit = h.config.Recommend.SuggestLimit
	}
	var verr *validation.RequestValidationError
	if req.Limit, verr = intParam(values, "limit", defaultLimit); verr != nil {
		rw.RequestValidationError(verr)
		return
	}
	if req.Offset, verr = intParam(values, "offset", 0); verr != nil {
		rw.RequestValidationError(verr)
		return
	}
	if verr = validation.ValidateStruct(&req); verr != nil {
		rw.RequestValidationError(verr)
		return
	}

	if req.Q != "" {
		rw.Success(svc.Suggest(req.Q, req.Limit))
		return
	}

	page, total := svc.Titles(req.Offset, req.Limit)
	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   total,
		Count:   len(page),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: req.Offset+len(page) < total,
	})
}

// Media handles GET /api/v1/media/{id}.
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}

	id := chi.URLParam(r, "id")
	rec, ok := svc.Lookup(id)
	if !ok {
		logging.Ctx(r.Context()).Debug().Str("id", sanitizeLogValue(id)).Msg("Media not found")
		rw.NotFound("No media with id " + id)
		return
	}
	rw.Success(rec)
}
