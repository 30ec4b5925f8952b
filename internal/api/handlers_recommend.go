// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/validation"
)

// maxRecommendBodyBytes caps POST /recommendations bodies.
const maxRecommendBodyBytes = 64 << 10

// RecommendGet handles GET /api/v1/recommendations.
//
// Query parameters:
//   - title (required), k
//   - type, country, genres, tags: comma separated and/or repeated
//   - min_score, year_from, year_to, max_rating
//   - explain: include per-candidate exclusion reasons
func (h *Handler) RecommendGet(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}

	req, verr := parseRecommendQuery(r.URL.Query())
	if verr != nil {
		rw.RequestValidationError(verr)
		return
	}
	h.recommend(rw, r, svc, req)
}

// RecommendPost handles POST /api/v1/recommendations with a JSON
// RecommendRequest body.
func (h *Handler) RecommendPost(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := h.requireService(rw)
	if svc == nil {
		return
	}

	var req RecommendRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRecommendBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Invalid recommendation body")
		rw.BadRequest("Request body must be a JSON recommendation query")
		return
	}
	h.recommend(rw, r, svc, &req)
}

func (h *Handler) recommend(rw *ResponseWriter, r *http.Request, svc Recommender, req *RecommendRequest) {
	if verr := h.validateRecommendRequest(req); verr != nil {
		rw.RequestValidationError(verr)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	result, err := svc.Recommend(ctx, req.Query())
	if err != nil {
		respondRecommendError(ctx, rw, err)
		return
	}

	if !result.Found {
		logging.Ctx(ctx).Info().Str("title", sanitizeLogValue(req.Title)).Msg("Title not in corpus")
	}
	rw.Success(result)
}

// validateRecommendRequest applies struct tags, then the bounds that
// depend on configuration or span fields.
func (h *Handler) validateRecommendRequest(req *RecommendRequest) *validation.RequestValidationError {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr
	}

	maxK := h.config.Recommend.MaxK
	if req.K != nil && *req.K > maxK {
		return validation.NewRequestValidationError("k", "max",
			fmt.Sprintf("k must be at most %d", maxK), *req.K)
	}
	if req.YearFrom != nil && req.YearTo != nil && *req.YearFrom > *req.YearTo {
		return validation.NewRequestValidationError("year_from", "ltefield",
			"year_from must not be after year_to", *req.YearFrom)
	}
	return nil
}

// parseRecommendQuery reads a RecommendRequest from GET query parameters.
// Only malformed values are rejected here; ranges are left to validation.
func parseRecommendQuery(values url.Values) (*RecommendRequest, *validation.RequestValidationError) {
	req := &RecommendRequest{
		Title:     values.Get("title"),
		Types:     multiValueParam(values, "type"),
		Countries: multiValueParam(values, "country"),
		Genres:    multiValueParam(values, "genres"),
		Tags:      multiValueParam(values, "tags"),
		MaxRating: values.Get("max_rating"),
	}

	var verr *validation.RequestValidationError
	if req.K, verr = optionalIntParam(values, "k"); verr != nil {
		return nil, verr
	}
	if req.MinScore, verr = optionalFloatParam(values, "min_score"); verr != nil {
		return nil, verr
	}
	if req.YearFrom, verr = optionalIntParam(values, "year_from"); verr != nil {
		return nil, verr
	}
	if req.YearTo, verr = optionalIntParam(values, "year_to"); verr != nil {
		return nil, verr
	}
	if req.Explain, verr = boolParam(values, "explain"); verr != nil {
		return nil, verr
	}
	return req, nil
}
