// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package api provides the HTTP API for the recommendation service.

Routes are served by a chi router built in SetupChi:

	GET  /api/v1/health/live       liveness
	GET  /api/v1/health/ready      503 until a service is attached
	GET  /api/v1/corpus            corpus and cache statistics
	GET  /api/v1/facets            filter option lists
	GET  /api/v1/titles            autocomplete (q) or a page of titles
	GET  /api/v1/media/{id}        one record
	GET  /api/v1/recommendations   rank and filter from query parameters
	POST /api/v1/recommendations   rank and filter from a JSON body
	GET  /metrics                  Prometheus exposition

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "k must be at most 20"}, "meta": {...}}

Readiness:

The Handler is created before the corpus loads. Until AttachService is
called, /health/ready and every data endpoint answer 503
SERVICE_UNAVAILABLE. Attachment is an atomic pointer swap, so it can happen
while the server is already accepting connections.

Recommendation queries:

Multi-value filters (type, country, genres, tags) accept comma separated
values, repeated parameters, or both. An unknown title is not an error: the
response is 200 with found false and an empty recommendations list.
Malformed numbers, k outside 1..max_k, year_from after year_to and unknown
rating ceilings are 400 VALIDATION_FAILED.

Each query runs under context.WithTimeout(r.Context(), recommend.query_timeout);
a query that exceeds it is 503 TIMEOUT.

Middleware:

  - RequestIDWithLogging: chi RequestID plus logging request/correlation IDs
  - chi RealIP, Recoverer, Timeout, Compress
  - go-chi/cors with configured origins
  - go-chi/httprate per-IP limits on data endpoints, counted in
    api_rate_limit_hits_total
  - middleware.PrometheusMetrics labelled by route pattern
*/
package api
