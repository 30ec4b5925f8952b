// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package middleware provides HTTP instrumentation middleware.

PrometheusMetrics records api_requests_total, api_request_duration_seconds
and api_active_requests for every request it wraps. It is written as an
http.HandlerFunc decorator; the api router adapts it for chi's r.Use:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Endpoints are labelled by chi route pattern rather than raw path, so
/api/v1/media/{id} is a single series regardless of how many ids are
requested. Requests that match no route are labelled "unmatched".

See Also:

  - internal/metrics: Prometheus metric definitions
  - internal/api: router and the rest of the middleware stack
*/
package middleware
