// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics by the API router.

# Metrics Endpoint

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommend_rank_duration_seconds: Ranking latency per query (histogram)
  - recommend_queries_total: Queries by outcome (counter)
    Labels: outcome (found, not_found, cached, error)
  - recommend_candidates_retained_total: Candidates kept by filters (counter)
  - recommend_candidates_excluded_total: Candidates rejected (counter)
    Labels: predicate (type, country, genre, tag, score, year, rating)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Response cache lookups (counter)
    Labels: cache_type
  - cache_entries: Current cache size (gauge)
  - cache_evictions_total: TTL and capacity evictions (counter)

Corpus Metrics:
  - corpus_records: Loaded media records (gauge)
  - corpus_embedding_dimension: Embedding width (gauge)
  - corpus_load_duration_seconds: Startup load time (gauge)
  - corpus_loaded_timestamp_seconds: Unix time of the load (gauge)

# Usage Example

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, pattern, strconv.Itoa(status), time.Since(start))

	metrics.RecordRecommendation(metrics.OutcomeFound, rankTime, len(kept), excludedByPredicate)

# Cardinality Management

Endpoint labels use chi route patterns (for example /api/v1/media/{id}), never
raw paths, so per-id URLs do not create new series. Predicate and outcome
labels are closed sets.

# Thread Safety

All Prometheus collectors are safe for concurrent use.

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/recommend: recommendation and cache metrics
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
