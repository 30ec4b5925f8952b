// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache type labels.
const (
	CacheTypeRecommend = "recommend"
)

// Recommendation outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeCached   = "cached"
	OutcomeError    = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rank_duration_seconds",
			Help:    "Time spent ranking the corpus for one query",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_queries_total",
			Help: "Total recommendation queries by outcome",
		},
		[]string{"outcome"}, // found, not_found, cached, error
	)

	RecommendCandidatesRetained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_candidates_retained_total",
			Help: "Ranked candidates kept by the filter chain",
		},
	)

	RecommendCandidatesExcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_excluded_total",
			Help: "Ranked candidates rejected by the filter chain, by failing predicate",
		},
		[]string{"predicate"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Corpus Metrics
	CorpusRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_records",
			Help: "Number of media records in the loaded corpus",
		},
	)

	CorpusDimension = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_embedding_dimension",
			Help: "Width of the loaded embedding matrix",
		},
	)

	CorpusLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_load_duration_seconds",
			Help: "Time spent loading both corpus artifacts at startup",
		},
	)

	CorpusLoadedTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_loaded_timestamp_seconds",
			Help: "Unix timestamp of the last successful corpus load",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one ranked-and-filtered query.
// excluded maps each failing predicate name to the number of candidates it rejected.
func RecordRecommendation(outcome string, duration time.Duration, retained int, excluded map[string]int) {
	RecommendQueries.WithLabelValues(outcome).Inc()
	if outcome == OutcomeCached || outcome == OutcomeError {
		return
	}
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidatesRetained.Add(float64(retained))
	for predicate, n := range excluded {
		RecommendCandidatesExcluded.WithLabelValues(predicate).Add(float64(n))
	}
}

// RecordCacheLookup records a cache hit or miss
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheSize sets the cache size gauge and adds expired evictions
func UpdateCacheSize(cacheType string, size, expired int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
	if expired > 0 {
		CacheEvictions.WithLabelValues(cacheType).Add(float64(expired))
	}
}

// RecordCorpusLoad records the shape and timing of a successful corpus load
func RecordCorpusLoad(records, dimension int, duration time.Duration, loadedAt time.Time) {
	CorpusRecords.Set(float64(records))
	CorpusDimension.Set(float64(dimension))
	CorpusLoadDuration.Set(duration.Seconds())
	CorpusLoadedTimestamp.Set(float64(loadedAt.Unix()))
}
