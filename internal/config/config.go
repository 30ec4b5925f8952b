// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
//
// Environment Variables:
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 8501)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
//   - ENVIRONMENT: development, staging or production (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CorpusConfig locates the two startup artifacts.
//
// Environment Variables:
//   - RECORDS_PATH: metadata records (.json, .jsonl, .ndjson, .csv, .parquet)
//   - EMBEDDINGS_PATH: embedding matrix (.json, .npy, .parquet)
//   - EMBEDDING_COLUMN: list column holding vectors in a Parquet file (default: embedding)
//   - PLACEHOLDER_COVER: cover URL used when a record has none
type CorpusConfig struct {
	RecordsPath      string `koanf:"records_path"`
	EmbeddingsPath   string `koanf:"embeddings_path"`
	EmbeddingColumn  string `koanf:"embedding_column"`
	PlaceholderCover string `koanf:"placeholder_cover"`
}

// RecommendConfig tunes query handling.
//
// Environment Variables:
//   - DEFAULT_K: results returned when a query omits k (default: 5)
//   - MAX_K: upper bound accepted for k (default: 20)
//   - EXACT_FACET_MATCH: genre/tag filters require element equality instead of substring (default: false)
//   - QUERY_TIMEOUT: per-request deadline for ranking (default: 5s)
//   - CACHE_SIZE: response cache entries, 0 disables caching (default: 1024)
//   - CACHE_TTL: response cache entry lifetime (default: 5m)
//   - CACHE_CLEANUP_INTERVAL: how often expired entries are purged (default: 1m)
//   - SUGGEST_LIMIT: default number of autocomplete suggestions (default: 10)
type RecommendConfig struct {
	DefaultK             int           `koanf:"default_k"`
	MaxK                 int           `koanf:"max_k"`
	ExactFacetMatch      bool          `koanf:"exact_facet_match"`
	QueryTimeout         time.Duration `koanf:"query_timeout"`
	CacheSize            int           `koanf:"cache_size"`
	CacheTTL             time.Duration `koanf:"cache_ttl"`
	CacheCleanupInterval time.Duration `koanf:"cache_cleanup_interval"`
	SuggestLimit         int           `koanf:"suggest_limit"`
}

// CacheEnabled reports whether the response cache is on.
func (r RecommendConfig) CacheEnabled() bool {
	return r.CacheSize > 0
}

// SecurityConfig holds request throttling and CORS settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: requests allowed per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: window length (default: 1m)
//   - DISABLE_RATE_LIMIT: turn throttling off (default: false)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is the production format; console is human-readable for development.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
