// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "qa" },
			wantErr: "ENVIRONMENT",
		},
		{
			name:   "environment is case-insensitive",
			mutate: func(c *Config) { c.Server.Environment = "Production" },
		},
		{
			name:    "missing records path",
			mutate:  func(c *Config) { c.Corpus.RecordsPath = " " },
			wantErr: "RECORDS_PATH",
		},
		{
			name:    "missing embeddings path",
			mutate:  func(c *Config) { c.Corpus.EmbeddingsPath = "" },
			wantErr: "EMBEDDINGS_PATH",
		},
		{
			name:    "default_k above max_k",
			mutate:  func(c *Config) { c.Recommend.DefaultK = 21 },
			wantErr: "DEFAULT_K",
		},
		{
			name:   "default_k equal to max_k",
			mutate: func(c *Config) { c.Recommend.DefaultK = 20 },
		},
		{
			name:    "max_k zero",
			mutate:  func(c *Config) { c.Recommend.MaxK = 0 },
			wantErr: "MAX_K",
		},
		{
			name:    "negative cache size",
			mutate:  func(c *Config) { c.Recommend.CacheSize = -1 },
			wantErr: "CACHE_SIZE",
		},
		{
			name:    "zero ttl with cache on",
			mutate:  func(c *Config) { c.Recommend.CacheTTL = 0 },
			wantErr: "CACHE_TTL",
		},
		{
			name: "zero ttl with cache off",
			mutate: func(c *Config) {
				c.Recommend.CacheSize = 0
				c.Recommend.CacheTTL = 0
				c.Recommend.CacheCleanupInterval = 0
			},
		},
		{
			name:    "query timeout zero",
			mutate:  func(c *Config) { c.Recommend.QueryTimeout = 0 },
			wantErr: "QUERY_TIMEOUT",
		},
		{
			name:    "rate limit requests zero",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit disabled skips bounds",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitWindow = 0
			},
		},
		{
			name:    "rate limit window too long",
			mutate:  func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour },
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
		{
			name:   "empty log format",
			mutate: func(c *Config) { c.Logging.Format = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("default environment should be development")
	}
	cfg.Server.Environment = "PRODUCTION"
	if !cfg.IsProduction() {
		t.Error("IsProduction() should ignore case")
	}

	if !cfg.HasWildcardCORS() {
		t.Error("default CORS origins should be a wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://app.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origins should not report a wildcard")
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8501, "0.0.0.0:8501"},
		{"", 9000, ":9000"},
		{"::1", 80, "[::1]:80"},
	}
	for _, tt := range tests {
		s := ServerConfig{Host: tt.host, Port: tt.port}
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
