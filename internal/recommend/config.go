// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation service.
type Config struct {
	// DefaultK is used when a query leaves K at zero.
	// Default: 5
	DefaultK int `json:"default_k"`

	// MaxK is the largest K a query may request.
	// Default: 20
	MaxK int `json:"max_k"`

	// ExactFacetMatch makes genre and tag filters compare whole entries
	// instead of substrings.
	// Default: false
	ExactFacetMatch bool `json:"exact_facet_match"`

	// Cache contains response cache parameters.
	Cache CacheConfig `json:"cache"`

	// SuggestLimit is the default number of autocomplete suggestions.
	// Default: 10
	SuggestLimit int `json:"suggest_limit"`
}

// CacheConfig contains response cache parameters.
type CacheConfig struct {
	// Size is the maximum number of cached results. Zero disables the cache.
	// Default: 1024
	Size int `json:"size"`

	// TTL is how long a cached result stays valid.
	// Default: 5 minutes
	TTL time.Duration `json:"ttl"`
}

// Enabled reports whether results are cached.
func (c CacheConfig) Enabled() bool { return c.Size > 0 }

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultK: 5,
		MaxK:     20,
		Cache: CacheConfig{
			Size: 1024,
			TTL:  5 * time.Minute,
		},
		SuggestLimit: 10,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxK < 1 {
		return fmt.Errorf("max_k must be positive, got %d", c.MaxK)
	}
	if c.DefaultK < 1 || c.DefaultK > c.MaxK {
		return fmt.Errorf("default_k must be in [1, %d], got %d", c.MaxK, c.DefaultK)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must be non-negative, got %d", c.Cache.Size)
	}
	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
	}
	if c.SuggestLimit < 1 {
		return fmt.Errorf("suggest_limit must be positive, got %d", c.SuggestLimit)
	}
	return nil
}
