// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/metrics"
)

// defaultCleanupInterval is used when no interval is configured.
const defaultCleanupInterval = time.Minute

// CacheCleaner purges expired response cache entries.
// Satisfied by *recommend.Service.
type CacheCleaner interface {
	// CleanupCache removes expired entries and returns how many were
	// removed and how many remain.
	CleanupCache() (expired, size int)
}

// CacheJanitorService periodically sweeps expired entries from the
// recommendation response cache and publishes the cache size gauge.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor that sweeps every interval.
// A non-positive interval uses one minute.
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logging.WithComponent("cache-janitor"),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Cache janitor started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Cache janitor stopped")
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one cleanup pass.
func (s *CacheJanitorService) sweep() {
	expired, size := s.cleaner.CleanupCache()
	metrics.UpdateCacheSize(metrics.CacheTypeRecommend, size, expired)

	if expired > 0 {
		s.logger.Debug().
			Int("expired", expired).
			Int("size", size).
			Msg("Purged expired cache entries")
	}
}

// String names the service in supervisor events.
func (s *CacheJanitorService) String() string {
	return s.name
}
