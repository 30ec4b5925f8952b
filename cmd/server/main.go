// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/mediarec/internal/api"
	"github.com/tomtom215/mediarec/internal/config"
	"github.com/tomtom215/mediarec/internal/corpus"
	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/metrics"
	"github.com/tomtom215/mediarec/internal/recommend"
	"github.com/tomtom215/mediarec/internal/supervisor"
	"github.com/tomtom215/mediarec/internal/supervisor/services"
)

// shutdownTimeout bounds HTTP connection draining and service stop.
const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration first, so logging can be set up from it
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))

	logging.Info().
		Str("records_path", cfg.Corpus.RecordsPath).
		Str("embeddings_path", cfg.Corpus.EmbeddingsPath).
		Str("environment", cfg.Server.Environment).
		Msg("Starting mediarec")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logConfigWarnings(cfg)

	// The corpus must be loaded before the listener opens
	svc, err := buildService(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load corpus")
	}

	handler := api.NewHandler(cfg)
	if err := handler.AttachService(svc); err != nil {
		logging.Fatal().Err(err).Msg("Failed to attach recommendation service")
	}

	router := api.NewRouter(handler, cfg)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if svc.CacheEnabled() {
		tree.AddMaintenanceService(services.NewCacheJanitorService(svc, cfg.Recommend.CacheCleanupInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Mediarec stopped")
}

// buildService loads the corpus and constructs the recommendation service.
// Any load or validation failure is fatal to startup.
func buildService(ctx context.Context, cfg *config.Config) (*recommend.Service, error) {
	start := time.Now()
	c, err := corpus.Load(ctx, corpusOptions(cfg))
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.RecordCorpusLoad(c.Len(), c.Dimension(), elapsed, c.LoadedAt())

	logging.Info().
		Int("records", c.Len()).
		Int("dimension", c.Dimension()).
		Dur("duration", elapsed).
		Msg("Corpus loaded")

	return recommend.NewService(c, recommendConfig(cfg))
}

// loggingConfig maps application config onto the logger. Development
// builds always log the caller.
func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller || cfg.IsDevelopment(),
		Timestamp: true,
	}
}

// logConfigWarnings reports settings that are valid but unsafe to run with.
func logConfigWarnings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && cfg.HasWildcardCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin in production; set CORS_ORIGINS to the dashboard origin")
	}
}

func corpusOptions(cfg *config.Config) corpus.Options {
	return corpus.Options{
		RecordsPath:      cfg.Corpus.RecordsPath,
		EmbeddingsPath:   cfg.Corpus.EmbeddingsPath,
		EmbeddingColumn:  cfg.Corpus.EmbeddingColumn,
		PlaceholderCover: cfg.Corpus.PlaceholderCover,
	}
}

// recommendConfig maps application config onto the service's own config.
func recommendConfig(cfg *config.Config) *recommend.Config {
	r := cfg.Recommend
	return &recommend.Config{
		DefaultK:        r.DefaultK,
		MaxK:            r.MaxK,
		ExactFacetMatch: r.ExactFacetMatch,
		Cache: recommend.CacheConfig{
			Size: r.CacheSize,
			TTL:  r.CacheTTL,
		},
		SuggestLimit: r.SuggestLimit,
	}
}
