// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediarec/internal/config"
	"github.com/tomtom215/mediarec/internal/corpus"
	"github.com/tomtom215/mediarec/internal/recommend"
)

// envelope is APIResponse with a typed payload for decoding in tests.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        8501,
			Host:        "127.0.0.1",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Recommend: config.RecommendConfig{
			DefaultK:             5,
			MaxK:                 20,
			QueryTimeout:         5 * time.Second,
			CacheSize:            64,
			CacheTTL:             time.Minute,
			CacheCleanupInterval: time.Minute,
			SuggestLimit:         10,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
	}
}

func testRecord(id, title string, mutate func(*corpus.MediaRecord)) corpus.MediaRecord {
	rec := corpus.MediaRecord{
		ID:      id,
		Title:   title,
		Type:    "Drama",
		Country: "South Korea",
		Cover:   corpus.DefaultPlaceholderCover,
	}
	if mutate != nil {
		mutate(&rec)
	}
	rec.GenreList = corpus.SplitList(rec.Genres)
	rec.TagList = corpus.SplitList(rec.Tags)
	return rec
}

// newTestService builds a service over four titles. Relative to "Signal":
// Tunnel ~0.99, Stranger ~0.71, Mirror -1.
func newTestService(t *testing.T) *recommend.Service {
	t.Helper()

	records := []corpus.MediaRecord{
		testRecord("1", "Signal", func(r *corpus.MediaRecord) {
			r.Genres, r.Tags, r.Score, r.Date, r.Rating = "Thriller, Mystery", "Time Travel", "9.1/10", "2016", "15+ - Teens 15 or older"
		}),
		testRecord("2", "Tunnel", func(r *corpus.MediaRecord) {
			r.Genres, r.Tags, r.Score, r.Date, r.Rating = "Thriller, Crime", "Time Travel", "8.6/10", "2017-03-25", "15+ - Teens 15 or older"
		}),
		testRecord("3", "Stranger", func(r *corpus.MediaRecord) {
			r.Genres, r.Score, r.Date, r.Rating = "Mystery, Law", "8.9/10", "2017", "18+ Restricted (violence & profanity)"
		}),
		testRecord("4", "Mirror", func(r *corpus.MediaRecord) {
			r.Type, r.Country, r.Genres, r.Score, r.Rating = "Movie", "Japan", "Romance", "6.0/10", "G - All Ages"
		}),
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0.99, 0.1411, 0},
		{0.7, 0.7, 0},
		{-1, 0, 0},
	}

	c, err := corpus.New(records, vectors, corpus.Source{RecordsPath: "media.json", EmbeddingsPath: "embeddings.npy"})
	if err != nil {
		t.Fatalf("corpus.New() error = %v", err)
	}

	cfg := recommend.DefaultConfig()
	cfg.Cache.Size = 0
	svc, err := recommend.NewService(c, cfg)
	if err != nil {
		t.Fatalf("recommend.NewService() error = %v", err)
	}
	return svc
}

// newTestServer returns a router over a handler with the test service attached.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := testConfig()
	h := NewHandler(cfg)
	if err := h.AttachService(newTestService(t)); err != nil {
		t.Fatalf("AttachService() error = %v", err)
	}
	return NewRouter(h, cfg).SetupChi()
}

func serve(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func titlesOf(cands []recommend.RankedCandidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Title
	}
	return out
}
