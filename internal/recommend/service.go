// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mediarec/internal/cache"
	"github.com/tomtom215/mediarec/internal/corpus"
	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/metrics"
)

// ErrInvalidQuery is returned (wrapped) for queries the service rejects
// before ranking, such as k out of range or an unknown rating ceiling.
var ErrInvalidQuery = errors.New("invalid recommendation query")

// Service answers recommendation, facet and lookup queries over one corpus.
// It is safe for concurrent use.
type Service struct {
	config  *Config
	corpus  *corpus.Corpus
	ranker  *Ranker
	filters *FilterChain
	facets  *Facets
	titles  *cache.Trie[string]
	results *cache.LRU[*Result] // nil when caching is disabled
	logger  zerolog.Logger
}

// NewService builds a Service over c. Facets and the title index are
// computed here, once.
func NewService(c *corpus.Corpus, cfg *Config) (*Service, error) {
	if c == nil {
		return nil, errors.New("recommend: corpus is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{
		config:  cfg,
		corpus:  c,
		ranker:  NewRanker(c),
		filters: NewFilterChain(cfg.ExactFacetMatch),
		facets:  BuildFacets(c),
		titles:  cache.NewTrieWithLimit[string](cfg.SuggestLimit),
		logger:  logging.WithComponent("recommend"),
	}
	for _, rec := range c.Records() {
		s.titles.InsertWithData(rec.Title, rec.ID)
	}
	if cfg.Cache.Enabled() {
		s.results = cache.NewLRU[*Result](cfg.Cache.Size, cfg.Cache.TTL)
	}

	s.logger.Info().
		Int("records", c.Len()).
		Int("titles", s.titles.Size()).
		Bool("cache", cfg.Cache.Enabled()).
		Bool("exact_facets", cfg.ExactFacetMatch).
		Msg("Recommendation service ready")

	return s, nil
}

// Config returns the service configuration. Callers must not modify it.
func (s *Service) Config() *Config { return s.config }

// Recommend ranks the k nearest neighbours of q.Title and applies q.Filters.
// Filtering runs after ranking, so fewer than k results may be returned.
// An unknown title is not an error: the result has Found false and no
// recommendations.
//
// Results may be shared with other callers through the response cache and
// must be treated as read-only.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (s *Service) Recommend(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()

	q, err := s.prepareQuery(q)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(q)
	if cached := s.cachedResult(key); cached != nil {
		metrics.RecordRecommendation(metrics.OutcomeCached, time.Since(start), len(cached.Recommendations), nil)
		return cached, nil
	}

	idx, found := s.corpus.IndexOfTitle(q.Title)
	if !found {
		metrics.RecordRecommendation(metrics.OutcomeNotFound, time.Since(start), 0, nil)
		logging.Ctx(ctx).Debug().Str("title", q.Title).Msg("Title not in corpus")
		return &Result{
			Title:           q.Title,
			K:               q.K,
			Recommendations: []RankedCandidate{},
			Duration:        time.Since(start),
		}, nil
	}

	ranked, err := s.ranker.Rank(ctx, q.Title, q.K)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0, nil)
		return nil, err
	}

	kept, excluded := s.filters.Partition(ranked, &q.Filters)
	result := &Result{
		Title:           s.corpus.Record(idx).Title,
		Found:           true,
		K:               q.K,
		Recommendations: kept,
		Ranked:          len(ranked),
		Excluded:        len(excluded),
		Duration:        time.Since(start),
	}
	if q.Explain {
		result.Exclusions = excluded
	}

	metrics.RecordRecommendation(metrics.OutcomeFound, result.Duration, len(kept), countByPredicate(excluded))
	logging.Ctx(ctx).Debug().
		Str("title", result.Title).
		Int("k", q.K).
		Int("retained", len(kept)).
		Int("excluded", len(excluded)).
		Dur("duration", result.Duration).
		Msg("Recommendation complete")

	s.storeResult(key, result)
	return result, nil
}

// prepareQuery applies defaults and rejects out-of-range values.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (s *Service) prepareQuery(q Query) (Query, error) {
	q.Title = strings.TrimSpace(q.Title)
	if q.K == 0 {
		q.K = s.config.DefaultK
	}
	if q.K < 1 || q.K > s.config.MaxK {
		return q, fmt.Errorf("%w: k must be between 1 and %d, got %d", ErrInvalidQuery, s.config.MaxK, q.K)
	}

	f := &q.Filters
	if f.YearFrom != nil && f.YearTo != nil && *f.YearFrom > *f.YearTo {
		return q, fmt.Errorf("%w: year_from %d is after year_to %d", ErrInvalidQuery, *f.YearFrom, *f.YearTo)
	}
	if !ValidRatingCeiling(f.MaxRating) {
		return q, fmt.Errorf("%w: unknown rating ceiling %q", ErrInvalidQuery, f.MaxRating)
	}
	if f.MaxRating != "" {
		f.MaxRating = RatingKey(f.MaxRating)
	}
	return q, nil
}

// cacheKey hashes the normalised query. Titles are folded so lookups that
// differ only in case share an entry.
//
//nolint:gocritic // hugeParam: q passed by value for simplicity
func (s *Service) cacheKey(q Query) string {
	q.Title = corpus.FoldTitle(q.Title)
	return cache.GenerateKey("recommend", q)
}

// cachedResult returns a copy of a cached result marked as cached, or nil.
func (s *Service) cachedResult(key string) *Result {
	if s.results == nil {
		return nil
	}
	res, ok := s.results.Get(key)
	metrics.RecordCacheLookup(metrics.CacheTypeRecommend, ok)
	if !ok {
		return nil
	}
	out := *res
	out.Cached = true
	return &out
}

func (s *Service) storeResult(key string, res *Result) {
	if s.results == nil {
		return
	}
	s.results.Add(key, res)
}

// CacheEnabled reports whether the response cache is on.
func (s *Service) CacheEnabled() bool { return s.results != nil }

// CleanupCache purges expired cached results and returns how many were
// removed and how many remain.
func (s *Service) CleanupCache() (expired, size int) {
	if s.results == nil {
		return 0, 0
	}
	expired = s.results.CleanupExpired()
	return expired, s.results.Len()
}

// Facets returns the filter option lists. Callers must not modify them.
func (s *Service) Facets() *Facets { return s.facets }

// Suggest returns titles starting with prefix, case-insensitively.
// limit <= 0 uses Config.SuggestLimit.
func (s *Service) Suggest(prefix string, limit int) []Suggestion {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []Suggestion{}
	}
	if limit <= 0 {
		limit = s.config.SuggestLimit
	}

	matches := s.titles.AutocompleteWithLimit(prefix, limit)
	out := make([]Suggestion, len(matches))
	for i, m := range matches {
		out[i] = Suggestion{ID: m.Data, Title: m.Value}
	}
	return out
}

// Titles returns one page of the sorted unique title list and the total count.
func (s *Service) Titles(offset, limit int) ([]string, int) {
	all := s.facets.Titles
	total := len(all)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return []string{}, total
	}
	end := min(offset+limit, total)
	return all[offset:end], total
}

// Lookup returns the record with the given id.
func (s *Service) Lookup(id string) (corpus.MediaRecord, bool) {
	idx, ok := s.corpus.IndexOfID(id)
	if !ok {
		return corpus.MediaRecord{}, false
	}
	return s.corpus.Record(idx), true
}

// Stats describes the loaded corpus and, when enabled, the response cache.
func (s *Service) Stats() Stats {
	src := s.corpus.Source()
	st := Stats{
		Records:        s.corpus.Len(),
		Dimension:      s.corpus.Dimension(),
		RecordsPath:    src.RecordsPath,
		EmbeddingsPath: src.EmbeddingsPath,
		LoadedAt:       s.corpus.LoadedAt(),
	}
	if s.results != nil {
		cs := s.results.Stats()
		st.Cache = &CacheStatus{
			Size:      cs.Size,
			Capacity:  cs.Capacity,
			Hits:      cs.Hits,
			Misses:    cs.Misses,
			Evictions: cs.Evictions,
			HitRate:   cs.HitRate(),
		}
	}
	return st
}

// countByPredicate tallies how many excluded candidates failed each predicate.
func countByPredicate(excluded []Exclusion) map[string]int {
	if len(excluded) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, e := range excluded {
		for _, name := range e.FailedOn {
			counts[name]++
		}
	}
	return counts
}
