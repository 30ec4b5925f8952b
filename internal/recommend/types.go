// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"math"
	"time"

	"github.com/tomtom215/mediarec/internal/corpus"
)

// RankedCandidate is a corpus record scored against a query title.
type RankedCandidate struct {
	corpus.MediaRecord

	// Similarity is the cosine similarity to the query, in [-1, 1].
	Similarity float64 `json:"similarity"`

	// SimilarityPct is Similarity as a whole percentage clamped to [0, 100].
	SimilarityPct int `json:"similarity_pct"`
}

// newCandidate builds a RankedCandidate for record rec.
func newCandidate(rec corpus.MediaRecord, similarity float64) RankedCandidate {
	return RankedCandidate{
		MediaRecord:   rec,
		Similarity:    similarity,
		SimilarityPct: similarityPct(similarity),
	}
}

func similarityPct(sim float64) int {
	pct := math.Round(sim * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return int(pct)
	}
}

// FilterCriteria selects which ranked candidates are kept.
// Empty fields impose no constraint.
type FilterCriteria struct {
	Types     []string `json:"types,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	// MinScore is the score floor. Nil disables the predicate.
	MinScore *float64 `json:"min_score,omitempty"`

	// YearFrom and YearTo bound the release year, inclusive.
	// Either may be nil for an open-ended range.
	YearFrom *int `json:"year_from,omitempty"`
	YearTo   *int `json:"year_to,omitempty"`

	// MaxRating is the rating ceiling key. "" and "Any" disable the predicate.
	MaxRating string `json:"max_rating,omitempty"`
}

// IsEmpty reports whether no predicate is active.
func (c *FilterCriteria) IsEmpty() bool {
	return len(c.Types) == 0 &&
		len(c.Countries) == 0 &&
		len(c.Genres) == 0 &&
		len(c.Tags) == 0 &&
		c.MinScore == nil &&
		c.YearFrom == nil && c.YearTo == nil &&
		!ratingCeilingActive(c.MaxRating)
}

// Query is a single recommendation request.
type Query struct {
	// Title is matched case-insensitively against corpus titles.
	Title string `json:"title"`

	// K is the number of neighbours ranked before filtering.
	// Zero uses Config.DefaultK.
	K int `json:"k"`

	Filters FilterCriteria `json:"filters"`

	// Explain lists excluded candidates with the predicates they failed.
	Explain bool `json:"explain"`
}

// Exclusion is a ranked candidate removed by the filter chain.
type Exclusion struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Similarity float64  `json:"similarity"`
	FailedOn   []string `json:"failed_on"`
}

// Result is the outcome of a recommendation query.
type Result struct {
	// Title is the corpus spelling of the matched title, or the query
	// title when nothing matched.
	Title string `json:"title"`

	// Found reports whether the title exists in the corpus.
	Found bool `json:"found"`

	// K is the effective neighbour count after defaults were applied.
	K int `json:"k"`

	// Recommendations are the retained candidates, most similar first.
	Recommendations []RankedCandidate `json:"recommendations"`

	// Ranked is the number of candidates before filtering.
	Ranked int `json:"ranked"`

	// Excluded is the number of candidates removed by filters.
	Excluded int `json:"excluded"`

	// Exclusions is populated only for explain queries.
	Exclusions []Exclusion `json:"exclusions,omitempty"`

	// Cached reports whether the result was served from the response cache.
	Cached bool `json:"cached"`

	// Duration is the time spent ranking and filtering.
	Duration time.Duration `json:"-"`
}

// YearRange is the span of release years present in the corpus.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Facets are the filter option lists derived from the corpus.
type Facets struct {
	Titles    []string   `json:"titles"`
	Genres    []string   `json:"genres"`
	Tags      []string   `json:"tags"`
	Types     []string   `json:"types"`
	Countries []string   `json:"countries"`
	Ratings   []string   `json:"ratings"`
	Years     *YearRange `json:"years,omitempty"`
}

// Suggestion is one title autocomplete match.
type Suggestion struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Stats describes the loaded corpus and the response cache.
type Stats struct {
	Records        int          `json:"records"`
	Dimension      int          `json:"dimension"`
	RecordsPath    string       `json:"records_path"`
	EmbeddingsPath string       `json:"embeddings_path"`
	LoadedAt       time.Time    `json:"loaded_at"`
	Cache          *CacheStatus `json:"cache,omitempty"`
}

// CacheStatus is a snapshot of the response cache counters.
type CacheStatus struct {
	Size      int     `json:"size"`
	Capacity  int     `json:"capacity"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	HitRate   float64 `json:"hit_rate"`
}
