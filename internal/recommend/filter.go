// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"slices"
	"strings"
)

// Predicate names reported by Explain.
const (
	PredicateType    = "type"
	PredicateCountry = "country"
	PredicateGenre   = "genre"
	PredicateTag     = "tag"
	PredicateScore   = "score"
	PredicateYear    = "year"
	PredicateRating  = "rating"
)

// FilterChain applies FilterCriteria to ranked candidates. Every active
// predicate must pass for a candidate to be kept.
type FilterChain struct {
	exactFacets bool
}

// NewFilterChain creates a FilterChain. With exactFacets, genre and tag
// values must equal a whole entry; otherwise a substring of any entry matches.
func NewFilterChain(exactFacets bool) *FilterChain {
	return &FilterChain{exactFacets: exactFacets}
}

// Matches reports whether c passes every active predicate. It stops at the
// first failing predicate.
func (f *FilterChain) Matches(c *RankedCandidate, criteria *FilterCriteria) bool {
	return len(f.failing(c, criteria, true)) == 0
}

// Explain returns the names of the active predicates c fails, in a fixed
// order. An empty result means c is kept.
func (f *FilterChain) Explain(c *RankedCandidate, criteria *FilterCriteria) []string {
	return f.failing(c, criteria, false)
}

// failing evaluates the predicates in Explain order. With first set it
// returns as soon as one predicate fails.
func (f *FilterChain) failing(c *RankedCandidate, criteria *FilterCriteria, first bool) []string {
	var failed []string
	fail := func(name string) bool {
		failed = append(failed, name)
		return first
	}

	if len(criteria.Types) > 0 && !slices.Contains(criteria.Types, c.Type) && fail(PredicateType) {
		return failed
	}
	if len(criteria.Countries) > 0 && !slices.Contains(criteria.Countries, c.Country) && fail(PredicateCountry) {
		return failed
	}
	if len(criteria.Genres) > 0 && !f.anyFacet(c.GenreList, criteria.Genres) && fail(PredicateGenre) {
		return failed
	}
	if len(criteria.Tags) > 0 && !f.anyFacet(c.TagList, criteria.Tags) && fail(PredicateTag) {
		return failed
	}
	if criteria.MinScore != nil && !meetsScore(c.Score, *criteria.MinScore) && fail(PredicateScore) {
		return failed
	}
	if (criteria.YearFrom != nil || criteria.YearTo != nil) && !inYearRange(c.Date, criteria.YearFrom, criteria.YearTo) && fail(PredicateYear) {
		return failed
	}
	if ratingCeilingActive(criteria.MaxRating) && !withinRatingCeiling(c.Rating, criteria.MaxRating) {
		fail(PredicateRating)
	}
	return failed
}

// Apply returns the candidates that pass, in their original order.
// With no active predicate the input slice is returned unchanged.
func (f *FilterChain) Apply(candidates []RankedCandidate, criteria *FilterCriteria) []RankedCandidate {
	if criteria == nil || criteria.IsEmpty() {
		return candidates
	}

	kept := make([]RankedCandidate, 0, len(candidates))
	for i := range candidates {
		if f.Matches(&candidates[i], criteria) {
			kept = append(kept, candidates[i])
		}
	}
	return kept
}

// Partition splits candidates into kept and excluded, both in input order.
// Kept is Apply's result; each excluded candidate carries every predicate
// it fails.
func (f *FilterChain) Partition(candidates []RankedCandidate, criteria *FilterCriteria) ([]RankedCandidate, []Exclusion) {
	kept := f.Apply(candidates, criteria)
	if len(kept) == len(candidates) {
		return kept, nil
	}

	// kept is an in-order subsequence of candidates and ids are unique.
	excluded := make([]Exclusion, 0, len(candidates)-len(kept))
	j := 0
	for i := range candidates {
		c := &candidates[i]
		if j < len(kept) && kept[j].ID == c.ID {
			j++
			continue
		}
		excluded = append(excluded, Exclusion{
			ID:         c.ID,
			Title:      c.Title,
			Similarity: c.Similarity,
			FailedOn:   f.Explain(c, criteria),
		})
	}
	return kept, excluded
}

// anyFacet reports whether any selected value matches any entry.
func (f *FilterChain) anyFacet(entries, selected []string) bool {
	for _, want := range selected {
		for _, entry := range entries {
			if f.exactFacets {
				if entry == want {
					return true
				}
			} else if strings.Contains(entry, want) {
				return true
			}
		}
	}
	return false
}

func meetsScore(score string, floor float64) bool {
	v, ok := ParseScore(score)
	return ok && v >= floor
}

func inYearRange(date string, from, to *int) bool {
	year, ok := ParseYear(date)
	if !ok {
		return false
	}
	if from != nil && year < *from {
		return false
	}
	if to != nil && year > *to {
		return false
	}
	return true
}
