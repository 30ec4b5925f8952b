// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"sort"

	"github.com/tomtom215/mediarec/internal/corpus"
)

// BuildFacets derives the filter option lists from c.
// String lists are sorted and de-duplicated; ratings follow the ordinal table
// and include only keys that occur in the corpus.
func BuildFacets(c *corpus.Corpus) *Facets {
	titles := newStringSet()
	genres := newStringSet()
	tags := newStringSet()
	types := newStringSet()
	countries := newStringSet()
	ratings := make(map[string]bool)
	var years *YearRange

	for _, rec := range c.Records() {
		titles.add(rec.Title)
		for _, g := range rec.GenreList {
			genres.add(g)
		}
		for _, t := range rec.TagList {
			tags.add(t)
		}
		types.add(rec.Type)
		countries.add(rec.Country)

		if key := RatingKey(rec.Rating); key != RatingAny {
			if _, known := ratingOrdinals[key]; known {
				ratings[key] = true
			}
		}

		if year, ok := ParseYear(rec.Date); ok {
			if years == nil {
				years = &YearRange{Min: year, Max: year}
			} else {
				years.Min = min(years.Min, year)
				years.Max = max(years.Max, year)
			}
		}
	}

	orderedRatings := make([]string, 0, len(ratings))
	for _, key := range RatingKeys() {
		if ratings[key] {
			orderedRatings = append(orderedRatings, key)
		}
	}

	return &Facets{
		Titles:    titles.sorted(),
		Genres:    genres.sorted(),
		Tags:      tags.sorted(),
		Types:     types.sorted(),
		Countries: countries.sorted(),
		Ratings:   orderedRatings,
		Years:     years,
	}
}

// stringSet collects non-empty strings.
type stringSet map[string]struct{}

func newStringSet() stringSet { return make(stringSet) }

func (s stringSet) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
