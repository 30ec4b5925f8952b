// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"sort"
	"strings"
)

// RatingAny is the ceiling that admits every rating.
const RatingAny = "Any"

// ratingOrdinals orders content ratings from least to most restricted.
var ratingOrdinals = map[string]int{
	RatingAny: 0,
	"G":       1,
	"13+":     2,
	"15+":     3,
	"18+":     4,
	"R":       5,
}

// unratedValues are ratings that mean "not classified" and pass any ceiling.
var unratedValues = map[string]bool{
	"not yet rated": true,
	"unrated":       true,
	"nr":            true,
	"-":             true,
}

// RatingKeys returns the ceiling keys in ordinal order.
func RatingKeys() []string {
	keys := make([]string, 0, len(ratingOrdinals))
	for k := range ratingOrdinals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return ratingOrdinals[keys[i]] < ratingOrdinals[keys[j]] })
	return keys
}

// RatingKey returns the table key for a rating string, which is its leading
// token: "13+ - Teens 13 or older" has key "13+". Keys are returned in the
// table's spelling when they match case-insensitively.
func RatingKey(rating string) string {
	fields := strings.Fields(rating)
	if len(fields) == 0 {
		return ""
	}
	token := fields[0]
	for k := range ratingOrdinals {
		if strings.EqualFold(k, token) {
			return k
		}
	}
	return token
}

// RatingOrdinal returns the ordinal of a rating string.
func RatingOrdinal(rating string) (int, bool) {
	ord, ok := ratingOrdinals[RatingKey(rating)]
	return ord, ok
}

// IsUnrated reports whether rating is absent or explicitly unclassified.
func IsUnrated(rating string) bool {
	rating = strings.TrimSpace(rating)
	return rating == "" || unratedValues[strings.ToLower(rating)]
}

// ValidRatingCeiling reports whether ceiling is "" or a known rating key.
func ValidRatingCeiling(ceiling string) bool {
	if strings.TrimSpace(ceiling) == "" {
		return true
	}
	_, ok := RatingOrdinal(ceiling)
	return ok
}

func ratingCeilingActive(ceiling string) bool {
	key := RatingKey(ceiling)
	return key != "" && key != RatingAny
}

// withinRatingCeiling reports whether rating passes ceiling. Unrated values
// pass; ratings outside the ordinal table fail.
func withinRatingCeiling(rating, ceiling string) bool {
	if IsUnrated(rating) {
		return true
	}
	limit, ok := RatingOrdinal(ceiling)
	if !ok {
		return false
	}
	ord, ok := RatingOrdinal(rating)
	if !ok {
		return false
	}
	return ord <= limit
}
