// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order before falling back to a year token scan.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006",
}

// yearToken matches a standalone four-digit year in 1800-2199.
var yearToken = regexp.MustCompile(`\b(1[89]\d{2}|2[01]\d{2})\b`)

// ParseYear extracts the release year from a date string such as
// "2021-03-05", "Mar 5, 2021" or a range like "Jan 5, 2021 - Mar 2, 2021".
// It returns false when no year can be found.
func ParseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year(), true
		}
	}

	m := yearToken.FindString(date)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}
