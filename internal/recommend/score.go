// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumberRe matches the number a score string starts with.
var leadingNumberRe = regexp.MustCompile(`^\s*([+-]?(?:\d+(?:\.\d*)?|\.\d+))`)

// ParseScore extracts the leading number of a score such as "8.7", "7.2/10",
// " 6.5 / 10" or "9.1 (scored by 1,234 users)". Anything after the number
// is ignored. It returns false when the score does not start with a number.
func ParseScore(s string) (float64, bool) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	m := leadingNumberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
