// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// castFallbackRole is the role used when a cast value is a flat list of names.
const castFallbackRole = "Cast"

// rawRecord is one decoded row keyed by lower-cased column name.
// Values are whatever the decoder produced: strings, numbers, lists, maps.
type rawRecord map[string]any

func newRawRecord(n int) rawRecord {
	return make(rawRecord, n)
}

func (r rawRecord) set(column string, value any) {
	r[strings.ToLower(strings.TrimSpace(column))] = value
}

func (r rawRecord) str(column string) string {
	return strings.TrimSpace(scalarString(r[column]))
}

// toRecord resolves a raw row into a MediaRecord with documented defaults.
func (r rawRecord) toRecord(placeholderCover string) MediaRecord {
	rec := MediaRecord{
		ID:            r.str("id"),
		Title:         r.str("title"),
		Type:          r.str("type"),
		Country:       r.str("country"),
		Genres:        r.str("genres"),
		Tags:          r.str("tags"),
		Score:         r.str("score"),
		Date:          r.str("date"),
		Rating:        r.str("rating"),
		Episodes:      parseEpisodes(r["episodes"]),
		Network:       r.str("network"),
		Cover:         r.str("cover"),
		Synopsis:      r.str("synopsis"),
		Directors:     r.str("directors"),
		Screenwriters: r.str("screenwriters"),
		Cast:          parseCast(r["cast"]),
	}
	rec.GenreList = SplitList(rec.Genres)
	rec.TagList = SplitList(rec.Tags)
	if rec.Cover == "" {
		rec.Cover = placeholderCover
	}
	return rec
}

// SplitList splits a comma-delimited value into trimmed, non-empty entries.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// scalarString renders a decoded value as text.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case json.Number:
		return val.String()
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		if math.IsNaN(float64(val)) {
			return ""
		}
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(scalarString(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

func parseEpisodes(v any) *int {
	s := strings.TrimSpace(scalarString(v))
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	// Float columns (pandas NaN-able ints) arrive as "16.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && f == math.Trunc(f) {
		n := int(f)
		return &n
	}
	return nil
}

// parseCast accepts a role->people object, a JSON-encoded object, a list of
// names or a comma-delimited string.
func parseCast(v any) map[string][]string {
	cast := map[string][]string{}

	switch val := v.(type) {
	case nil:
		return cast
	case map[string]any:
		for role, people := range val {
			if names := peopleList(people); len(names) > 0 {
				cast[role] = names
			}
		}
		return cast
	case map[any]any:
		for role, people := range val {
			if names := peopleList(people); len(names) > 0 {
				cast[scalarString(role)] = names
			}
		}
		return cast
	case []any:
		if names := peopleList(val); len(names) > 0 {
			cast[castFallbackRole] = names
		}
		return cast
	}

	s := strings.TrimSpace(scalarString(v))
	if s == "" {
		return cast
	}
	if strings.HasPrefix(s, "{") {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return parseCast(decoded)
		}
	}
	if names := SplitList(s); len(names) > 0 {
		cast[castFallbackRole] = names
	}
	return cast
}

func peopleList(v any) []string {
	switch val := v.(type) {
	case []any:
		names := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(scalarString(item)); s != "" {
				names = append(names, s)
			}
		}
		return names
	case []string:
		return val
	default:
		return SplitList(scalarString(val))
	}
}
