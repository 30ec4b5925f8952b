// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Drama", []string{"Drama"}},
		{"Drama, Family,  Life ", []string{"Drama", "Family", "Life"}},
		{"Drama,,  ,Family", []string{"Drama", "Family"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SplitList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScalarString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Drama", "Drama"},
		{"json number", json.Number("42"), "42"},
		{"integral float", float64(16), "16"},
		{"fractional float", 7.5, "7.5"},
		{"int64", int64(9), "9"},
		{"bool", true, "true"},
		{"date", time.Date(2021, 5, 14, 0, 0, 0, 0, time.UTC), "2021-05-14"},
		{"list", []any{"Kim Sung Ho", " ", "Lee Je Hoon"}, "Kim Sung Ho, Lee Je Hoon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scalarString(tt.in); got != tt.want {
				t.Errorf("scalarString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEpisodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"absent", nil, nil},
		{"empty", "", nil},
		{"integer string", "10", intPtr(10)},
		{"float string", "16.0", intPtr(16)},
		{"json number", json.Number("12"), intPtr(12)},
		{"non-integral float", "1.5", nil},
		{"text", "unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseEpisodes(tt.in)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("parseEpisodes(%v) = %d, want nil", tt.in, *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("parseEpisodes(%v) = %v, want %d", tt.in, got, *tt.want)
			}
		})
	}
}

func TestParseCast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want map[string][]string
	}{
		{
			name: "absent",
			in:   nil,
			want: map[string][]string{},
		},
		{
			name: "decoded object",
			in: map[string]any{
				"Main Role":    []any{"Lee Je Hoon", "Tang Joon Sang"},
				"Support Role": "Hong Seung Hee, Ji Jin Hee",
			},
			want: map[string][]string{
				"Main Role":    {"Lee Je Hoon", "Tang Joon Sang"},
				"Support Role": {"Hong Seung Hee", "Ji Jin Hee"},
			},
		},
		{
			name: "json text",
			in:   `{"Main Role": ["Kim Go Eun"]}`,
			want: map[string][]string{"Main Role": {"Kim Go Eun"}},
		},
		{
			name: "flat list",
			in:   []any{"A", "B"},
			want: map[string][]string{"Cast": {"A", "B"}},
		},
		{
			name: "comma string",
			in:   "A, B",
			want: map[string][]string{"Cast": {"A", "B"}},
		},
		{
			name: "malformed json falls back to names",
			in:   "{not json",
			want: map[string][]string{"Cast": {"{not json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCast(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCast() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRawRecord_ToRecord(t *testing.T) {
	t.Parallel()

	raw := newRawRecord(8)
	raw.set(" ID ", json.Number("101"))
	raw.set("Title", "Move to Heaven")
	raw.set("genres", "Life, Drama, Family")
	raw.set("tags", "")
	raw.set("score", "9.2/10")
	raw.set("episodes", "10")
	raw.set("cover", "")

	rec := raw.toRecord(DefaultPlaceholderCover)

	if rec.ID != "101" {
		t.Errorf("ID = %q, want 101", rec.ID)
	}
	if rec.Title != "Move to Heaven" {
		t.Errorf("Title = %q", rec.Title)
	}
	if !reflect.DeepEqual(rec.GenreList, []string{"Life", "Drama", "Family"}) {
		t.Errorf("GenreList = %#v", rec.GenreList)
	}
	if len(rec.TagList) != 0 {
		t.Errorf("TagList = %#v, want empty", rec.TagList)
	}
	if rec.Episodes == nil || *rec.Episodes != 10 {
		t.Errorf("Episodes = %v, want 10", rec.Episodes)
	}
	if rec.Cover != DefaultPlaceholderCover {
		t.Errorf("Cover = %q, want placeholder", rec.Cover)
	}
	if rec.Cast == nil {
		t.Error("Cast should default to an empty map")
	}
}

func intPtr(n int) *int { return &n }
