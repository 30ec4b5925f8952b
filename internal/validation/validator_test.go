// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testQuery struct {
	Title    string   `json:"title" validate:"required,notblank,max=300"`
	K        int      `json:"k" validate:"min=1,max=20"`
	Rating   string   `json:"max_rating" validate:"omitempty,oneof=Any G 13+ 15+ 18+ R"`
	MinScore *float64 `json:"min_score" validate:"omitempty,gte=0,lte=10"`
	Internal string   `json:"-" validate:"omitempty,min=3"`
}

func floatPtr(f float64) *float64 { return &f }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     testQuery
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: testQuery{Title: "Signal", K: 5, Rating: "15+", MinScore: floatPtr(7)},
		},
		{
			name:      "missing title",
			input:     testQuery{K: 5},
			wantField: "title",
			wantTag:   "required",
			wantMsg:   "title is required",
		},
		{
			name:      "blank title",
			input:     testQuery{Title: "   ", K: 5},
			wantField: "title",
			wantTag:   "notblank",
			wantMsg:   "title must not be blank",
		},
		{
			name:      "k too large",
			input:     testQuery{Title: "Signal", K: 21},
			wantField: "k",
			wantTag:   "max",
			wantMsg:   "k must be at most 20",
		},
		{
			name:      "k too small",
			input:     testQuery{Title: "Signal", K: 0},
			wantField: "k",
			wantTag:   "min",
			wantMsg:   "k must be at least 1",
		},
		{
			name:      "unknown rating",
			input:     testQuery{Title: "Signal", K: 5, Rating: "PG"},
			wantField: "max_rating",
			wantTag:   "oneof",
			wantMsg:   "max_rating must be one of: Any G 13+ 15+ 18+ R",
		},
		{
			name:      "score out of range",
			input:     testQuery{Title: "Signal", K: 5, MinScore: floatPtr(11)},
			wantField: "min_score",
			wantTag:   "lte",
			wantMsg:   "min_score must be less than or equal to 10",
		},
		{
			name:      "json dash falls back to struct field name",
			input:     testQuery{Title: "Signal", K: 5, Internal: "x"},
			wantField: "Internal",
			wantTag:   "min",
			wantMsg:   "Internal must be at least 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}

			errs := err.errors
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].field != tt.wantField || errs[0].tag != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", errs[0].field, errs[0].tag, tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		t.Parallel()

		apiErr := ValidateStruct(&testQuery{K: 5}).ToAPIError()
		if apiErr.Code != CodeValidationFailed {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Details["field"] != "title" {
			t.Errorf("Details[field] = %v", apiErr.Details["field"])
		}
		if _, ok := apiErr.Details["param"]; ok {
			t.Errorf("Details[param] set for a tag without a parameter: %v", apiErr.Details)
		}
	})

	t.Run("tag parameter", func(t *testing.T) {
		t.Parallel()

		apiErr := ValidateStruct(&testQuery{Title: "Signal", K: 21}).ToAPIError()
		if apiErr.Details["tag"] != "max" || apiErr.Details["param"] != "20" {
			t.Errorf("Details = %v, want tag max with param 20", apiErr.Details)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()

		apiErr := ValidateStruct(&testQuery{K: 50}).ToAPIError()
		if !strings.Contains(apiErr.Message, "title is required") || !strings.Contains(apiErr.Message, "k must be at most 20") {
			t.Errorf("Message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]any)
		if !ok || len(fields) != 2 {
			t.Errorf("Details[fields] = %#v", apiErr.Details["fields"])
		}
	})

	t.Run("manual error", func(t *testing.T) {
		t.Parallel()

		err := NewRequestValidationError("year_from", "ltefield", "year_from must not be after year_to", 2022)
		apiErr := err.ToAPIError()
		if apiErr.Message != "year_from must not be after year_to" || apiErr.Details["value"] != 2022 {
			t.Errorf("ToAPIError() = %+v", apiErr)
		}
		if err.Error() != apiErr.Message {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		empty := &RequestValidationError{}
		if empty.Error() != "validation failed" || empty.ToAPIError().Code != CodeValidationFailed {
			t.Error("empty error should still produce a validation code")
		}
	})
}
