// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/mediarec/internal/logging"
	"github.com/tomtom215/mediarec/internal/recommend"
	"github.com/tomtom215/mediarec/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log
// injection through user-supplied titles and ids.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// multiValueParam collects a parameter given as repeated keys, comma
// separated values, or both. Blank entries are dropped; nil means absent.
func multiValueParam(values url.Values, key string) []string {
	var result []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}

// optionalIntParam parses key as an integer. An absent or blank value
// yields nil.
func optionalIntParam(values url.Values, key string) (*int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.NewRequestValidationError(key, "integer", key+" must be an integer", raw)
	}
	return &n, nil
}

// optionalFloatParam parses key as a finite number. An absent or blank
// value yields nil.
func optionalFloatParam(values url.Values, key string) (*float64, *validation.RequestValidationError) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, validation.NewRequestValidationError(key, "number", key+" must be a number", raw)
	}
	return &f, nil
}

// boolParam parses key as a boolean, defaulting to false when absent.
func boolParam(values url.Values, key string) (bool, *validation.RequestValidationError) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validation.NewRequestValidationError(key, "boolean", key+" must be true or false", raw)
	}
	return b, nil
}

// intParam parses key as an integer, returning def when absent.
func intParam(values url.Values, key string, def int) (int, *validation.RequestValidationError) {
	n, verr := optionalIntParam(values, key)
	if verr != nil {
		return 0, verr
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}

// respondRecommendError maps a service error to a response. Invalid
// queries are the caller's fault; deadlines become 503; anything else is
// logged and reported without internal detail.
func respondRecommendError(ctx context.Context, rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrInvalidQuery):
		rw.RequestValidationError(validation.NewRequestValidationError("query", "invalid", err.Error(), nil))
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(ctx).Warn().Err(err).Msg("Recommendation query timed out")
		rw.Timeout("Recommendation query timed out")
	case errors.Is(err, context.Canceled):
		logging.Ctx(ctx).Debug().Err(err).Msg("Recommendation query cancelled")
		rw.Timeout("Recommendation query cancelled")
	default:
		logging.Ctx(ctx).Error().Err(err).Msg("Recommendation query failed")
		rw.InternalError("Failed to compute recommendations")
	}
}
