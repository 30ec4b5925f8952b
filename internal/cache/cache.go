// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package cache

import (
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"
)

// GenerateKey builds a compact, deterministic cache key from a method name
// and its parameters. Parameters are JSON-encoded, so struct field order
// and sorted map keys make equal inputs hash equally.
//
// Example:
//
//	key := cache.GenerateKey("recommend", query)
//	// "recommend:3f1c..."
func GenerateKey(method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
