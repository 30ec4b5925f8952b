// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package cache provides the in-memory data structures behind the recommendation
service: a prefix trie for title autocomplete, a generic TTL LRU for query
responses, and a deterministic cache key builder.

# Overview

  - Trie[T]: Unicode case-folded prefix tree. The first insertion of a key
    keeps its spelling and data; later insertions only bump the count used
    for ranking suggestions.
  - LRU[V]: bounded least-recently-used cache with per-entry TTL. Expired
    entries are dropped lazily on Get and in bulk by CleanupExpired, which
    the supervisor's cache janitor calls on an interval.
  - GenerateKey: go-json encoding plus SHA-256, truncated to 16 bytes.

# Usage Example

	titles := cache.NewTrieWithLimit[int](10)
	for i, rec := range corpus.Records() {
	    titles.InsertWithData(rec.Title, i)
	}
	suggestions := titles.AutocompleteWithLimit("move", 10)

	responses := cache.NewLRU[*recommend.Result](1024, 10*time.Minute)
	key := cache.GenerateKey("recommend", query)
	if res, ok := responses.Get(key); ok {
	    return res, nil
	}

# Thread Safety

All types are safe for concurrent use. The LRU takes an exclusive lock on Get
because a hit reorders the recency list.
*/
package cache
