// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package cache

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

// defaultMaxSuggestions caps AutocompleteWithLimit results when no limit is given.
const defaultMaxSuggestions = 10

// TrieNode represents a node in the Trie.
type TrieNode[T any] struct {
	children map[rune]*TrieNode[T]
	isEnd    bool   // Marks end of a complete word
	value    string // Original spelling of the first insertion
	data     T      // Data attached by the first insertion
	count    int    // Number of times this key has been inserted (for ranking)
}

// Trie implements a thread-safe prefix tree for title autocomplete.
// Keys are Unicode case-folded, so "STRASSE" and "Straße" share a path.
//
// Key features:
//   - O(m) insert and prefix lookup where m = key length in runes
//   - Results sorted by frequency (most inserted first), then alphabetically
//   - The first insertion of a key keeps its spelling and data
//   - Thread-safe operations
type Trie[T any] struct {
	mu             sync.RWMutex
	root           *TrieNode[T]
	size           int // Number of complete words
	maxSuggestions int // Maximum suggestions to return (default 10)
}

// TrieResult represents a match from the Trie with associated data.
type TrieResult[T any] struct {
	Value string // The matched string, as first inserted
	Data  T      // Associated data
	Count int    // Number of times this value was inserted
}

// NewTrieWithLimit creates a new Trie with a custom default suggestion limit.
func NewTrieWithLimit[T any](maxSuggestions int) *Trie[T] {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	return &Trie[T]{
		root:           newTrieNode[T](),
		maxSuggestions: maxSuggestions,
	}
}

func newTrieNode[T any]() *TrieNode[T] {
	return &TrieNode[T]{
		children: make(map[rune]*TrieNode[T]),
	}
}

// normalizeKey case-folds the key. A Caser is stateful, so each call gets its own.
func normalizeKey(key string) string {
	return cases.Fold().String(key)
}

// InsertWithData adds a string with associated data.
// If the key already exists its count is incremented and the original data is kept.
// Returns true if this is a new insertion, false if it already existed.
func (t *Trie[T]) InsertWithData(value string, data T) bool {
	if value == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range normalizeKey(value) {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode[T]()
		}
		node = node.children[ch]
	}

	node.count++
	if node.isEnd {
		return false
	}

	node.isEnd = true
	node.value = value
	node.data = data
	t.size++
	return true
}

// find returns the node at the end of key, or nil. Caller must hold the lock.
func (t *Trie[T]) find(key string) *TrieNode[T] {
	node := t.root
	for _, ch := range normalizeKey(key) {
		if node = node.children[ch]; node == nil {
			return nil
		}
	}
	return node
}

// AutocompleteWithLimit returns strings starting with prefix, limited to n results.
// Results are sorted by count (descending), then alphabetically.
func (t *Trie[T]) AutocompleteWithLimit(prefix string, limit int) []TrieResult[T] {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(prefix)
	if node == nil {
		return nil
	}

	var results []TrieResult[T]
	collectWords(node, &results)
	sortResults(results)

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func collectWords[T any](node *TrieNode[T], results *[]TrieResult[T]) {
	if node.isEnd {
		*results = append(*results, TrieResult[T]{
			Value: node.value,
			Data:  node.data,
			Count: node.count,
		})
	}
	for _, child := range node.children {
		collectWords(child, results)
	}
}

func sortResults[T any](results []TrieResult[T]) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Value < results[j].Value
	})
}

// Size returns the number of complete strings in the Trie.
func (t *Trie[T]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}
