// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"container/heap"
	"sort"
)

// scored is a corpus row and its similarity to the query.
type scored struct {
	index int
	sim   float64
}

// better reports whether a ranks ahead of b: higher similarity first,
// lower row index on ties.
func better(a, b scored) bool {
	if a.sim != b.sim {
		return a.sim > b.sim
	}
	return a.index < b.index
}

// scoredHeap keeps the worst retained entry at the root.
type scoredHeap []scored

func (h scoredHeap) Len() int           { return len(h) }
func (h scoredHeap) Less(i, j int) bool { return better(h[j], h[i]) }
func (h scoredHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x any)        { *h = append(*h, x.(scored)) }
func (h *scoredHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK selects the n best entries offered to it in O(total log n).
type topK struct {
	n int
	h scoredHeap
}

func newTopK(n int) *topK {
	return &topK{n: n, h: make(scoredHeap, 0, n)}
}

// offer considers s for inclusion.
func (t *topK) offer(s scored) {
	if t.n <= 0 {
		return
	}
	if len(t.h) < t.n {
		heap.Push(&t.h, s)
		return
	}
	if better(s, t.h[0]) {
		t.h[0] = s
		heap.Fix(&t.h, 0)
	}
}

// sorted returns the retained entries best first.
func (t *topK) sorted() []scored {
	out := make([]scored, len(t.h))
	copy(out, t.h)
	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	return out
}
