// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediarec/internal/corpus"
)

// cancelCheckInterval is how many rows are scored between context checks.
const cancelCheckInterval = 1024

// Ranker scores every corpus row against a query row by cosine similarity.
// It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	corpus *corpus.Corpus
}

// NewRanker creates a Ranker over c.
func NewRanker(c *corpus.Corpus) *Ranker {
	return &Ranker{corpus: c}
}

// Rank returns up to k records most similar to the record titled title,
// most similar first.
//
// An unknown title or k <= 0 yields an empty, non-nil slice and no error.
func (r *Ranker) Rank(ctx context.Context, title string, k int) ([]RankedCandidate, error) {
	idx, found := r.corpus.IndexOfTitle(title)
	if !found || k <= 0 {
		return []RankedCandidate{}, nil
	}
	return r.RankIndex(ctx, idx, k)
}

// RankIndex ranks neighbours of row idx.
//
// The k+1 best rows are selected and the first is dropped on the assumption
// that it is the query itself. With duplicate embeddings the dropped row may
// be a different record that ties the query.
func (r *Ranker) RankIndex(ctx context.Context, idx, k int) ([]RankedCandidate, error) {
	if k <= 0 {
		return []RankedCandidate{}, nil
	}
	if idx < 0 || idx >= r.corpus.Len() {
		return nil, fmt.Errorf("rank: row %d out of range [0, %d)", idx, r.corpus.Len())
	}

	query := r.corpus.Vector(idx)
	queryNorm := r.corpus.Norm(idx)

	best := newTopK(k + 1)
	for i := 0; i < r.corpus.Len(); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("rank cancelled: %w", err)
			}
		}
		best.offer(scored{
			index: i,
			sim:   cosine(query, r.corpus.Vector(i), queryNorm, r.corpus.Norm(i)),
		})
	}

	selected := best.sorted()
	if len(selected) > 0 {
		selected = selected[1:]
	}

	out := make([]RankedCandidate, len(selected))
	for i, s := range selected {
		out[i] = newCandidate(r.corpus.Record(s.index), s.sim)
	}
	return out, nil
}
