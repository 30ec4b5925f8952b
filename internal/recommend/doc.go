// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

// Package recommend ranks media titles by embedding similarity and filters
// the ranked neighbours by metadata.
//
// # Architecture
//
// A query runs in two stages:
//
//   - Ranker: cosine similarity between the query title's embedding and every
//     row of the corpus, keeping the k+1 best in a bounded heap and dropping
//     the first (the query itself). Ties break by row order.
//   - FilterChain: conjunctive predicates over the ranked candidates (type,
//     country, genre, tag, score floor, year range, rating ceiling). Explain
//     names the predicates a candidate fails.
//
// Filtering happens after ranking, so a filtered result may hold fewer than
// k entries.
//
// Service combines both stages with precomputed facets, a case-folded title
// trie for autocomplete and an optional TTL LRU response cache. Ranking is a
// pure function of an immutable corpus, which makes cached results exact.
//
// # Usage
//
//	svc, err := recommend.NewService(c, recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	res, err := svc.Recommend(ctx, recommend.Query{
//	    Title: "Signal",
//	    K:     5,
//	    Filters: recommend.FilterCriteria{
//	        Genres:    []string{"Thriller"},
//	        MaxRating: "15+",
//	    },
//	})
//
// # Thread Safety
//
// Ranker and FilterChain hold no mutable state. Service is safe for
// concurrent use; its only mutable state is the internally locked cache.
package recommend
