// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/tomtom215/mediarec/internal/corpus"
)

// testRecord builds a record with split genre and tag lists.
func testRecord(id, title string, mutate func(*corpus.MediaRecord)) corpus.MediaRecord {
	rec := corpus.MediaRecord{
		ID:    id,
		Title: title,
		Type:  "Drama",
		Cover: corpus.DefaultPlaceholderCover,
	}
	if mutate != nil {
		mutate(&rec)
	}
	rec.GenreList = corpus.SplitList(rec.Genres)
	rec.TagList = corpus.SplitList(rec.Tags)
	return rec
}

// newTestCorpus is five titles in four dimensions. Relative to "Signal":
// Tunnel ~0.99, Stranger ~0.71, Kingdom 0, Mirror -1.
func newTestCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()

	records := []corpus.MediaRecord{
		testRecord("1", "Signal", func(r *corpus.MediaRecord) {
			r.Country, r.Genres, r.Tags = "South Korea", "Thriller, Mystery", "Time Travel, Detective"
			r.Score, r.Date, r.Rating = "9.1/10", "Jan 22, 2016 - Mar 12, 2016", "15+ - Teens 15 or older"
		}),
		testRecord("2", "Tunnel", func(r *corpus.MediaRecord) {
			r.Country, r.Genres, r.Tags = "South Korea", "Thriller, Crime", "Time Travel, Serial Killer"
			r.Score, r.Date, r.Rating = "8.6/10", "2017-03-25", "15+ - Teens 15 or older"
		}),
		testRecord("3", "Stranger", func(r *corpus.MediaRecord) {
			r.Country, r.Genres, r.Tags = "South Korea", "Mystery, Law", "Prosecutor"
			r.Score, r.Date, r.Rating = "8.9/10", "Jun 10, 2017", "18+ Restricted (violence & profanity)"
		}),
		testRecord("4", "Kingdom", func(r *corpus.MediaRecord) {
			r.Type, r.Country, r.Genres = "Movie", "South Korea", "Horror, Historical"
			r.Score, r.Date = "8.4", "2019"
		}),
		testRecord("5", "Mirror", func(r *corpus.MediaRecord) {
			r.Country, r.Genres, r.Tags = "Japan", "Romance", "Office"
			r.Score, r.Date, r.Rating = "", "", "G - All Ages"
		}),
	}
	vectors := [][]float32{
		{1, 0, 0, 0},
		{0.99, 0.1411, 0, 0},
		{0.7, 0.7, 0, 0},
		{0, 0, 1, 0},
		{-1, 0, 0, 0},
	}

	c, err := corpus.New(records, vectors, corpus.Source{RecordsPath: "media.json", EmbeddingsPath: "embeddings.npy"})
	if err != nil {
		t.Fatalf("corpus.New() error = %v", err)
	}
	return c
}

// newRandomCorpus builds n records with distinct random vectors.
func newRandomCorpus(t *testing.T, n, dim int, seed int64) *corpus.Corpus {
	t.Helper()

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test data
	records := make([]corpus.MediaRecord, n)
	vectors := make([][]float32, n)
	types := []string{"Drama", "Movie", "Special"}
	genres := []string{"Action", "Romance", "Comedy", "Thriller", "Action, Romance"}
	ratings := []string{"G - All Ages", "13+ - Teens 13 or older", "15+", "18+", "R - Restricted", "Not Yet Rated", ""}

	for i := range records {
		records[i] = testRecord(fmt.Sprintf("id-%d", i), fmt.Sprintf("Title %d", i), func(r *corpus.MediaRecord) {
			r.Type = types[i%len(types)]
			r.Genres = genres[i%len(genres)]
			r.Score = fmt.Sprintf("%.1f/10", 5+rng.Float64()*5)
			r.Date = fmt.Sprintf("%d-01-01", 1990+i%35)
			r.Rating = ratings[i%len(ratings)]
		})
		v := make([]float32, dim)
		for j := range v {
			v[j] = float32(rng.NormFloat64())
		}
		vectors[i] = v
	}

	c, err := corpus.New(records, vectors, corpus.Source{})
	if err != nil {
		t.Fatalf("corpus.New() error = %v", err)
	}
	return c
}

func titles(cands []RankedCandidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Title
	}
	return out
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
