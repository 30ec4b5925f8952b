// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
)

// DefaultPlaceholderCover is used for records without a cover image.
const DefaultPlaceholderCover = "https://via.placeholder.com/120x180.png?text=No+Image"

// MediaRecord is one title in the corpus.
//
// Genres, Tags, Score, Date and Rating keep the raw strings produced by the
// offline job; filtering parses them on demand. GenreList and TagList are the
// comma-split, trimmed forms of Genres and Tags.
type MediaRecord struct {
	// Index is the record's row position, which is also its embedding row.
	Index int `json:"-"`

	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Type          string              `json:"type"`
	Country       string              `json:"country"`
	Genres        string              `json:"genres"`
	GenreList     []string            `json:"genre_list"`
	Tags          string              `json:"tags"`
	TagList       []string            `json:"tag_list"`
	Score         string              `json:"score"`
	Date          string              `json:"date"`
	Rating        string              `json:"rating"`
	Episodes      *int                `json:"episodes,omitempty"`
	Network       string              `json:"network"`
	Cover         string              `json:"cover"`
	Synopsis      string              `json:"synopsis"`
	Directors     string              `json:"directors"`
	Screenwriters string              `json:"screenwriters"`
	Cast          map[string][]string `json:"cast"`
}

// Source describes where a corpus was loaded from.
type Source struct {
	RecordsPath    string `json:"records_path"`
	EmbeddingsPath string `json:"embeddings_path"`
}

// Corpus is the immutable, row-aligned pair of records and embeddings.
// All methods are safe for concurrent use; nothing mutates a Corpus after New.
type Corpus struct {
	records  []MediaRecord
	vectors  [][]float32
	norms    []float64
	dim      int
	byID     map[string]int
	byTitle  map[string]int
	source   Source
	loadedAt time.Time
}

// New validates records and vectors and builds the lookup indexes.
// Record Index fields are overwritten with their row position.
func New(records []MediaRecord, vectors [][]float32, source Source) (*Corpus, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}
	if len(records) != len(vectors) {
		return nil, fmt.Errorf("%w: %d records, %d embeddings", ErrMisaligned, len(records), len(vectors))
	}

	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrDimension)
	}

	c := &Corpus{
		records:  records,
		vectors:  vectors,
		norms:    make([]float64, len(vectors)),
		dim:      dim,
		byID:     make(map[string]int, len(records)),
		byTitle:  make(map[string]int, len(records)),
		source:   source,
		loadedAt: time.Now(),
	}

	for i := range records {
		rec := &records[i]
		rec.Index = i

		if rec.ID == "" {
			return nil, fmt.Errorf("%w: row %d has no id", ErrMissingField, i)
		}
		if rec.Title == "" {
			return nil, fmt.Errorf("%w: row %d (id %s) has no title", ErrMissingField, i, rec.ID)
		}
		if prev, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateID, rec.ID, prev, i)
		}
		c.byID[rec.ID] = i

		// First record wins for duplicate titles.
		key := FoldTitle(rec.Title)
		if _, seen := c.byTitle[key]; !seen {
			c.byTitle[key] = i
		}

		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrDimension, i, len(vectors[i]), dim)
		}
		if j := nonFinite(vectors[i]); j >= 0 {
			return nil, fmt.Errorf("%w: row %d column %d", ErrNonFinite, i, j)
		}
		c.norms[i] = norm(vectors[i])
	}

	return c, nil
}

// FoldTitle returns the case-folded form used for title lookups.
// A new Caser is created per call because cases.Caser is stateful.
func FoldTitle(title string) string {
	return cases.Fold().String(title)
}

// nonFinite returns the position of the first NaN or Inf in v, or -1.
func nonFinite(v []float32) int {
	for j, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return j
		}
	}
	return -1
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Len returns the number of records.
func (c *Corpus) Len() int { return len(c.records) }

// Dimension returns the embedding dimension.
func (c *Corpus) Dimension() int { return c.dim }

// Record returns the record at row i.
func (c *Corpus) Record(i int) MediaRecord { return c.records[i] }

// Records returns the backing record slice. Callers must not modify it.
func (c *Corpus) Records() []MediaRecord { return c.records }

// Vector returns the embedding at row i. Callers must not modify it.
func (c *Corpus) Vector(i int) []float32 { return c.vectors[i] }

// Norm returns the precomputed L2 norm of row i.
func (c *Corpus) Norm(i int) float64 { return c.norms[i] }

// IndexOfTitle returns the row of the first record whose title matches
// title case-insensitively.
func (c *Corpus) IndexOfTitle(title string) (int, bool) {
	i, ok := c.byTitle[FoldTitle(title)]
	return i, ok
}

// IndexOfID returns the row of the record with the given id.
func (c *Corpus) IndexOfID(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// Source returns the artifact paths the corpus was loaded from.
func (c *Corpus) Source() Source { return c.source }

// LoadedAt returns when the corpus was built.
func (c *Corpus) LoadedAt() time.Time { return c.loadedAt }
