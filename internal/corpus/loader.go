// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/mediarec/internal/logging"
)

// Artifact formats, keyed by file extension.
const (
	formatJSON    = "json"
	formatJSONL   = "jsonl"
	formatCSV     = "csv"
	formatParquet = "parquet"
	formatNPY     = "npy"
)

// Options configures Load.
type Options struct {
	// RecordsPath is the metadata table (.json, .jsonl, .ndjson, .csv, .parquet).
	RecordsPath string

	// EmbeddingsPath is the embedding matrix (.json, .npy, .parquet).
	EmbeddingsPath string

	// EmbeddingColumn names the Parquet list column holding vectors.
	// Default: "embedding"
	EmbeddingColumn string

	// PlaceholderCover replaces missing cover URLs.
	// Default: DefaultPlaceholderCover
	PlaceholderCover string
}

// Load reads and validates both artifacts and returns the immutable corpus.
func Load(ctx context.Context, opts Options) (*Corpus, error) {
	if opts.PlaceholderCover == "" {
		opts.PlaceholderCover = DefaultPlaceholderCover
	}

	start := time.Now()
	records, err := LoadRecords(ctx, opts.RecordsPath, opts.PlaceholderCover)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("path", opts.RecordsPath).
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Loaded media records")

	start = time.Now()
	vectors, err := LoadEmbeddings(ctx, opts.EmbeddingsPath, opts.EmbeddingColumn)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Str("path", opts.EmbeddingsPath).
		Int("rows", len(vectors)).
		Dur("duration", time.Since(start)).
		Msg("Loaded embeddings")

	c, err := New(records, vectors, Source{
		RecordsPath:    opts.RecordsPath,
		EmbeddingsPath: opts.EmbeddingsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid corpus: %w", err)
	}
	return c, nil
}

// LoadRecords reads the metadata table and resolves every row to a MediaRecord.
func LoadRecords(ctx context.Context, path, placeholderCover string) ([]MediaRecord, error) {
	format, err := recordsFormat(path)
	if err != nil {
		return nil, err
	}

	var raw []rawRecord
	switch format {
	case formatCSV, formatParquet:
		raw, err = readTabularRecords(ctx, path, format)
	default:
		raw, err = readFile(path, func(f *os.File) ([]rawRecord, error) {
			if format == formatJSONL {
				return readJSONLRecords(f)
			}
			return readJSONRecords(f)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load records from %s: %w", path, err)
	}

	records := make([]MediaRecord, len(raw))
	for i, row := range raw {
		records[i] = row.toRecord(placeholderCover)
	}
	return records, nil
}

// LoadEmbeddings reads the embedding matrix.
func LoadEmbeddings(ctx context.Context, path, column string) ([][]float32, error) {
	format, err := embeddingsFormat(path)
	if err != nil {
		return nil, err
	}

	var vectors [][]float32
	switch format {
	case formatParquet:
		vectors, err = readParquetEmbeddings(ctx, path, column)
	case formatNPY:
		vectors, err = readFile(path, func(f *os.File) ([][]float32, error) {
			info, err := f.Stat()
			if err != nil {
				return nil, err
			}
			return readNPYEmbeddings(f, info.Size())
		})
	default:
		vectors, err = readFile(path, func(f *os.File) ([][]float32, error) {
			return readJSONEmbeddings(f)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load embeddings from %s: %w", path, err)
	}
	logging.Debug().Str("format", format).Str("path", path).Msg("Decoded embedding matrix")
	return vectors, nil
}

func readFile[T any](path string, decode func(*os.File) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return zero, err
	}
	defer func() {
		_ = f.Close()
	}()
	return decode(f)
}

func extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func recordsFormat(path string) (string, error) {
	switch ext := extension(path); ext {
	case "json":
		return formatJSON, nil
	case "jsonl", "ndjson":
		return formatJSONL, nil
	case "csv":
		return formatCSV, nil
	case "parquet":
		return formatParquet, nil
	default:
		return "", fmt.Errorf("%w: records file %q", ErrUnsupportedFormat, path)
	}
}

func embeddingsFormat(path string) (string, error) {
	switch ext := extension(path); ext {
	case "json":
		return formatJSON, nil
	case "npy":
		return formatNPY, nil
	case "parquet":
		return formatParquet, nil
	default:
		return "", fmt.Errorf("%w: embeddings file %q", ErrUnsupportedFormat, path)
	}
}
