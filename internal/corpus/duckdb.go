// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/mediarec/internal/logging"
)

// DefaultEmbeddingColumn is the Parquet column holding embedding vectors.
const DefaultEmbeddingColumn = "embedding"

// openDuckDB opens a throwaway in-memory DuckDB used only to scan artifacts.
func openDuckDB() (*sql.DB, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// A single connection keeps scan order deterministic.
	conn.SetMaxOpenConns(1)
	return conn, nil
}

func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close duckdb connection")
	}
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// quoteIdent renders s as a SQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// readTabularRecords reads a CSV or Parquet records file through DuckDB.
// CSV columns are read as text; Parquet keeps native types, which the
// normalizer renders.
func readTabularRecords(ctx context.Context, path, format string) ([]rawRecord, error) {
	var query string
	switch format {
	case formatCSV:
		query = fmt.Sprintf("SELECT * FROM read_csv(%s, header = true, all_varchar = true)", quoteLiteral(path))
	case formatParquet:
		query = fmt.Sprintf("SELECT * FROM read_parquet(%s)", quoteLiteral(path))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	conn, err := openDuckDB()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(conn)

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var out []rawRecord
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(out), err)
		}
		rec := newRawRecord(len(columns))
		for i, col := range columns {
			rec.set(col, values[i])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return out, nil
}

// readParquetEmbeddings reads a list column of floats, one row per record.
func readParquetEmbeddings(ctx context.Context, path, column string) ([][]float32, error) {
	if column == "" {
		column = DefaultEmbeddingColumn
	}

	conn, err := openDuckDB()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(conn)

	query := fmt.Sprintf("SELECT %s FROM read_parquet(%s)", quoteIdent(column), quoteLiteral(path))
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	defer rows.Close()

	var vectors [][]float32
	for rows.Next() {
		var raw any
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(vectors), err)
		}
		vec, err := toFloat32s(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(vectors), err)
		}
		vectors = append(vectors, vec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return vectors, nil
}

func toFloat32s(raw any) ([]float32, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: embedding column holds %T, want a list", ErrDimension, raw)
	}
	vec := make([]float32, len(list))
	for i, item := range list {
		switch x := item.(type) {
		case float32:
			vec[i] = x
		case float64:
			vec[i] = float32(x)
		case int32:
			vec[i] = float32(x)
		case int64:
			vec[i] = float32(x)
		default:
			return nil, fmt.Errorf("%w: element %d is %T", ErrDimension, i, item)
		}
	}
	return vec, nil
}
