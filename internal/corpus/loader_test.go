// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const testRecordsJSON = `[
  {"id": 1, "title": "Move to Heaven", "type": "Drama", "country": "South Korea",
   "genres": "Life, Drama, Family", "tags": "Autism, Death", "score": "9.2/10",
   "date": "May 14, 2021", "rating": "18+ - Restricted", "episodes": 10,
   "cast": {"Main Role": ["Lee Je Hoon", "Tang Joon Sang"]}},
  {"id": 2, "title": "Signal", "type": "Drama", "country": "South Korea",
   "genres": "Thriller, Mystery", "tags": "", "score": "9.0/10",
   "date": "Jan 22, 2016", "rating": "15+ - Teens 15 or older", "cover": "https://img/2.jpg"}
]`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// npyBytes encodes a C-order matrix the way numpy.save does for version 1.0.
func npyBytes(t *testing.T, descr string, rows, cols int, data any) []byte {
	t.Helper()

	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%d, %d), }", descr, rows, cols)
	// Pad so the data starts on a 64-byte boundary, terminated by a newline.
	total := len(npyMagic) + 4 + len(header) + 1
	for total%64 != 0 {
		header += " "
		total++
	}
	header += "\n"

	var buf bytes.Buffer
	buf.Write(npyMagic)
	buf.Write([]byte{1, 0})
	if err := binary.Write(&buf, binary.LittleEndian, uint16(len(header))); err != nil {
		t.Fatal(err)
	}
	buf.WriteString(header)
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	recordsPath := writeFile(t, dir, "records.json", []byte(testRecordsJSON))
	embeddingsPath := writeFile(t, dir, "embeddings.json", []byte(`[[1, 0, 0], [0.5, 0.5, 0]]`))

	c, err := Load(context.Background(), Options{
		RecordsPath:    recordsPath,
		EmbeddingsPath: embeddingsPath,
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Len() != 2 || c.Dimension() != 3 {
		t.Fatalf("Len()=%d Dimension()=%d, want 2 and 3", c.Len(), c.Dimension())
	}

	first := c.Record(0)
	if first.ID != "1" {
		t.Errorf("ID = %q, want 1", first.ID)
	}
	if first.Cover != DefaultPlaceholderCover {
		t.Errorf("Cover = %q, want placeholder", first.Cover)
	}
	if first.Episodes == nil || *first.Episodes != 10 {
		t.Errorf("Episodes = %v, want 10", first.Episodes)
	}
	if got := first.Cast["Main Role"]; len(got) != 2 || got[0] != "Lee Je Hoon" {
		t.Errorf("Cast[Main Role] = %v", got)
	}

	second := c.Record(1)
	if second.Cover != "https://img/2.jpg" {
		t.Errorf("Cover = %q", second.Cover)
	}
	if len(second.TagList) != 0 {
		t.Errorf("TagList = %v, want empty", second.TagList)
	}
	if second.Episodes != nil {
		t.Errorf("Episodes = %d, want nil", *second.Episodes)
	}
}

func TestLoad_JSONLAndNPY(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonl := "{\"id\": \"a\", \"title\": \"One\"}\n\n{\"id\": \"b\", \"title\": \"Two\"}\n"
	recordsPath := writeFile(t, dir, "records.jsonl", []byte(jsonl))

	tests := []struct {
		name  string
		descr string
		data  any
	}{
		{"float32", "<f4", []float32{1, 2, 3, 4}},
		{"float64", "<f8", []float64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embeddingsPath := writeFile(t, dir, tt.name+".npy", npyBytes(t, tt.descr, 2, 2, tt.data))

			c, err := Load(context.Background(), Options{
				RecordsPath:    recordsPath,
				EmbeddingsPath: embeddingsPath,
			})
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if c.Len() != 2 || c.Dimension() != 2 {
				t.Fatalf("Len()=%d Dimension()=%d, want 2 and 2", c.Len(), c.Dimension())
			}
			if v := c.Vector(1); v[0] != 3 || v[1] != 4 {
				t.Errorf("Vector(1) = %v, want [3 4]", v)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	recordsPath := writeFile(t, dir, "records.json", []byte(testRecordsJSON))
	oneRow := writeFile(t, dir, "one.json", []byte(`[[1, 0]]`))
	ragged := writeFile(t, dir, "ragged.json", []byte(`[[1, 0], [1, 0, 0]]`))
	fortran := writeFile(t, dir, "fortran.npy", bytes.Replace(
		npyBytes(t, "<f4", 2, 2, []float32{1, 2, 3, 4}),
		[]byte("'fortran_order': False"), []byte("'fortran_order': True "), 1))
	int64s := writeFile(t, dir, "ints.npy", npyBytes(t, "<i8", 2, 1, []int64{1, 2}))
	notNPY := writeFile(t, dir, "bad.npy", []byte("not a numpy file at all"))
	huge := writeFile(t, dir, "huge.npy", npyBytes(t, "<f4", 2000000000, 2000000000, []float32{1}))
	overflow := writeFile(t, dir, "overflow.npy", npyBytes(t, "<f8", math.MaxInt32, math.MaxInt32, []float64{1}))
	truncated := writeFile(t, dir, "truncated.npy", npyBytes(t, "<f4", 2, 3, []float32{1, 2, 3, 4}))
	nan := writeFile(t, dir, "nan.npy", npyBytes(t, "<f4", 2, 2, []float32{1, 0, float32(math.NaN()), 1}))

	tests := []struct {
		name       string
		records    string
		embeddings string
		wantErr    error
	}{
		{"misaligned", recordsPath, oneRow, ErrMisaligned},
		{"ragged", recordsPath, ragged, ErrDimension},
		{"unsupported records extension", filepath.Join(dir, "records.xml"), oneRow, ErrUnsupportedFormat},
		{"unsupported embeddings extension", recordsPath, filepath.Join(dir, "vectors.pkl"), ErrUnsupportedFormat},
		{"fortran order", recordsPath, fortran, ErrUnsupportedFormat},
		{"integer dtype", recordsPath, int64s, ErrUnsupportedFormat},
		{"bad magic", recordsPath, notNPY, errNPYHeader},
		{"shape larger than file", recordsPath, huge, errNPYHeader},
		{"shape overflows", recordsPath, overflow, errNPYHeader},
		{"truncated payload", recordsPath, truncated, errNPYHeader},
		{"non-finite value", recordsPath, nan, ErrNonFinite},
		{"missing file", filepath.Join(dir, "missing.json"), oneRow, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(context.Background(), Options{
				RecordsPath:    tt.records,
				EmbeddingsPath: tt.embeddings,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordsFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a.json":      formatJSON,
		"a.JSONL":     formatJSONL,
		"a.ndjson":    formatJSONL,
		"dir/a.csv":   formatCSV,
		"a.b.parquet": formatParquet,
	}
	for path, want := range tests {
		got, err := recordsFormat(path)
		if err != nil || got != want {
			t.Errorf("recordsFormat(%q) = (%q, %v), want %q", path, got, err, want)
		}
	}
}
