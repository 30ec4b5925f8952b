// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// maxJSONLineSize bounds a single JSONL record.
const maxJSONLineSize = 16 << 20

// readJSONRecords decodes a JSON array of record objects.
func readJSONRecords(r io.Reader) ([]rawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	out := make([]rawRecord, len(rows))
	for i, row := range rows {
		out[i] = fromMap(row)
	}
	return out, nil
}

// readJSONLRecords decodes one record object per line. Blank lines are skipped.
func readJSONLRecords(r io.Reader) ([]rawRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLineSize)

	var out []rawRecord
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var row map[string]any
		if err := dec.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode records line %d: %w", line, err)
		}
		out = append(out, fromMap(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return out, nil
}

func fromMap(row map[string]any) rawRecord {
	rec := newRawRecord(len(row))
	for k, v := range row {
		rec.set(k, v)
	}
	return rec
}

// readJSONEmbeddings decodes an array of float arrays.
func readJSONEmbeddings(r io.Reader) ([][]float32, error) {
	var vectors [][]float32
	if err := json.NewDecoder(r).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("decode embeddings: %w", err)
	}
	return vectors, nil
}
