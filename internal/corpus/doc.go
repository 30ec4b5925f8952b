// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package corpus loads the two static artifacts that back the recommender: the
media metadata table and the embedding matrix.

Both artifacts are produced by an offline embedding job and are read exactly
once at startup. The resulting *Corpus is immutable, so it can be shared by
any number of request goroutines without locking.

# Artifact Formats

The format of each artifact is selected by file extension:

	Records:     .json (array), .jsonl / .ndjson, .csv, .parquet
	Embeddings:  .json (array of arrays), .npy (float32/float64, 2-D), .parquet

CSV and Parquet files are read through an in-memory DuckDB connection, which
handles quoting, type inference and compression. JSON is decoded with
goccy/go-json.

# Invariants

Load validates the contract with the producing job before anything is
served:

  - len(embeddings) == len(records), aligned by row position
  - every vector has the same, non-zero dimension
  - every record has a non-empty id and title, and ids are unique

Optional record fields are resolved to their documented defaults once, at
load time. A missing cover resolves to the configured placeholder image.

# Usage

	c, err := corpus.Load(ctx, corpus.Options{
	    RecordsPath:    "/data/media.json",
	    EmbeddingsPath: "/data/embeddings.npy",
	})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load corpus")
	}
	idx, ok := c.IndexOfTitle("Move to Heaven")
*/
package corpus
