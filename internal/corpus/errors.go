// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package corpus

import "errors"

// Sentinel errors returned (wrapped) by Load and New.
var (
	// ErrUnsupportedFormat indicates an artifact extension with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported artifact format")

	// ErrEmptyCorpus indicates the records artifact contained no rows.
	ErrEmptyCorpus = errors.New("corpus has no records")

	// ErrMisaligned indicates the record and embedding row counts differ.
	ErrMisaligned = errors.New("records and embeddings are not row-aligned")

	// ErrDimension indicates an empty vector or a ragged embedding matrix.
	ErrDimension = errors.New("embedding dimension is inconsistent")

	// ErrNonFinite indicates a NaN or infinite embedding value.
	ErrNonFinite = errors.New("embedding contains a non-finite value")

	// ErrDuplicateID indicates two records share the same id.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrMissingField indicates a record without an id or title.
	ErrMissingField = errors.New("record is missing a required field")
)
