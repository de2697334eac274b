// ABOUTME: Error taxonomy shared across the knowledge pipeline
// ABOUTME: Callers classify failures with errors.Is against these sentinels
package models

import "errors"

var (
	// ErrUnsupportedFormat is returned when a document has a file type the
	// ingestion service cannot parse. Nothing is written.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyInput is returned for blank note text, before any write.
	ErrEmptyInput = errors.New("empty input")

	// ErrDimensionMismatch means the embedding backend and the collection
	// disagree on vector dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrBackendUnavailable wraps embedding and vector store failures.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrGenerationFailure wraps generative backend failures.
	ErrGenerationFailure = errors.New("answer generation failed")
)
