package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unknown corpus artifact format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtractionFailed indicates an extractor could not produce text.
	ErrExtractionFailed = errors.New("extraction failed")

	// Engine Errors.

	// ErrAlreadyLoaded indicates Load was called on an engine that has
	// already attempted a load. Loads are never retried.
	ErrAlreadyLoaded = errors.New("corpus already loaded")
)
