// Package domain defines the core business entities for docsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One indexed unit (title, link path, optional body text)
//   - Corpus: The ordered Document sequence produced by one build
//   - QueryResult: A Document decorated with scores and snippets for one query
//   - BuildReport: Per-entry outcomes of a corpus build
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
