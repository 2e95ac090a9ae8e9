// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PDFExtractor: Plain text from PDF bytes (pdftotext)
//   - ListingExtractor: Anchor texts from a listing page
//   - CorpusStore: Corpus artifact persistence (JSON or SQLite)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - BodyExtractor: Only needed when HTML body indexing is enabled.
//   - TreeWatcher: Only needed by the watch command.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
