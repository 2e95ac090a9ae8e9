// Package sqlite provides a SQLite-backed corpus artifact.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The corpus is kept in a single documents table whose
// position column preserves the build's walk order.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
package sqlite
