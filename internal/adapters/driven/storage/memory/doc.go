// Package memory provides in-memory implementations of driven ports.
// They back tests and never persist anything.
package memory
