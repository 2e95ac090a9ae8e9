// Package file provides the TOML configuration store used by the CLI.
//
// Settings are addressed by dotted keys ("build.source_root") and written
// back as nested TOML tables, so the file stays hand-editable:
//
//	[build]
//	source_root = "pdfs"
//	render_root = "site"
package file
