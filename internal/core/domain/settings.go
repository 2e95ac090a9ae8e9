package domain

import "strings"

const unknownDescription = "Unknown"

// CorpusFormat identifies the on-disk encoding of the corpus artifact.
type CorpusFormat string

// Available corpus formats.
const (
	// CorpusFormatAuto infers the format from the artifact file extension.
	CorpusFormatAuto CorpusFormat = ""

	// CorpusFormatJSON is a JSON array of documents.
	CorpusFormatJSON CorpusFormat = "json"

	// CorpusFormatSQLite is a SQLite database with one documents table.
	CorpusFormatSQLite CorpusFormat = "sqlite"
)

// IsValid returns true if the format is recognised.
func (f CorpusFormat) IsValid() bool {
	switch f {
	case CorpusFormatAuto, CorpusFormatJSON, CorpusFormatSQLite:
		return true
	default:
		return false
	}
}

// Resolve returns the concrete format for an artifact path.
// Explicit formats are returned unchanged; auto is inferred from the extension.
func (f CorpusFormat) Resolve(path string) CorpusFormat {
	if f != CorpusFormatAuto {
		return f
	}
	lower := strings.ToLower(path)
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(lower, ext) {
			return CorpusFormatSQLite
		}
	}
	return CorpusFormatJSON
}

// String returns the string representation.
func (f CorpusFormat) String() string {
	if f == CorpusFormatAuto {
		return "auto"
	}
	return string(f)
}

// BuildSettings holds corpus builder configuration.
type BuildSettings struct {
	// SourceRoot is the source document tree.
	SourceRoot string

	// RenderRoot is the rendered HTML tree.
	RenderRoot string

	// ListingName is the listing page file name.
	ListingName string

	// SkipDirs are reserved directory names that are never descended.
	SkipDirs []string

	// ExcludeFiles are HTML file names never indexed.
	ExcludeFiles []string

	// IndexHTMLBodies enables body extraction of rendered HTML pages.
	IndexHTMLBodies bool

	// LinkPrefix is prepended to every document path.
	LinkPrefix string

	// RateLimit caps extractor calls per second. Zero means unlimited.
	RateLimit int
}

// Request converts the settings into a build request.
func (b BuildSettings) Request() BuildRequest {
	return BuildRequest{
		SourceRoot:      b.SourceRoot,
		RenderRoot:      b.RenderRoot,
		LinkPrefix:      b.LinkPrefix,
		IndexHTMLBodies: b.IndexHTMLBodies,
		Rules: ClassifyRules{
			ListingName:  b.ListingName,
			SkipDirs:     b.SkipDirs,
			ExcludeFiles: b.ExcludeFiles,
		},
	}
}

// CorpusSettings holds artifact location and encoding.
type CorpusSettings struct {
	// Path is the artifact file path.
	Path string

	// Format is the artifact encoding.
	Format CorpusFormat
}

// ResolvedFormat returns the concrete artifact format.
func (c CorpusSettings) ResolvedFormat() CorpusFormat {
	return c.Format.Resolve(c.Path)
}

// SearchSettings holds query engine configuration.
type SearchSettings struct {
	// Limit is the default maximum number of results. Zero means all.
	Limit int

	// MaxSnippets caps snippets per result.
	MaxSnippets int

	// ContextChars is the snippet context on each side of a match.
	ContextChars int
}

// PDFSettings holds PDF extractor configuration.
type PDFSettings struct {
	// Command is the pdftotext executable.
	Command string
}

// WatchSettings holds tree watcher configuration.
type WatchSettings struct {
	// DebounceMS is the quiet period before a rebuild, in milliseconds.
	DebounceMS int
}

// AppSettings holds all application settings.
type AppSettings struct {
	Build  BuildSettings
	Corpus CorpusSettings
	Search SearchSettings
	PDF    PDFSettings
	Watch  WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Both trees default to the working directory, matching a site
// where PDFs and their renderings live side by side.
func DefaultAppSettings() AppSettings {
	rules := DefaultClassifyRules()
	return AppSettings{
		Build: BuildSettings{
			SourceRoot:   ".",
			RenderRoot:   ".",
			ListingName:  rules.ListingName,
			SkipDirs:     rules.SkipDirs,
			ExcludeFiles: rules.ExcludeFiles,
		},
		Corpus: CorpusSettings{
			Path:   "search-index.json",
			Format: CorpusFormatAuto,
		},
		Search: SearchSettings{
			Limit:        0,
			MaxSnippets:  DefaultMaxSnippets,
			ContextChars: DefaultSnippetContext,
		},
		PDF: PDFSettings{
			Command: "pdftotext",
		},
		Watch: WatchSettings{
			DebounceMS: 500,
		},
	}
}
