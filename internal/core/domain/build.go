package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Category is the extraction category of a directory entry.
type Category int

const (
	// CategoryIgnore marks entries that contribute nothing to the corpus.
	CategoryIgnore Category = iota

	// CategoryListing marks a listing page whose anchors become documents.
	CategoryListing

	// CategoryPDF marks a PDF source document.
	CategoryPDF

	// CategoryHTML marks a rendered HTML document that is not a listing page.
	CategoryHTML
)

// String returns the string representation.
func (c Category) String() string {
	switch c {
	case CategoryIgnore:
		return "ignore"
	case CategoryListing:
		return "listing"
	case CategoryPDF:
		return "pdf"
	case CategoryHTML:
		return "html"
	default:
		return unknownDescription
	}
}

// ClassifyRules configures how file and directory names are classified.
type ClassifyRules struct {
	// ListingName is the canonical listing page file name.
	ListingName string

	// SkipDirs are reserved directory names pruned before descent.
	SkipDirs []string

	// ExcludeFiles are HTML file names never indexed as documents.
	ExcludeFiles []string
}

// DefaultClassifyRules returns the rules used when nothing is configured.
func DefaultClassifyRules() ClassifyRules {
	return ClassifyRules{
		ListingName:  "index.html",
		SkipDirs:     []string{"node_modules"},
		ExcludeFiles: []string{"search.html"},
	}
}

// Classify decides the extraction category of a file by name. The
// listing name matches exactly; extensions match case-insensitively.
func (r ClassifyRules) Classify(name string) Category {
	if name == r.ListingName {
		return CategoryListing
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return CategoryPDF
	case ".html", ".htm":
		if slices.Contains(r.ExcludeFiles, name) {
			return CategoryIgnore
		}
		return CategoryHTML
	default:
		return CategoryIgnore
	}
}

// ShouldPrune reports whether a directory must not be descended into:
// hidden directories and reserved names.
func (r ClassifyRules) ShouldPrune(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(r.SkipDirs, name)
}

// BuildRequest describes one corpus build.
type BuildRequest struct {
	// SourceRoot is the tree holding source documents (PDFs).
	SourceRoot string

	// RenderRoot is the tree holding the rendered HTML output that
	// document paths link to.
	RenderRoot string

	// LinkPrefix is prepended to every emitted path.
	LinkPrefix string

	// IndexHTMLBodies enables indexing of rendered HTML documents that
	// are not listing pages.
	IndexHTMLBodies bool

	// Rules controls classification and pruning.
	Rules ClassifyRules
}

// Validate checks the request has both roots.
func (r BuildRequest) Validate() error {
	if r.SourceRoot == "" || r.RenderRoot == "" {
		return ErrInvalidInput
	}
	return nil
}

// OutcomeKind identifies the unit of work an outcome describes.
type OutcomeKind string

// Outcome kinds.
const (
	OutcomeDirectory OutcomeKind = "directory"
	OutcomeListing   OutcomeKind = "listing"
	OutcomePDF       OutcomeKind = "pdf"
	OutcomeHTML      OutcomeKind = "html"
)

// Outcome is the result of one unit of build work: success with the
// number of documents it produced, or failure with a reason.
type Outcome struct {
	// Path is the filesystem path of the entry.
	Path string

	// Kind is the unit of work.
	Kind OutcomeKind

	// Documents is the number of documents the entry contributed.
	Documents int

	// Err is the failure reason, nil on success.
	Err error
}

// Failed reports whether the unit of work failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// BuildReport collects the outcomes of a corpus build alongside the corpus.
type BuildReport struct {
	// RunID uniquely identifies the build run.
	RunID string

	// StartedAt is when the build began.
	StartedAt time.Time

	// FinishedAt is when the build ended.
	FinishedAt time.Time

	// Outcomes lists every processed entry in walk order.
	Outcomes []Outcome
}

// Record appends an outcome to the report.
func (r *BuildReport) Record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failures returns the failed outcomes.
func (r *BuildReport) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// DocumentCount returns the total documents produced by successful outcomes.
func (r *BuildReport) DocumentCount() int {
	n := 0
	for _, o := range r.Outcomes {
		n += o.Documents
	}
	return n
}

// Succeeded reports whether every unit of work succeeded.
func (r *BuildReport) Succeeded() bool {
	return len(r.Failures()) == 0
}

// Duration returns how long the build took.
func (r *BuildReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
