package domain

// Document represents one indexed unit of the corpus.
// It is created once per build and never mutated afterwards.
type Document struct {
	// Title is the display name. For extracted files it is the file name
	// without its extension; for listing pages it is the anchor text.
	Title string `json:"title"`

	// Path is the link target of the rendered document, relative to the
	// rendered tree and always using forward slashes.
	Path string `json:"path"`

	// Content is the plain-text body. Empty for documents derived from
	// listing-page anchors.
	Content string `json:"content,omitempty"`
}

// HasContent reports whether the document carries body text.
func (d Document) HasContent() bool {
	return d.Content != ""
}

// Corpus is the ordered sequence of documents produced by one build.
// Order is the insertion order of the tree walk; duplicates are permitted.
type Corpus []Document

// Len returns the number of documents in the corpus.
func (c Corpus) Len() int {
	return len(c)
}

// WithContent returns how many documents carry body text.
func (c Corpus) WithContent() int {
	n := 0
	for i := range c {
		if c[i].HasContent() {
			n++
		}
	}
	return n
}
