package driven

import "context"

// PDFExtractor extracts plain text from raw PDF bytes.
// Implementations fail on corrupt or encrypted input.
type PDFExtractor interface {
	ExtractPDF(ctx context.Context, data []byte) (string, error)
}

// ListingExtractor returns the trimmed text of every anchor element in a
// listing page, in document order.
type ListingExtractor interface {
	ExtractAnchors(markup []byte) ([]string, error)
}

// BodyExtractor returns the concatenated text of the block elements of a
// rendered HTML document.
type BodyExtractor interface {
	ExtractBody(markup []byte) (string, error)
}
