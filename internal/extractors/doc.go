// Package extractors holds the text extractors the corpus builder feeds
// files through. Each subpackage implements one or more of the driven
// extractor ports:
//
//   - pdf: PDFExtractor backed by poppler's pdftotext
//   - html: ListingExtractor and BodyExtractor backed by golang.org/x/net/html
package extractors
