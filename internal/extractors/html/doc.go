// Package html extracts text from rendered HTML pages with
// golang.org/x/net/html.
//
// Listing pages contribute the text of their anchors; every other page
// contributes the text of its div elements.
package html
