// Package pdf extracts plain text from PDF files using pdftotext from
// poppler. The binary must be on PATH (or configured with WithCommand).
package pdf
