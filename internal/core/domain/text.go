package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldRunes lowercases rune by rune so that index i of the result always
// corresponds to index i of the input.
func FoldRunes(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = unicode.ToLower(c)
	}
	return out
}

// Fold lowercases s rune by rune, preserving rune count.
func Fold(s string) string {
	return strings.Map(unicode.ToLower, s)
}

// IndexRunes returns the index of the first occurrence of needle in
// haystack at or after from, or -1.
func IndexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		match := true
		for j, c := range needle {
			if haystack[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Tokenize lowercases a query, splits it on whitespace runs and drops
// tokens shorter than MinTokenLength characters.
func Tokenize(query string) []string {
	fields := strings.Fields(Fold(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Highlight wraps every case-insensitive occurrence of term in text with
// mark, leaving the original casing intact.
func Highlight(text, term string, mark func(string) string) string {
	needle := FoldRunes([]rune(term))
	if len(needle) == 0 || mark == nil {
		return text
	}
	orig := []rune(text)
	lower := FoldRunes(orig)

	var b strings.Builder
	cursor := 0
	for {
		pos := IndexRunes(lower, needle, cursor)
		if pos < 0 {
			break
		}
		b.WriteString(string(orig[cursor:pos]))
		b.WriteString(mark(string(orig[pos : pos+len(needle)])))
		cursor = pos + len(needle)
	}
	b.WriteString(string(orig[cursor:]))
	return b.String()
}

// HighlightTerms wraps occurrences of any of terms in a single pass, so
// marks are never applied inside earlier marks. At a given position the
// longest matching term wins.
func HighlightTerms(text string, terms []string, mark func(string) string) string {
	if mark == nil || len(terms) == 0 {
		return text
	}
	needles := make([][]rune, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			needles = append(needles, FoldRunes([]rune(t)))
		}
	}
	orig := []rune(text)
	lower := FoldRunes(orig)

	var b strings.Builder
	cursor := 0
	for {
		pos, length := -1, 0
		for _, n := range needles {
			p := IndexRunes(lower, n, cursor)
			if p < 0 {
				continue
			}
			if pos < 0 || p < pos || (p == pos && len(n) > length) {
				pos, length = p, len(n)
			}
		}
		if pos < 0 {
			break
		}
		b.WriteString(string(orig[cursor:pos]))
		b.WriteString(mark(string(orig[pos : pos+length])))
		cursor = pos + length
	}
	b.WriteString(string(orig[cursor:]))
	return b.String()
}
