package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAnchors(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected []string
	}{
		{
			name:     "simple list",
			markup:   `<ul><li><a href="a.html">Alpha</a></li><li><a href="b.html"> Beta </a></li></ul>`,
			expected: []string{"Alpha", "Beta"},
		},
		{
			name:     "nested markup in anchor",
			markup:   `<a href="x"><b>Memory</b> Management</a>`,
			expected: []string{"Memory Management"},
		},
		{
			name:     "entities decoded",
			markup:   `<a href="x">Locks &amp; Latches</a>`,
			expected: []string{"Locks & Latches"},
		},
		{
			name:     "empty anchor kept",
			markup:   `<a href="x"></a><a href="y">Y</a>`,
			expected: []string{"", "Y"},
		},
		{
			name:     "no anchors",
			markup:   `<p>nothing here</p>`,
			expected: []string{},
		},
		{
			name:     "malformed markup",
			markup:   `<ul><li><a href="x">Unclosed`,
			expected: []string{"Unclosed"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			anchors, err := New().ExtractAnchors([]byte(tc.markup))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, anchors)
		})
	}
}

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "divs joined",
			markup:   `<div> First block </div><p>outside</p><div>Second</div>`,
			expected: "First block Second",
		},
		{
			name:     "nested divs repeat text",
			markup:   `<div>outer <div>inner</div></div>`,
			expected: "outer inner inner",
		},
		{
			name:     "scripts and styles skipped",
			markup:   `<div>text<script>var x = 1;</script><style>.a{}</style></div>`,
			expected: "text",
		},
		{
			name:     "empty divs skipped",
			markup:   `<div>  </div><div>kept</div>`,
			expected: "kept",
		},
		{
			name:     "no divs",
			markup:   `<html><body><p>paragraph</p></body></html>`,
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, err := New().ExtractBody([]byte(tc.markup))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, body)
		})
	}
}
