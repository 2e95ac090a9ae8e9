package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingPath(t *testing.T) {
	root := filepath.Join("site")

	tests := []struct {
		name   string
		prefix string
		dir    string
		want   string
	}{
		{"root", "", root, ""},
		{"root with prefix", "/docs", root, "/docs/"},
		{"nested", "", filepath.Join(root, "a", "b"), "a/b/"},
		{"nested with prefix", "docs/", filepath.Join(root, "a"), "docs/a/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListingPath(tt.prefix, root, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPath(t *testing.T) {
	source := filepath.Join("pdfs")

	got, err := RenderPath("", source, filepath.Join(source, "ch1", "intro.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "ch1/intro.html", got)

	got, err = RenderPath("", source, filepath.Join(source, "Upper.PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Upper.html", got)

	got, err = RenderPath("https://example.org/book", source, filepath.Join(source, "x.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/book/x.html", got)
}

func TestBodyPath(t *testing.T) {
	root := filepath.Join("site")

	got, err := BodyPath("", root, filepath.Join(root, "guide", "start.html"))
	require.NoError(t, err)
	assert.Equal(t, "guide/start.html", got)
}

func TestSameDir(t *testing.T) {
	assert.True(t, sameDir("a/b", "a/b/"))
	assert.True(t, sameDir("a/./b", "a/b"))
	assert.False(t, sameDir("a", "b"))
}
