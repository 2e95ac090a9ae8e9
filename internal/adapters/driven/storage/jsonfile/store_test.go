package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
)

func sampleCorpus() domain.Corpus {
	return domain.Corpus{
		{Title: "Chapter 1", Path: "ch1/"},
		{Title: "intro", Path: "ch1/intro.html", Content: "Memory <safety> & allocation"},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	store := New(path)

	require.NoError(t, store.Save(context.Background(), sampleCorpus()))
	loaded, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleCorpus(), loaded)
	assert.Equal(t, path, store.Path())
}

func TestStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	require.NoError(t, New(path).Save(context.Background(), sampleCorpus()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `[
  {
    "title": "Chapter 1",
    "path": "ch1/"
  },
  {
    "title": "intro",
    "path": "ch1/intro.html",
    "content": "Memory <safety> & allocation"
  }
]
`
	assert.Equal(t, expected, string(data))
}

func TestStore_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	store := New(path)

	require.NoError(t, store.Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestStore_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	store := New(path)

	require.NoError(t, store.Save(context.Background(), sampleCorpus()))
	require.NoError(t, store.Save(context.Background(), domain.Corpus{{Title: "Only", Path: "only/"}}))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Corpus{{Title: "Only", Path: "only/"}}, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "assets", "search-index.json")

	require.NoError(t, New(path).Save(context.Background(), sampleCorpus()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestStore_LoadMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LoadMalformed(t *testing.T) {
	tests := map[string]string{
		"invalid json": "{not json",
		"object":       `{"title": "x"}`,
		"null":         "null",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := New(path).Load(context.Background())

			assert.Error(t, err)
		})
	}
}

func TestStore_LoadHandWrittenArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	content := `[{"title":"A","path":"a/"},{"title":"B","path":"b.html","content":"text"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loaded, err := New(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Corpus{
		{Title: "A", Path: "a/"},
		{Title: "B", Path: "b.html", Content: "text"},
	}, loaded)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := New(filepath.Join(t.TempDir(), "index.json"))

	assert.ErrorIs(t, store.Save(ctx, sampleCorpus()), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
