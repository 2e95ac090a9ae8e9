package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestQuietByDefault(t *testing.T) {
	buf := capture(t, false)

	Debug("debug %d", 1)
	Info("info")
	Warn("warn")
	Section("Build")

	assert.Empty(t, buf.String())
	assert.False(t, IsVerbose())
}

func TestVerboseOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("walking %s", "docs")
	Info("indexed %d", 3)
	Warn("skipped %q", "x.pdf")
	Section("Corpus Build")

	out := buf.String()
	assert.True(t, IsVerbose())
	assert.Contains(t, out, "[DEBUG] walking docs\n")
	assert.Contains(t, out, "[INFO] indexed 3\n")
	assert.Contains(t, out, "[WARN] skipped \"x.pdf\"\n")
	assert.Contains(t, out, "=== Corpus Build ===")
}

func TestErrorAlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("load corpus: %v", "missing")

	assert.Equal(t, "[ERROR] load corpus: missing\n", buf.String())
}
