package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PDFExtractor = (*Extractor)(nil)

// DefaultCommand is the pdftotext executable looked up on PATH.
const DefaultCommand = "pdftotext"

// ErrPDFToolNotFound is returned when pdftotext cannot be found.
var ErrPDFToolNotFound = errors.New("pdftotext not found: install poppler to index PDF files")

// CommandRunner runs an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCommand sets the pdftotext executable. Empty keeps the default.
func WithCommand(command string) Option {
	return func(e *Extractor) {
		if command != "" {
			e.command = command
		}
	}
}

func withLookPath(fn func(string) (string, error)) Option {
	return func(e *Extractor) {
		e.lookPath = fn
	}
}

// Extractor converts PDF bytes to text by running pdftotext.
type Extractor struct {
	command  string
	runner   CommandRunner
	lookPath func(string) (string, error)
}

// New creates an extractor that executes pdftotext.
func New(opts ...Option) *Extractor {
	return NewWithRunner(execRunner{}, opts...)
}

// NewWithRunner creates an extractor with a custom command runner.
func NewWithRunner(runner CommandRunner, opts ...Option) *Extractor {
	e := &Extractor{
		command:  DefaultCommand,
		runner:   runner,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available reports whether the configured executable can be found.
func (e *Extractor) Available() error {
	if _, err := e.lookPath(e.command); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// ExtractPDF writes data to a temporary file and returns the text
// pdftotext produces for it. Page breaks become newlines.
func (e *Extractor) ExtractPDF(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty pdf: %w", domain.ErrInvalidInput)
	}
	if err := e.Available(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "docsearch-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	out, err := e.runner.Run(ctx, e.command, "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	return cleanText(string(out)), nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\f", "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}

// CheckAvailable returns ErrPDFToolNotFound if command cannot be found.
// Empty checks DefaultCommand.
func CheckAvailable(command string) error {
	return New(WithCommand(command)).Available()
}

// InstallInstructions returns platform hints for installing pdftotext.
func InstallInstructions() string {
	return `pdftotext is required to index PDF files. Install poppler:

  macOS:          brew install poppler
  Debian/Ubuntu:  sudo apt install poppler-utils
  Fedora:         sudo dnf install poppler-utils
  Windows:        choco install poppler`
}
