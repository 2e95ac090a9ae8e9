package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/kennyvt/kennyvt.github.io/internal/core/domain"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driven"
	"github.com/kennyvt/kennyvt.github.io/internal/core/ports/driving"
	"github.com/kennyvt/kennyvt.github.io/internal/logger"
)

// Ensure Builder implements the interface.
var _ driving.CorpusBuilder = (*Builder)(nil)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExtractionLimit throttles extractor calls. A nil limiter disables
// throttling.
func WithExtractionLimit(limiter *rate.Limiter) BuilderOption {
	return func(b *Builder) {
		b.limiter = limiter
	}
}

// withReadDir replaces the directory lister. Used by tests.
func withReadDir(fn func(string) ([]os.DirEntry, error)) BuilderOption {
	return func(b *Builder) {
		b.readDir = fn
	}
}

// Builder walks document trees and produces a corpus.
type Builder struct {
	pdf     driven.PDFExtractor
	listing driven.ListingExtractor
	body    driven.BodyExtractor
	limiter *rate.Limiter

	readDir  func(string) ([]os.DirEntry, error)
	readFile func(string) ([]byte, error)
	now      func() time.Time
}

// NewBuilder creates a builder with the given extractors. body may be nil
// when HTML bodies are never indexed.
func NewBuilder(
	pdf driven.PDFExtractor,
	listing driven.ListingExtractor,
	body driven.BodyExtractor,
	opts ...BuilderOption,
) *Builder {
	b := &Builder{
		pdf:      pdf,
		listing:  listing,
		body:     body,
		readDir:  os.ReadDir,
		readFile: os.ReadFile,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build walks the source tree for PDFs, then the render tree for listing
// pages and (optionally) HTML bodies. When both roots are the same
// directory a single walk accepts every category.
func (b *Builder) Build(ctx context.Context, req domain.BuildRequest) (domain.Corpus, *domain.BuildReport, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("build corpus: %w", err)
	}
	if req.Rules.ListingName == "" {
		req.Rules.ListingName = domain.DefaultClassifyRules().ListingName
	}

	report := &domain.BuildReport{
		RunID:     uuid.NewString(),
		StartedAt: b.now(),
	}

	logger.Section("Corpus Build")
	logger.Debug("Run: %s", report.RunID)
	logger.Debug("Source root: %s", req.SourceRoot)
	logger.Debug("Render root: %s", req.RenderRoot)

	w := &walker{builder: b, req: req, report: report}
	corpus := domain.Corpus{}
	var err error

	if sameDir(req.SourceRoot, req.RenderRoot) {
		corpus, err = w.walk(ctx, req.RenderRoot, w.acceptAll, corpus)
	} else {
		corpus, err = w.walk(ctx, req.SourceRoot, acceptPDF, corpus)
		if err == nil {
			corpus, err = w.walk(ctx, req.RenderRoot, w.acceptRendered, corpus)
		}
	}

	report.FinishedAt = b.now()
	if err != nil {
		return nil, report, fmt.Errorf("build corpus: %w", err)
	}

	logger.Info("Indexed %d documents, %d failures in %s",
		len(corpus), len(report.Failures()), report.Duration())
	return corpus, report, nil
}

// walker carries the state of one Build call.
type walker struct {
	builder *Builder
	req     domain.BuildRequest
	report  *domain.BuildReport
}

func acceptPDF(c domain.Category) bool {
	return c == domain.CategoryPDF
}

func (w *walker) acceptRendered(c domain.Category) bool {
	return c == domain.CategoryListing || (c == domain.CategoryHTML && w.req.IndexHTMLBodies)
}

func (w *walker) acceptAll(c domain.Category) bool {
	return acceptPDF(c) || w.acceptRendered(c)
}

// walk visits dir depth-first, appending documents to acc and returning
// the extended slice. Only context cancellation stops the walk.
func (w *walker) walk(
	ctx context.Context,
	dir string,
	accept func(domain.Category) bool,
	acc domain.Corpus,
) (domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return acc, err
	}

	entries, err := w.builder.readDir(dir)
	if err != nil {
		logger.Warn("Error reading directory %s: %v", dir, err)
		w.report.Record(domain.Outcome{Path: dir, Kind: domain.OutcomeDirectory, Err: err})
		return acc, nil
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if w.req.Rules.ShouldPrune(entry.Name()) {
				logger.Debug("Skipping directory: %s", full)
				continue
			}
			if acc, err = w.walk(ctx, full, accept, acc); err != nil {
				return acc, err
			}
			continue
		}

		category := w.req.Rules.Classify(entry.Name())
		if category == domain.CategoryIgnore || !accept(category) {
			continue
		}

		docs, extractErr := w.extract(ctx, dir, full, category)
		if err := ctx.Err(); err != nil {
			return acc, err
		}

		outcome := domain.Outcome{Path: full, Kind: outcomeKind(category), Documents: len(docs), Err: extractErr}
		if extractErr != nil {
			logger.Warn("Error processing %s %s: %v", category, full, extractErr)
		} else {
			logger.Debug("Processed %s %s: %d documents", category, full, len(docs))
		}
		w.report.Record(outcome)
		acc = append(acc, docs...)
	}

	return acc, nil
}

func (w *walker) extract(ctx context.Context, dir, file string, category domain.Category) ([]domain.Document, error) {
	data, err := w.builder.readFile(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch category {
	case domain.CategoryListing:
		return w.listingDocuments(dir, data)
	case domain.CategoryPDF:
		return w.pdfDocument(ctx, file, data)
	case domain.CategoryHTML:
		return w.bodyDocument(ctx, file, data)
	default:
		return nil, nil
	}
}

func (w *walker) listingDocuments(dir string, data []byte) ([]domain.Document, error) {
	anchors, err := w.builder.listing.ExtractAnchors(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	link, err := ListingPath(w.req.LinkPrefix, w.req.RenderRoot, dir)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(anchors))
	for _, anchor := range anchors {
		title := strings.TrimSpace(anchor)
		if title == "" {
			continue
		}
		docs = append(docs, domain.Document{Title: title, Path: link})
	}
	return docs, nil
}

func (w *walker) pdfDocument(ctx context.Context, file string, data []byte) ([]domain.Document, error) {
	if err := w.wait(ctx); err != nil {
		return nil, err
	}

	text, err := w.builder.pdf.ExtractPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	link, err := RenderPath(w.req.LinkPrefix, w.req.SourceRoot, file)
	if err != nil {
		return nil, err
	}

	return []domain.Document{{
		Title:   trimExt(filepath.Base(file)),
		Path:    link,
		Content: text,
	}}, nil
}

func (w *walker) bodyDocument(ctx context.Context, file string, data []byte) ([]domain.Document, error) {
	if w.builder.body == nil {
		return nil, fmt.Errorf("%w: no body extractor configured", domain.ErrExtractionFailed)
	}
	if err := w.wait(ctx); err != nil {
		return nil, err
	}

	text, err := w.builder.body.ExtractBody(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	link, err := BodyPath(w.req.LinkPrefix, w.req.RenderRoot, file)
	if err != nil {
		return nil, err
	}

	return []domain.Document{{
		Title:   trimExt(filepath.Base(file)),
		Path:    link,
		Content: text,
	}}, nil
}

func (w *walker) wait(ctx context.Context) error {
	if w.builder.limiter == nil {
		return nil
	}
	return w.builder.limiter.Wait(ctx)
}

func outcomeKind(c domain.Category) domain.OutcomeKind {
	switch c {
	case domain.CategoryListing:
		return domain.OutcomeListing
	case domain.CategoryPDF:
		return domain.OutcomePDF
	default:
		return domain.OutcomeHTML
	}
}
