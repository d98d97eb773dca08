package reflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/reader"
	"github.com/tsawler/reflow/text"
)

// Extractor provides a fluent interface for extracting reading-order text.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	source   reader.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// PageResult is the outcome for one processed page
type PageResult struct {
	// Number is the 1-indexed page number
	Number int

	// Page is the built reading structure
	Page *layout.Page

	// Fragments is the number of raw fragments the source reported, before
	// any header or footer filtering
	Fragments int

	// LetterRatio is the letter fraction of the page text
	LetterRatio float64

	// Accepted reports whether the page text passed the quality filter
	Accepted bool
}

// Text returns the serialized page text, accepted or not
func (r PageResult) Text() string {
	if r.Page == nil {
		return ""
	}
	return r.Page.Text()
}

// pageInput is a page read from the source
type pageInput struct {
	data      text.PageData
	fragments int
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		e.sourceOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	text, _, err := reflow.Open("doc.pdf").Pages(1, 3, 5).Text()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	text, _, err := reflow.Open("doc.pdf").PageRange(5, 10).Text()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// ExcludeHeaders removes running headers: text repeated at the same place
// near the top of most pages. Detection always looks at every page of the
// document, even when only some are selected.
func (e *Extractor) ExcludeHeaders() *Extractor {
	newExt := e.clone()
	newExt.options.excludeHeaders = true
	return newExt
}

// ExcludeFooters removes running footers and page numbers
func (e *Extractor) ExcludeFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeFooters = true
	return newExt
}

// ExcludeHeadersAndFooters is equivalent to calling
// ExcludeHeaders().ExcludeFooters().
//
// Example:
//
//	text, _, err := reflow.Open("doc.pdf").ExcludeHeadersAndFooters().Text()
func (e *Extractor) ExcludeHeadersAndFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeHeaders = true
	newExt.options.excludeFooters = true
	return newExt
}

// MergeContained enables the containment pass: a paragraph lying entirely
// inside another is merged into it line by line
func (e *Extractor) MergeContained() *Extractor {
	newExt := e.clone()
	newExt.options.build.MergeContained = true
	return newExt
}

// RemoveFooters enables the per-page footer pass: paragraphs closer to the
// page bottom than the configured margin are dropped. Unlike
// ExcludeFooters it needs no repetition across pages, and it also drops a
// genuine last paragraph that sits low on the page.
func (e *Extractor) RemoveFooters() *Extractor {
	newExt := e.clone()
	newExt.options.build.RemoveFooters = true
	return newExt
}

// WithConfig replaces the clustering tolerances. An invalid configuration
// fails the terminal operation.
//
// Example:
//
//	cfg := layout.DefaultConfig()
//	cfg.NCharDist = 3
//	text, _, err := reflow.Open("doc.pdf").WithConfig(cfg).Text()
func (e *Extractor) WithConfig(cfg layout.Config) *Extractor {
	newExt := e.clone()
	if err := cfg.Validate(); err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.config = cfg
	return newExt
}

// Parallel builds up to n pages concurrently. n <= 0 uses one worker per
// CPU. Output order does not depend on n.
func (e *Extractor) Parallel(n int) *Extractor {
	newExt := e.clone()
	newExt.options.parallel = n
	return newExt
}

// KeepNoisyPages disables the letter-ratio quality filter. Pages with any
// text at all are kept.
func (e *Extractor) KeepNoisyPages() *Extractor {
	newExt := e.clone()
	newExt.options.keepNoisy = true
	return newExt
}

// MinLetterRatio changes the letter fraction a page's text must exceed to
// be kept. The default is 0.5.
func (e *Extractor) MinLetterRatio(ratio float64) *Extractor {
	newExt := e.clone()
	if (ratio < 0 || ratio >= 1) && newExt.err == nil {
		newExt.err = fmt.Errorf("min letter ratio must be in [0, 1), got %v", ratio)
	}
	newExt.options.minLetterRatio = ratio
	return newExt
}

// WithLogger sends pipeline diagnostics to logger. Font-size mismatches and
// other per-page events log at debug level; rejected pages and the
// mostly-empty document warning log at warn level.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Text extracts the reading-order text of the selected pages. Each accepted
// page's text is followed by a blank line.
//
// Example:
//
//	text, warnings, err := reflow.Open("document.pdf").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", reflow.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	return e.TextContext(context.Background())
}

// TextContext is Text with cancellation between pages
func (e *Extractor) TextContext(ctx context.Context) (string, []Warning, error) {
	doc, warnings, err := e.DocumentContext(ctx)
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// Document extracts the selected pages into a model.Document, which keeps
// per-page text, quality facts and statistics
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	return e.DocumentContext(context.Background())
}

// DocumentContext is Document with cancellation between pages
func (e *Extractor) DocumentContext(ctx context.Context) (*model.Document, []Warning, error) {
	results, warnings, err := e.PageResultsContext(ctx)
	if err != nil {
		return nil, warnings, err
	}
	return DocumentFromResults(e.filename, results), warnings, nil
}

// PageResults builds the selected pages and returns them with their
// reading structure, for callers that need more than the text
func (e *Extractor) PageResults() ([]PageResult, []Warning, error) {
	return e.PageResultsContext(context.Background())
}

// PageResultsContext is PageResults with cancellation between pages
func (e *Extractor) PageResultsContext(ctx context.Context) ([]PageResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	logger := e.logger()
	warnings := append([]Warning(nil), e.warnings...)

	numbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	inputs, skipped, err := e.readPages(ctx, numbers)
	if err != nil {
		return nil, nil, err
	}
	for _, n := range skipped {
		logger.Warn("page skipped", "page", n.Page, "reason", n.Message)
	}
	warnings = append(warnings, skipped...)

	if e.options.excludeHeaders || e.options.excludeFooters {
		hf, err := e.detectHeaderFooter(ctx, inputs, len(numbers))
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("running headers and footers", "summary", hf.Summary())
		for i := range inputs {
			inputs[i].data = hf.FilterPage(inputs[i].data, e.options.excludeHeaders, e.options.excludeFooters)
		}
	}

	results, err := e.buildPages(ctx, inputs, logger)
	if err != nil {
		return nil, nil, err
	}

	for _, r := range results {
		if !r.Accepted && r.Text() != "" {
			msg := fmt.Sprintf("text dropped by quality filter (letter ratio %.2f)", r.LetterRatio)
			logger.Warn("page rejected", "page", r.Number, "letter_ratio", r.LetterRatio)
			warnings = append(warnings, Warning{Code: WarnPageRejected, Page: r.Number, Message: msg})
		}
	}

	if doc := DocumentFromResults(e.filename, results); doc.MostlyEmpty() {
		msg := fmt.Sprintf("%d of %d pages contain no text; the document may be scanned and need OCR",
			doc.Stats.EmptyPages, doc.Stats.PageCount)
		logger.Warn("document mostly empty", "empty_pages", doc.Stats.EmptyPages, "pages", doc.Stats.PageCount)
		warnings = append(warnings, Warning{Code: WarnMostlyEmpty, Message: msg})
	}

	return results, warnings, nil
}

// PageCount returns the total number of pages in the source.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	defer e.Close()

	return e.source.PageCount(), nil
}

// ============================================================================
// Internal Helpers
// ============================================================================

func (e *Extractor) logger() *slog.Logger {
	if e.options.logger != nil {
		return e.options.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (e *Extractor) workers() int {
	if e.options.parallel <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return e.options.parallel
}

// resolvePages returns the selected page numbers, sorted and deduplicated
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.source.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		numbers := make([]int, pageCount)
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}

	sort.Ints(numbers)
	return numbers, nil
}

// readPages reads the selected pages in order. Sources are not safe for
// concurrent use, so reading stays on one goroutine. Unreadable pages are
// skipped with a warning.
func (e *Extractor) readPages(ctx context.Context, numbers []int) ([]pageInput, []Warning, error) {
	inputs := make([]pageInput, 0, len(numbers))
	var skipped []Warning
	for _, n := range numbers {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("reading page %d: %w", n, err)
		}
		data, err := e.source.Page(n)
		if err != nil {
			skipped = append(skipped, Warning{Code: WarnPageUnreadable, Page: n, Message: err.Error()})
			continue
		}
		inputs = append(inputs, pageInput{data: data, fragments: data.FragmentCount()})
	}
	return inputs, skipped, nil
}

// detectHeaderFooter runs header/footer detection across the whole
// document. Pages outside the selection are read just for detection.
func (e *Extractor) detectHeaderFooter(ctx context.Context, selected []pageInput, numSelected int) (*layout.HeaderFooterResult, error) {
	pages := make([]text.PageData, 0, len(selected))
	if numSelected == e.source.PageCount() {
		for _, in := range selected {
			pages = append(pages, in.data)
		}
	} else {
		for n := 1; n <= e.source.PageCount(); n++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("reading page %d: %w", n, err)
			}
			data, err := e.source.Page(n)
			if err != nil {
				continue // Skip pages that can't be read
			}
			pages = append(pages, data)
		}
	}
	return layout.NewHeaderFooterDetector().Detect(pages), nil
}

// buildPages runs the layout pipeline on every page, up to workers() at a
// time. Results keep the input order.
func (e *Extractor) buildPages(ctx context.Context, inputs []pageInput, logger *slog.Logger) ([]PageResult, error) {
	builder, err := layout.NewBuilderWithConfig(e.options.config)
	if err != nil {
		return nil, err
	}
	builder = builder.WithOptions(e.options.build).WithLogger(logger)

	results := make([]PageResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("page %d: %w", in.data.Number, err)
			}
			page, err := builder.Build(in.data)
			if err != nil {
				return err
			}
			results[i] = e.assess(page, in.fragments)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// assess applies the page quality filter
func (e *Extractor) assess(page *layout.Page, fragments int) PageResult {
	t := page.Text()
	ratio := text.LetterRatio(t)
	accepted := t != ""
	if accepted && !e.options.keepNoisy {
		accepted = text.IsTextPage(t, e.options.minLetterRatio)
	}
	return PageResult{
		Number:      page.Number,
		Page:        page,
		Fragments:   fragments,
		LetterRatio: ratio,
		Accepted:    accepted,
	}
}
