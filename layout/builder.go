package layout

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/reflow/text"
)

// BuildOptions enables the optional passes. Both are off by default: they
// help with justified text and running footers but can swallow floating
// content such as captions.
type BuildOptions struct {
	// MergeContained folds paragraphs lying entirely inside another
	// paragraph into it, line by line
	MergeContained bool

	// RemoveFooters drops paragraphs closer to the page bottom than
	// Config.NLineFooterMargin average line heights
	RemoveFooters bool
}

// Builder runs the span -> line -> paragraph -> column pipeline on a page.
// A Builder holds no per-page state and is safe for concurrent use.
type Builder struct {
	config  Config
	options BuildOptions
	logger  *slog.Logger
}

// NewBuilder creates a builder with the default configuration
func NewBuilder() *Builder {
	return &Builder{
		config: DefaultConfig(),
		logger: discardLogger(),
	}
}

// NewBuilderWithConfig creates a builder with a custom configuration. The
// configuration is validated once, here.
func NewBuilderWithConfig(config Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		config: config,
		logger: discardLogger(),
	}, nil
}

// WithOptions returns a copy of the builder with the given pass options
func (b *Builder) WithOptions(opts BuildOptions) *Builder {
	nb := *b
	nb.options = opts
	return &nb
}

// WithLogger returns a copy of the builder that logs diagnostics to logger
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	nb := *b
	if logger == nil {
		logger = discardLogger()
	}
	nb.logger = logger
	return &nb
}

// Config returns the builder's configuration
func (b *Builder) Config() Config { return b.config }

// Options returns the builder's pass options
func (b *Builder) Options() BuildOptions { return b.options }

// Build reconstructs the reading structure of one page and serializes it.
// A page without usable spans goes straight to StateSerialized with empty
// text.
func (b *Builder) Build(data text.PageData) (*Page, error) {
	diag := NewDiagnostics(data.Number, b.logger)
	fragments := data.Fragments()
	page := newPage(data.Number, data.Bounds(), len(fragments), diag)

	spans := NewSpans(fragments, diag)
	page.spans = len(spans)
	if len(spans) == 0 {
		page.advance(StateSerialized)
		return page, nil
	}
	page.advance(StateSpansBuilt)

	lines, err := BuildLines(spans, b.config, diag)
	if err != nil {
		return nil, fmt.Errorf("page %d: building lines: %w", data.Number, err)
	}
	page.advance(StateLinesBuilt)

	paragraphs, err := BuildParagraphs(lines, b.config, diag)
	if err != nil {
		return nil, fmt.Errorf("page %d: building paragraphs: %w", data.Number, err)
	}
	if b.options.MergeContained {
		paragraphs = MergeContained(paragraphs, b.config, diag)
	}
	if b.options.RemoveFooters {
		paragraphs = RemoveFooters(paragraphs, page.bbox, b.config, diag)
	}
	page.advance(StateParagraphsBuilt)

	if len(paragraphs) > 0 {
		page.columns, err = BuildColumns(paragraphs, b.config)
		if err != nil {
			return nil, fmt.Errorf("page %d: building columns: %w", data.Number, err)
		}
	}
	page.advance(StateColumnsBuilt)

	page.sort()
	page.advance(StateSorted)

	page.text = page.serialize()
	page.advance(StateSerialized)

	b.logger.Debug("page built",
		"page", data.Number,
		"fragments", len(fragments),
		"spans", len(spans),
		"lines", len(lines),
		"paragraphs", len(paragraphs),
		"columns", len(page.columns),
	)
	return page, nil
}

// BuildFragments is a convenience wrapper around Build for a flat fragment
// list on a page of the given size
func (b *Builder) BuildFragments(fragments []text.Fragment, width, height float64) (*Page, error) {
	return b.Build(text.PageData{
		Number: 1,
		Width:  width,
		Height: height,
		Blocks: text.SingleBlock(fragments),
	})
}
