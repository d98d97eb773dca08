package reflow

import (
	"log/slog"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/text"
)

// ExtractOptions holds configuration for text extraction.
type ExtractOptions struct {
	// Page selection (1-indexed)
	pages []int

	// Running header/footer filtering across pages
	excludeHeaders bool
	excludeFooters bool

	// Page quality filter
	keepNoisy      bool
	minLetterRatio float64

	// Pipeline
	config   layout.Config
	build    layout.BuildOptions
	parallel int

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		minLetterRatio: text.DefaultMinLetterRatio,
		config:         layout.DefaultConfig(),
		parallel:       1,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}
