package layout

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/reflow/model"
)

// DiagnosticKind classifies a non-fatal event noticed while building a page
type DiagnosticKind int

const (
	// DiagFontMismatch: elements with different font sizes were merged
	DiagFontMismatch DiagnosticKind = iota
	// DiagInnerLineAppended: a nested paragraph line matched no baseline of
	// the enclosing paragraph and was appended as a new line
	DiagInnerLineAppended
	// DiagFooterRemoved: a paragraph near the page bottom was dropped
	DiagFooterRemoved
	// DiagSpanDropped: a raw fragment produced no span (blank or zero width)
	DiagSpanDropped
)

// String returns a short name for the kind
func (k DiagnosticKind) String() string {
	switch k {
	case DiagFontMismatch:
		return "font-mismatch"
	case DiagInnerLineAppended:
		return "inner-line-appended"
	case DiagFooterRemoved:
		return "footer-removed"
	case DiagSpanDropped:
		return "span-dropped"
	default:
		return "unknown"
	}
}

// Diagnostic is one recorded event
type Diagnostic struct {
	Kind    DiagnosticKind
	Page    int
	Message string
	BBox    model.Rect
}

// String formats the diagnostic for display
func (d Diagnostic) String() string {
	return fmt.Sprintf("page %d: %s: %s", d.Page, d.Kind, d.Message)
}

// Diagnostics collects the events of one page build. A nil *Diagnostics
// discards everything, so callers that do not care can pass nil.
type Diagnostics struct {
	page   int
	items  []Diagnostic
	logger *slog.Logger
}

// NewDiagnostics creates a collector for the given page. Every event is also
// logged at debug level if logger is non-nil.
func NewDiagnostics(page int, logger *slog.Logger) *Diagnostics {
	return &Diagnostics{page: page, logger: logger}
}

func (d *Diagnostics) add(kind DiagnosticKind, bbox model.Rect, format string, args ...any) {
	if d == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	d.items = append(d.items, Diagnostic{Kind: kind, Page: d.page, Message: msg, BBox: bbox})
	if d.logger != nil {
		d.logger.LogAttrs(context.Background(), slog.LevelDebug, msg,
			slog.Int("page", d.page),
			slog.String("kind", kind.String()),
		)
	}
}

// Items returns the recorded events in order
func (d *Diagnostics) Items() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

// Count returns how many events of the given kind were recorded
func (d *Diagnostics) Count(kind DiagnosticKind) int {
	if d == nil {
		return 0
	}
	n := 0
	for _, item := range d.items {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of recorded events
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// discardLogger returns a logger that drops every record
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
