package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// SpanMinWidth is the width at or below which a fragment is treated as a
// zero-width artifact (vertical rules, invisible markers) and dropped.
const SpanMinWidth = 1e-6

// Span is the leaf of the page tree: one trimmed text fragment. Spans are
// never mutated after construction.
type Span struct {
	bbox         model.Rect
	size         float64
	text         string
	origin       model.Point
	avgCharWidth float64
}

// NewSpan builds a span from a raw fragment. It returns false when the
// fragment carries no usable text: blank after trimming, not wider than
// SpanMinWidth, or without a positive font size.
func NewSpan(f text.Fragment) (*Span, bool) {
	t := strings.TrimSpace(f.Text)
	if t == "" {
		return nil, false
	}
	width := f.BBox.Width()
	if width <= SpanMinWidth || f.Size <= 0 {
		return nil, false
	}
	return &Span{
		bbox:         f.BBox,
		size:         f.Size,
		text:         t,
		origin:       f.Origin,
		avgCharWidth: width / float64(utf8.RuneCountInString(t)),
	}, true
}

// NewSpans converts fragments to spans, dropping the unusable ones. Each
// dropped fragment is recorded in diag.
func NewSpans(fragments []text.Fragment, diag *Diagnostics) []*Span {
	spans := make([]*Span, 0, len(fragments))
	for _, f := range fragments {
		s, ok := NewSpan(f)
		if !ok {
			diag.add(DiagSpanDropped, f.BBox, "dropped fragment %q", f.Text)
			continue
		}
		spans = append(spans, s)
	}
	return spans
}

func (s *Span) sealed() {}

// BBox returns the span's bounding box
func (s *Span) BBox() model.Rect { return s.bbox }

// FontSize returns the span's font size
func (s *Span) FontSize() float64 { return s.size }

// Text returns the trimmed text
func (s *Span) Text() string { return s.text }

// Kind returns KindSpan
func (s *Span) Kind() Kind { return KindSpan }

// Children returns nil; spans are leaves
func (s *Span) Children() []Node { return nil }

// Origin returns the baseline origin point
func (s *Span) Origin() model.Point { return s.origin }

// AvgCharWidth returns width divided by the number of characters
func (s *Span) AvgCharWidth() float64 { return s.avgCharWidth }
