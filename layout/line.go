package layout

import (
	"strings"

	"github.com/tsawler/reflow/model"
)

// Line is a left-to-right run of spans sharing one visual baseline
type Line struct {
	bbox         model.Rect
	size         float64
	spans        []*Span
	origin       model.Point
	avgCharWidth float64
}

// NewLine starts a line from its seed span. The line takes the seed's
// geometry, font size, origin and character width.
func NewLine(seed *Span) (*Line, error) {
	if seed == nil {
		return nil, ErrInvalidConstruction
	}
	return &Line{
		bbox:         seed.bbox,
		size:         seed.size,
		spans:        []*Span{seed},
		origin:       seed.origin,
		avgCharWidth: seed.avgCharWidth,
	}, nil
}

func (l *Line) sealed() {}

// BBox returns the union of the line's spans
func (l *Line) BBox() model.Rect { return l.bbox }

// FontSize returns the seed span's font size
func (l *Line) FontSize() float64 { return l.size }

// Kind returns KindLine
func (l *Line) Kind() Kind { return KindLine }

// Origin returns the seed span's baseline origin
func (l *Line) Origin() model.Point { return l.origin }

// AvgCharWidth returns the running average character width
func (l *Line) AvgCharWidth() float64 { return l.avgCharWidth }

// Spans returns the line's spans in their current order
func (l *Line) Spans() []*Span { return l.spans }

// Children returns the spans as nodes
func (l *Line) Children() []Node {
	out := make([]Node, len(l.spans))
	for i, s := range l.spans {
		out[i] = s
	}
	return out
}

// CloseHorizontally reports whether the gap between the line and s, measured
// in average character widths, is below NCharDist
func (l *Line) CloseHorizontally(s *Span, cfg Config) bool {
	return HorizontalGap(l, s)/l.avgCharWidth < cfg.NCharDist
}

// Accepts reports whether s belongs on this line: same baseline, close
// enough horizontally and the same font size.
func (l *Line) Accepts(s *Span, cfg Config) bool {
	return SameBaseline(l, s, cfg.OriginTol) &&
		l.CloseHorizontally(s, cfg) &&
		SameFontSize(l, s, cfg.FontTol)
}

// Append adds s to the line, growing the bounding box and folding s into
// the running average character width.
func (l *Line) Append(s *Span, cfg Config, diag *Diagnostics) {
	if !SameFontSize(l, s, cfg.FontTol) {
		diag.add(DiagFontMismatch, s.bbox,
			"merging span %q of size %.2f into line of size %.2f", s.text, s.size, l.size)
	}
	l.bbox.Include(s.bbox)
	l.spans = append(l.spans, s)

	n := float64(len(l.spans))
	l.avgCharWidth = (l.avgCharWidth*(n-1) + s.avgCharWidth) / n
}

// Merge appends every span of other to the line
func (l *Line) Merge(other *Line, cfg Config, diag *Diagnostics) {
	for _, s := range other.spans {
		l.Append(s, cfg, diag)
	}
}

// Text joins span texts with single spaces
func (l *Line) Text() string {
	var sb strings.Builder
	last := byte(0)
	for _, s := range l.spans {
		if sb.Len() > 0 && last != ' ' {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.text)
		last = s.text[len(s.text)-1]
	}
	return strings.TrimSpace(sb.String())
}

// Sort orders the spans left to right
func (l *Line) Sort() {
	sortNodes(l.spans, compareX)
}

// BuildLine clusters spans into one line. The spans are ordered by left
// edge, the leftmost seeds the line and the rest are scanned once; spans the
// line rejects are returned, in scan order, for the next line.
func BuildLine(spans []*Span, cfg Config, diag *Diagnostics) (*Line, []*Span, error) {
	if len(spans) == 0 {
		return nil, nil, ErrEmptyInput
	}

	sorted := make([]*Span, len(spans))
	copy(sorted, spans)
	sortNodes(sorted, compareX)

	line, err := NewLine(sorted[0])
	if err != nil {
		return nil, nil, err
	}

	var rest []*Span
	for _, s := range sorted[1:] {
		if line.Accepts(s, cfg) {
			line.Append(s, cfg, diag)
		} else {
			rest = append(rest, s)
		}
	}
	return line, rest, nil
}

// BuildLines runs BuildLine until every span belongs to a line
func BuildLines(spans []*Span, cfg Config, diag *Diagnostics) ([]*Line, error) {
	if len(spans) == 0 {
		return nil, ErrEmptyInput
	}

	var lines []*Line
	for len(spans) > 0 {
		line, rest, err := BuildLine(spans, cfg, diag)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
		spans = rest
	}
	return lines, nil
}
