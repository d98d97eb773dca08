package layout

import (
	"github.com/tsawler/reflow/model"
)

// Paragraph is a top-to-bottom block of lines sharing column alignment and
// font size
type Paragraph struct {
	bbox          model.Rect
	size          float64
	lines         []*Line
	avgLineHeight float64
}

// NewParagraph starts a paragraph from its seed line
func NewParagraph(seed *Line) (*Paragraph, error) {
	if seed == nil {
		return nil, ErrInvalidConstruction
	}
	return &Paragraph{
		bbox:          seed.bbox,
		size:          seed.size,
		lines:         []*Line{seed},
		avgLineHeight: seed.bbox.Height(),
	}, nil
}

func (p *Paragraph) sealed() {}

// BBox returns the union of the paragraph's lines
func (p *Paragraph) BBox() model.Rect { return p.bbox }

// FontSize returns the seed line's font size
func (p *Paragraph) FontSize() float64 { return p.size }

// Kind returns KindParagraph
func (p *Paragraph) Kind() Kind { return KindParagraph }

// AvgLineHeight returns the paragraph height divided by its line count
func (p *Paragraph) AvgLineHeight() float64 { return p.avgLineHeight }

// Lines returns the paragraph's lines in their current order
func (p *Paragraph) Lines() []*Line { return p.lines }

// Children returns the lines as nodes
func (p *Paragraph) Children() []Node {
	out := make([]Node, len(p.lines))
	for i, l := range p.lines {
		out[i] = l
	}
	return out
}

// CloseVertically reports whether the vertical gap to l, in average line
// heights, is below NLineDist
func (p *Paragraph) CloseVertically(l *Line, cfg Config) bool {
	return VerticalGap(p, l)/p.avgLineHeight < cfg.NLineDist
}

// Accepts reports whether l continues this paragraph: vertically close,
// same font size and aligned with the paragraph's column.
func (p *Paragraph) Accepts(l *Line, cfg Config) bool {
	return p.CloseVertically(l, cfg) &&
		SameFontSize(p, l, cfg.FontTol) &&
		IsAligned(p, l, cfg.AlignmentTol)
}

// Append adds l to the paragraph. The average line height is recomputed
// from the new total height, not folded in incrementally.
func (p *Paragraph) Append(l *Line, cfg Config, diag *Diagnostics) {
	if !SameFontSize(p, l, cfg.FontTol) {
		diag.add(DiagFontMismatch, l.bbox,
			"merging line of size %.2f into paragraph of size %.2f", l.size, p.size)
	}
	p.bbox.Include(l.bbox)
	p.lines = append(p.lines, l)
	p.avgLineHeight = p.bbox.Height() / float64(len(p.lines))
}

// Contains reports whether other lies entirely inside p
func (p *Paragraph) Contains(other *Paragraph) bool {
	return p.bbox.Contains(other.bbox)
}

// MergeInner folds a paragraph nested inside p into it. Each inner line is
// merged into the first line of p sharing its baseline; lines without a
// match are appended.
func (p *Paragraph) MergeInner(inner *Paragraph, cfg Config, diag *Diagnostics) {
	for _, l2 := range inner.lines {
		found := false
		for _, l1 := range p.lines {
			if SameBaseline(l2, l1, cfg.OriginTol) {
				l1.Merge(l2, cfg, diag)
				found = true
				break
			}
		}
		if !found {
			diag.add(DiagInnerLineAppended, l2.bbox, "appended line %q of a nested paragraph", l2.Text())
			p.Append(l2, cfg, diag)
		}
	}
}

// Text joins line texts with single spaces. A line ending in a hyphen is
// joined to the next one without the hyphen.
func (p *Paragraph) Text() string {
	var buf []byte
	for _, l := range p.lines {
		t := l.Text()
		switch {
		case len(buf) == 0:
			buf = append(buf, t...)
		case buf[len(buf)-1] == '-':
			buf = append(buf[:len(buf)-1], t...)
		case buf[len(buf)-1] != ' ':
			buf = append(buf, ' ')
			buf = append(buf, t...)
		default:
			buf = append(buf, t...)
		}
	}
	return string(buf)
}

// Sort orders lines top to bottom, then sorts each line
func (p *Paragraph) Sort() {
	sortNodes(p.lines, compareY)
	for _, l := range p.lines {
		l.Sort()
	}
}

// BuildParagraph clusters lines into one paragraph. Lines are ordered by
// top edge, the topmost seeds the paragraph and the rest are scanned once.
func BuildParagraph(lines []*Line, cfg Config, diag *Diagnostics) (*Paragraph, []*Line, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyInput
	}

	sorted := make([]*Line, len(lines))
	copy(sorted, lines)
	sortNodes(sorted, compareY)

	para, err := NewParagraph(sorted[0])
	if err != nil {
		return nil, nil, err
	}

	var rest []*Line
	for _, l := range sorted[1:] {
		if para.Accepts(l, cfg) {
			para.Append(l, cfg, diag)
		} else {
			rest = append(rest, l)
		}
	}
	return para, rest, nil
}

// BuildParagraphs runs BuildParagraph until every line belongs to a paragraph
func BuildParagraphs(lines []*Line, cfg Config, diag *Diagnostics) ([]*Paragraph, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	var paragraphs []*Paragraph
	for len(lines) > 0 {
		para, rest, err := BuildParagraph(lines, cfg, diag)
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, para)
		lines = rest
	}
	return paragraphs, nil
}
