package layout

import (
	"strings"

	"github.com/tsawler/reflow/model"
)

// Column is a set of paragraphs sharing horizontal alignment. Unlike
// paragraphs, columns ignore font size and vertical distance, so a heading
// and its body text end up in the same column.
type Column struct {
	bbox       model.Rect
	size       float64
	paragraphs []*Paragraph
}

// NewColumn starts a column from its seed paragraph
func NewColumn(seed *Paragraph) (*Column, error) {
	if seed == nil {
		return nil, ErrInvalidConstruction
	}
	return &Column{
		bbox:       seed.bbox,
		size:       seed.size,
		paragraphs: []*Paragraph{seed},
	}, nil
}

func (c *Column) sealed() {}

// BBox returns the union of the column's paragraphs
func (c *Column) BBox() model.Rect { return c.bbox }

// FontSize returns the seed paragraph's font size
func (c *Column) FontSize() float64 { return c.size }

// Kind returns KindColumn
func (c *Column) Kind() Kind { return KindColumn }

// Paragraphs returns the column's paragraphs in their current order
func (c *Column) Paragraphs() []*Paragraph { return c.paragraphs }

// Children returns the paragraphs as nodes
func (c *Column) Children() []Node {
	out := make([]Node, len(c.paragraphs))
	for i, p := range c.paragraphs {
		out[i] = p
	}
	return out
}

// Accepts reports whether p is aligned with the column. No distance or font
// test is applied.
func (c *Column) Accepts(p *Paragraph, cfg Config) bool {
	return IsAligned(c, p, cfg.AlignmentTol)
}

// Append adds p to the column
func (c *Column) Append(p *Paragraph) {
	c.bbox.Include(p.bbox)
	c.paragraphs = append(c.paragraphs, p)
}

// Text joins paragraph texts with newlines
func (c *Column) Text() string {
	parts := make([]string, len(c.paragraphs))
	for i, p := range c.paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// Sort orders paragraphs top to bottom, then sorts each paragraph
func (c *Column) Sort() {
	sortNodes(c.paragraphs, compareY)
	for _, p := range c.paragraphs {
		p.Sort()
	}
}

// BuildColumn clusters paragraphs into one column. Paragraphs are ordered by
// left edge then top edge; the first seeds the column.
func BuildColumn(paragraphs []*Paragraph, cfg Config) (*Column, []*Paragraph, error) {
	if len(paragraphs) == 0 {
		return nil, nil, ErrEmptyInput
	}

	sorted := make([]*Paragraph, len(paragraphs))
	copy(sorted, paragraphs)
	sortNodes(sorted, compareX)

	col, err := NewColumn(sorted[0])
	if err != nil {
		return nil, nil, err
	}

	var rest []*Paragraph
	for _, p := range sorted[1:] {
		if col.Accepts(p, cfg) {
			col.Append(p)
		} else {
			rest = append(rest, p)
		}
	}
	return col, rest, nil
}

// BuildColumns runs BuildColumn until every paragraph belongs to a column
func BuildColumns(paragraphs []*Paragraph, cfg Config) ([]*Column, error) {
	if len(paragraphs) == 0 {
		return nil, ErrEmptyInput
	}

	var columns []*Column
	for len(paragraphs) > 0 {
		col, rest, err := BuildColumn(paragraphs, cfg)
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		paragraphs = rest
	}
	return columns, nil
}
