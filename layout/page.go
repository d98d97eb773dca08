package layout

import (
	"strings"

	"github.com/tsawler/reflow/model"
)

// State is a stage of the page pipeline
type State int

const (
	StateRawInput State = iota
	StateSpansBuilt
	StateLinesBuilt
	StateParagraphsBuilt
	StateColumnsBuilt
	StateSorted
	StateSerialized
)

// String returns a string representation of the state
func (s State) String() string {
	switch s {
	case StateRawInput:
		return "RawInput"
	case StateSpansBuilt:
		return "SpansBuilt"
	case StateLinesBuilt:
		return "LinesBuilt"
	case StateParagraphsBuilt:
		return "ParagraphsBuilt"
	case StateColumnsBuilt:
		return "ColumnsBuilt"
	case StateSorted:
		return "Sorted"
	case StateSerialized:
		return "Serialized"
	default:
		return "Unknown"
	}
}

// Page is the reconstructed reading structure of one page
type Page struct {
	// Number is the 1-indexed page number
	Number int

	bbox      model.Rect
	columns   []*Column
	fragments int
	spans     int

	states []State
	text   string
	diag   *Diagnostics
}

func newPage(number int, bbox model.Rect, fragments int, diag *Diagnostics) *Page {
	return &Page{
		Number:    number,
		bbox:      bbox,
		fragments: fragments,
		states:    []State{StateRawInput},
		diag:      diag,
	}
}

func (p *Page) advance(s State) {
	p.states = append(p.states, s)
}

// BBox returns the page rectangle (0, 0, width, height)
func (p *Page) BBox() model.Rect { return p.bbox }

// Columns returns the columns in reading order
func (p *Page) Columns() []*Column { return p.columns }

// Paragraphs returns every paragraph in reading order
func (p *Page) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, c := range p.columns {
		out = append(out, c.paragraphs...)
	}
	return out
}

// Lines returns every line in reading order
func (p *Page) Lines() []*Line {
	var out []*Line
	for _, para := range p.Paragraphs() {
		out = append(out, para.lines...)
	}
	return out
}

// Children returns the columns as nodes
func (p *Page) Children() []Node {
	out := make([]Node, len(p.columns))
	for i, c := range p.columns {
		out[i] = c
	}
	return out
}

// State returns the last state the page reached
func (p *Page) State() State { return p.states[len(p.states)-1] }

// Transitions returns every state the page passed through, in order
func (p *Page) Transitions() []State { return p.states }

// FragmentCount returns the number of raw fragments the page was built from
func (p *Page) FragmentCount() int { return p.fragments }

// SpanCount returns the number of fragments that produced spans
func (p *Page) SpanCount() int { return p.spans }

// IsEmpty reports whether the raw input held no fragments at all
func (p *Page) IsEmpty() bool { return p.fragments == 0 }

// Text returns the serialized page text, columns joined with newlines
func (p *Page) Text() string { return p.text }

// Diagnostics returns the events recorded while building the page
func (p *Page) Diagnostics() *Diagnostics { return p.diag }

// sort orders columns by top edge then left edge and sorts every level
// below them
func (p *Page) sort() {
	sortNodes(p.columns, compareY)
	for _, c := range p.columns {
		c.Sort()
	}
}

func (p *Page) serialize() string {
	parts := make([]string, len(p.columns))
	for i, c := range p.columns {
		parts[i] = c.Text()
	}
	return strings.Join(parts, "\n")
}
