package text

import (
	"github.com/tsawler/reflow/model"
)

// Fragment is one run of text with uniform font size and position, as
// reported by the extraction layer.
type Fragment struct {
	BBox   model.Rect  `json:"bbox"`
	Size   float64     `json:"size"`
	Text   string      `json:"text"`
	Origin model.Point `json:"origin"`
	Font   string      `json:"font,omitempty"`
}

// LineData groups fragments the extraction layer believes share a line
type LineData struct {
	Spans []Fragment `json:"spans"`
}

// Block groups lines the extraction layer believes form a block
type Block struct {
	Lines []LineData `json:"lines"`
}

// PageData is everything known about one page before layout analysis
type PageData struct {
	// Number is the 1-indexed page number in the source document
	Number int `json:"number"`

	// Width and Height are the page dimensions in page units
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Blocks []Block `json:"blocks"`
}

// Fragments flattens the block/line/span nesting into reporting order
func (p PageData) Fragments() []Fragment {
	var out []Fragment
	for _, b := range p.Blocks {
		for _, l := range b.Lines {
			out = append(out, l.Spans...)
		}
	}
	return out
}

// FragmentCount returns the number of raw fragments on the page
func (p PageData) FragmentCount() int {
	n := 0
	for _, b := range p.Blocks {
		for _, l := range b.Lines {
			n += len(l.Spans)
		}
	}
	return n
}

// Bounds returns the page rectangle (0, 0, Width, Height)
func (p PageData) Bounds() model.Rect {
	return model.Rect{X0: 0, Y0: 0, X1: p.Width, Y1: p.Height}
}

// SingleBlock wraps a flat fragment list as one block with one line.
// Useful when a source has no grouping of its own.
func SingleBlock(fragments []Fragment) []Block {
	if len(fragments) == 0 {
		return nil
	}
	return []Block{{Lines: []LineData{{Spans: fragments}}}}
}
