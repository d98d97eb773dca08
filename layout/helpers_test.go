package layout

import (
	"testing"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// makeFragment creates a fragment whose baseline sits 2 units above the
// bottom of its box
func makeFragment(x0, y0, x1, y1, size float64, s string) text.Fragment {
	return text.Fragment{
		BBox:   model.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Size:   size,
		Text:   s,
		Origin: model.Point{X: x0, Y: y1 - 2},
	}
}

func makeSpan(t *testing.T, x0, y0, x1, y1, size float64, s string) *Span {
	t.Helper()
	sp, ok := NewSpan(makeFragment(x0, y0, x1, y1, size, s))
	if !ok {
		t.Fatalf("NewSpan(%q) rejected", s)
	}
	return sp
}

// makeLine creates a line from spans, appending in the given order
func makeLine(t *testing.T, spans ...*Span) *Line {
	t.Helper()
	l, err := NewLine(spans[0])
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	for _, s := range spans[1:] {
		l.Append(s, DefaultConfig(), nil)
	}
	return l
}

func makeParagraph(t *testing.T, lines ...*Line) *Paragraph {
	t.Helper()
	p, err := NewParagraph(lines[0])
	if err != nil {
		t.Fatalf("NewParagraph: %v", err)
	}
	for _, l := range lines[1:] {
		p.Append(l, DefaultConfig(), nil)
	}
	return p
}

func pageOf(number int, frags ...text.Fragment) text.PageData {
	return text.PageData{
		Number: number,
		Width:  612,
		Height: 792,
		Blocks: text.SingleBlock(frags),
	}
}

func assertBBoxInvariant(t *testing.T, n Node) {
	t.Helper()
	Walk(n, func(c Node) bool {
		if _, ok := c.(*Span); ok {
			return false
		}
		if got, want := c.BBox(), LeafUnion(c); got != want {
			t.Errorf("%s bbox = %+v, union of leaves = %+v", c.Kind(), got, want)
		}
		return true
	})
}
