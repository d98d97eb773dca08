package layout

import (
	"github.com/tsawler/reflow/model"
)

// Kind identifies the level of a node in the page tree
type Kind int

const (
	KindSpan Kind = iota
	KindLine
	KindParagraph
	KindColumn
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSpan:
		return "span"
	case KindLine:
		return "line"
	case KindParagraph:
		return "paragraph"
	case KindColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Node is the capability shared by every level of the page tree. The set of
// implementations is closed: *Span, *Line, *Paragraph and *Column.
type Node interface {
	// BBox is the bounding box; for composites, the union of all children
	BBox() model.Rect

	// FontSize is the leaf's font size, or the seed child's for composites
	FontSize() float64

	// Text is the serialized text of the subtree
	Text() string

	// Kind reports which variant this node is
	Kind() Kind

	// Children returns the owned children in their current order
	Children() []Node

	sealed()
}

// Leaves returns the spans under n in tree order
func Leaves(n Node) []*Span {
	if s, ok := n.(*Span); ok {
		return []*Span{s}
	}
	var out []*Span
	for _, c := range n.Children() {
		out = append(out, Leaves(c)...)
	}
	return out
}

// LeafUnion returns the union of the bounding boxes of every span under n.
// For a well-formed tree this equals n.BBox().
func LeafUnion(n Node) model.Rect {
	leaves := Leaves(n)
	if len(leaves) == 0 {
		return n.BBox()
	}
	r := leaves[0].BBox()
	for _, s := range leaves[1:] {
		r.Include(s.BBox())
	}
	return r
}

// Walk visits n and every descendant in pre-order. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}
