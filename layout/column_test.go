package layout

import (
	"errors"
	"testing"
)

func TestNewColumn_NilSeed(t *testing.T) {
	if _, err := NewColumn(nil); !errors.Is(err, ErrInvalidConstruction) {
		t.Errorf("NewColumn(nil) error = %v, want ErrInvalidConstruction", err)
	}
}

func TestBuildColumn_Empty(t *testing.T) {
	if _, _, err := BuildColumn(nil, DefaultConfig()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("BuildColumn(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := BuildColumns(nil, DefaultConfig()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("BuildColumns(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestBuildColumn_HeadingJoinsBody(t *testing.T) {
	heading := makeParagraph(t, makeLine(t, makeSpan(t, 50, 0, 200, 20, 20, "Title")))
	body := makeParagraph(t, makeLine(t, makeSpan(t, 50, 300, 250, 310, 12, "Body")))

	columns, err := BuildColumns([]*Paragraph{body, heading}, DefaultConfig())
	if err != nil {
		t.Fatalf("BuildColumns: %v", err)
	}
	if len(columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(columns))
	}
	columns[0].Sort()
	if got := columns[0].Text(); got != "Title\nBody" {
		t.Errorf("Text() = %q, want %q", got, "Title\nBody")
	}
	assertBBoxInvariant(t, columns[0])
}

func TestBuildColumn_SeparatesMisaligned(t *testing.T) {
	left := makeParagraph(t, makeLine(t, makeSpan(t, 50, 100, 250, 110, 12, "left")))
	right := makeParagraph(t, makeLine(t, makeSpan(t, 320, 100, 520, 110, 12, "right")))

	columns, err := BuildColumns([]*Paragraph{right, left}, DefaultConfig())
	if err != nil {
		t.Fatalf("BuildColumns: %v", err)
	}
	if len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(columns))
	}
	if columns[0].Text() != "left" {
		t.Errorf("first column = %q, want the leftmost", columns[0].Text())
	}
}

func TestColumn_Children(t *testing.T) {
	p := makeParagraph(t, makeLine(t, makeSpan(t, 0, 0, 10, 10, 12, "x")))
	col, _ := NewColumn(p)
	if col.Kind() != KindColumn {
		t.Errorf("Kind() = %v", col.Kind())
	}
	children := col.Children()
	if len(children) != 1 || children[0] != Node(p) {
		t.Errorf("Children() = %v", children)
	}
	if leaves := Leaves(col); len(leaves) != 1 || leaves[0].Text() != "x" {
		t.Errorf("Leaves() = %v", leaves)
	}
}
