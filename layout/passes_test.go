package layout

import (
	"testing"

	"github.com/tsawler/reflow/model"
)

func TestMergeContained_SameBaseline(t *testing.T) {
	outer := makeParagraph(t,
		makeLine(t, makeSpan(t, 0, 0, 30, 10, 12, "The")),
		makeLine(t, makeSpan(t, 0, 12, 100, 22, 12, "lazy dog")),
	)
	inner := makeParagraph(t, makeLine(t, makeSpan(t, 60, 0, 100, 10, 12, "fox")))

	diag := NewDiagnostics(1, nil)
	out := MergeContained([]*Paragraph{outer, inner}, DefaultConfig(), diag)
	if len(out) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(out))
	}
	if n := len(out[0].Lines()); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
	out[0].Sort()
	if got := out[0].Text(); got != "The fox lazy dog" {
		t.Errorf("Text() = %q", got)
	}
	if diag.Count(DiagInnerLineAppended) != 0 {
		t.Error("no line should have been appended")
	}
	assertBBoxInvariant(t, out[0])
}

func TestMergeContained_AppendsUnmatchedLine(t *testing.T) {
	outer := makeParagraph(t,
		makeLine(t, makeSpan(t, 0, 0, 100, 10, 12, "top")),
		makeLine(t, makeSpan(t, 0, 30, 100, 40, 12, "bottom")),
	)
	inner := makeParagraph(t, makeLine(t, makeSpan(t, 10, 15, 40, 25, 12, "middle")))

	diag := NewDiagnostics(1, nil)
	out := MergeContained([]*Paragraph{outer, inner}, DefaultConfig(), diag)
	if len(out) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(out))
	}
	if n := len(out[0].Lines()); n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
	if diag.Count(DiagInnerLineAppended) != 1 {
		t.Errorf("expected 1 appended-line diagnostic, got %d", diag.Count(DiagInnerLineAppended))
	}
	out[0].Sort()
	if got := out[0].Text(); got != "top middle bottom" {
		t.Errorf("Text() = %q", got)
	}
}

func TestMergeContained_LeavesDisjoint(t *testing.T) {
	a := makeParagraph(t, makeLine(t, makeSpan(t, 0, 0, 100, 10, 12, "a")))
	b := makeParagraph(t, makeLine(t, makeSpan(t, 200, 0, 300, 10, 12, "b")))
	overlapping := makeParagraph(t, makeLine(t, makeSpan(t, 50, 5, 150, 15, 12, "c")))

	out := MergeContained([]*Paragraph{a, b, overlapping}, DefaultConfig(), nil)
	if len(out) != 3 {
		t.Errorf("expected 3 paragraphs, got %d", len(out))
	}
}

func TestMergeContained_SingleParagraph(t *testing.T) {
	a := makeParagraph(t, makeLine(t, makeSpan(t, 0, 0, 100, 10, 12, "a")))
	if out := MergeContained([]*Paragraph{a}, DefaultConfig(), nil); len(out) != 1 {
		t.Errorf("expected 1 paragraph, got %d", len(out))
	}
}

func TestIsNearBottom(t *testing.T) {
	page := model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	cfg := DefaultConfig()

	body := makeParagraph(t, makeLine(t, makeSpan(t, 72, 100, 300, 110, 12, "body")))
	if IsNearBottom(body, page, cfg) {
		t.Error("body paragraph is not near the bottom")
	}

	footer := makeParagraph(t, makeLine(t, makeSpan(t, 290, 760, 310, 770, 10, "12")))
	if !IsNearBottom(footer, page, cfg) {
		t.Error("footer paragraph should be near the bottom")
	}

	cfg.NLineFooterMargin = 0
	if IsNearBottom(footer, page, cfg) {
		t.Error("a zero margin never matches")
	}
}

func TestRemoveFooters(t *testing.T) {
	page := model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	body := makeParagraph(t, makeLine(t, makeSpan(t, 72, 100, 300, 110, 12, "body")))
	footer := makeParagraph(t, makeLine(t, makeSpan(t, 290, 760, 310, 770, 10, "12")))

	diag := NewDiagnostics(1, nil)
	out := RemoveFooters([]*Paragraph{body, footer}, page, DefaultConfig(), diag)
	if len(out) != 1 || out[0] != body {
		t.Fatalf("RemoveFooters kept %d paragraphs", len(out))
	}
	if diag.Count(DiagFooterRemoved) != 1 {
		t.Errorf("expected 1 footer diagnostic")
	}
}
