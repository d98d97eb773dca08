package text

import (
	"testing"

	"github.com/tsawler/reflow/model"
)

func makeSpan(txt string, x0, y0, x1, y1 float64) Fragment {
	return Fragment{
		BBox:   model.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1},
		Size:   y1 - y0,
		Text:   txt,
		Origin: model.Point{X: x0, Y: y1},
	}
}

func TestPageDataFragments(t *testing.T) {
	page := PageData{
		Number: 1,
		Width:  612,
		Height: 792,
		Blocks: []Block{
			{Lines: []LineData{
				{Spans: []Fragment{makeSpan("a", 0, 0, 10, 10), makeSpan("b", 20, 0, 30, 10)}},
				{Spans: []Fragment{makeSpan("c", 0, 20, 10, 30)}},
			}},
			{Lines: []LineData{
				{Spans: []Fragment{makeSpan("d", 0, 40, 10, 50)}},
			}},
		},
	}

	frags := page.Fragments()
	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d", len(frags))
	}
	if page.FragmentCount() != 4 {
		t.Errorf("FragmentCount() = %d, want 4", page.FragmentCount())
	}

	order := ""
	for _, f := range frags {
		order += f.Text
	}
	if order != "abcd" {
		t.Errorf("expected reporting order abcd, got %s", order)
	}

	if b := page.Bounds(); b != (model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestPageDataEmpty(t *testing.T) {
	var page PageData
	if len(page.Fragments()) != 0 || page.FragmentCount() != 0 {
		t.Error("empty page should have no fragments")
	}
}

func TestSingleBlock(t *testing.T) {
	if SingleBlock(nil) != nil {
		t.Error("expected nil blocks for nil fragments")
	}

	blocks := SingleBlock([]Fragment{makeSpan("x", 0, 0, 1, 1)})
	page := PageData{Blocks: blocks}
	if page.FragmentCount() != 1 {
		t.Errorf("expected 1 fragment, got %d", page.FragmentCount())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"\ufb01nd", "find"},
		{"e\u0301", "\u00e9"},
		{"zero\u200bwidth", "zerowidth"},
		{"co\u00adoperate", "cooperate"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLetterRatio(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abcd", 1},
		{"ab12", 0.5},
		{"123 456 789", 0},
	}

	for _, tt := range tests {
		if got := LetterRatio(tt.in); got != tt.want {
			t.Errorf("LetterRatio(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsTextPage(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"123 456 789", false},
		{"Hello world", true},
		{"ab12", false}, // exactly half is not enough
		{"Страница текста", true},
	}

	for _, tt := range tests {
		if got := IsTextPage(tt.in, DefaultMinLetterRatio); got != tt.want {
			t.Errorf("IsTextPage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
