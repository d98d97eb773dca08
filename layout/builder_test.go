package layout

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/tsawler/reflow/text"
)

func twoColumnFragments() []text.Fragment {
	return []text.Fragment{
		makeFragment(50, 100, 98, 110, 12, "Left one"),
		makeFragment(50, 112, 98, 122, 12, "Left two"),
		makeFragment(320, 100, 374, 110, 12, "Right one"),
		makeFragment(320, 112, 374, 122, 12, "Right two"),
	}
}

func TestBuilder_TwoColumns(t *testing.T) {
	page, err := NewBuilder().Build(pageOf(1, twoColumnFragments()...))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(page.Columns()) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(page.Columns()))
	}
	want := "Left one Left two\nRight one Right two"
	if page.Text() != want {
		t.Errorf("Text() = %q, want %q", page.Text(), want)
	}
	for _, c := range page.Columns() {
		assertBBoxInvariant(t, c)
	}
}

func TestBuilder_Transitions(t *testing.T) {
	page, err := NewBuilder().Build(pageOf(1, twoColumnFragments()...))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []State{
		StateRawInput, StateSpansBuilt, StateLinesBuilt, StateParagraphsBuilt,
		StateColumnsBuilt, StateSorted, StateSerialized,
	}
	got := page.Transitions()
	if len(got) != len(want) {
		t.Fatalf("Transitions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %s, want %s", i, got[i], want[i])
		}
	}
	if page.State() != StateSerialized {
		t.Errorf("State() = %s", page.State())
	}
}

func TestBuilder_DegeneratePage(t *testing.T) {
	for name, data := range map[string]text.PageData{
		"no fragments": pageOf(4),
		"only blanks": pageOf(4,
			makeFragment(0, 0, 40, 10, 12, "   "),
			makeFragment(0, 20, 0, 30, 12, "|"),
		),
	} {
		page, err := NewBuilder().Build(data)
		if err != nil {
			t.Fatalf("%s: Build: %v", name, err)
		}
		got := page.Transitions()
		if len(got) != 2 || got[0] != StateRawInput || got[1] != StateSerialized {
			t.Errorf("%s: Transitions() = %v, want [RawInput Serialized]", name, got)
		}
		if page.Text() != "" {
			t.Errorf("%s: Text() = %q, want empty", name, page.Text())
		}
		if page.Number != 4 {
			t.Errorf("%s: Number = %d", name, page.Number)
		}
	}
}

func TestBuilder_EmptyVersusBlank(t *testing.T) {
	empty, _ := NewBuilder().Build(pageOf(1))
	if !empty.IsEmpty() {
		t.Error("page without fragments should be empty")
	}

	blank, _ := NewBuilder().Build(pageOf(1, makeFragment(0, 0, 40, 10, 12, " ")))
	if blank.IsEmpty() {
		t.Error("page with a blank fragment is not empty")
	}
	if blank.FragmentCount() != 1 || blank.SpanCount() != 0 {
		t.Errorf("FragmentCount/SpanCount = %d/%d, want 1/0", blank.FragmentCount(), blank.SpanCount())
	}
	if blank.Diagnostics().Count(DiagSpanDropped) != 1 {
		t.Errorf("expected 1 dropped span diagnostic")
	}
}

func TestBuilder_OrderIndependent(t *testing.T) {
	frags := append(twoColumnFragments(),
		makeFragment(50, 20, 200, 40, 20, "Heading"),
		makeFragment(104, 100, 140, 110, 12, "tail"),
	)
	ref, err := NewBuilder().BuildFragments(frags, 612, 792)
	if err != nil {
		t.Fatalf("BuildFragments: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]text.Fragment, len(frags))
		copy(shuffled, frags)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		page, err := NewBuilder().BuildFragments(shuffled, 612, 792)
		if err != nil {
			t.Fatalf("BuildFragments: %v", err)
		}
		if page.Text() != ref.Text() {
			t.Fatalf("permutation %d: Text() = %q, want %q", i, page.Text(), ref.Text())
		}
	}
}

func TestBuilder_DiscardsUpstreamGrouping(t *testing.T) {
	frags := twoColumnFragments()
	grouped := text.PageData{
		Number: 1, Width: 612, Height: 792,
		Blocks: []text.Block{
			{Lines: []text.LineData{{Spans: frags[:1]}, {Spans: frags[2:3]}}},
			{Lines: []text.LineData{{Spans: frags[1:2]}, {Spans: frags[3:]}}},
		},
	}
	a, _ := NewBuilder().Build(grouped)
	b, _ := NewBuilder().Build(pageOf(1, frags...))
	if a.Text() != b.Text() {
		t.Errorf("grouped = %q, flat = %q", a.Text(), b.Text())
	}
}

func TestBuilder_ParagraphsAndLinesAccessors(t *testing.T) {
	page, err := NewBuilder().Build(pageOf(1, twoColumnFragments()...))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n := len(page.Paragraphs()); n != 2 {
		t.Errorf("Paragraphs() = %d, want 2", n)
	}
	if n := len(page.Lines()); n != 4 {
		t.Errorf("Lines() = %d, want 4", n)
	}
	if page.BBox().X1 != 612 || page.BBox().Y1 != 792 {
		t.Errorf("BBox() = %+v", page.BBox())
	}
}

func TestNewBuilderWithConfig_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NCharDist = 0
	if _, err := NewBuilderWithConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestBuilder_WithOptionsCopies(t *testing.T) {
	base := NewBuilder()
	withFooters := base.WithOptions(BuildOptions{RemoveFooters: true})
	if base.Options().RemoveFooters {
		t.Error("WithOptions must not modify the receiver")
	}
	if !withFooters.Options().RemoveFooters {
		t.Error("WithOptions did not apply")
	}
}

func TestBuilder_RemoveFootersOption(t *testing.T) {
	frags := []text.Fragment{
		makeFragment(72, 100, 300, 110, 12, "Body text"),
		makeFragment(290, 770, 310, 780, 10, "7"),
	}
	plain, _ := NewBuilder().BuildFragments(frags, 612, 792)
	if !strings.Contains(plain.Text(), "7") {
		t.Errorf("footer pass is off by default, got %q", plain.Text())
	}

	page, err := NewBuilder().WithOptions(BuildOptions{RemoveFooters: true}).BuildFragments(frags, 612, 792)
	if err != nil {
		t.Fatalf("BuildFragments: %v", err)
	}
	if page.Text() != "Body text" {
		t.Errorf("Text() = %q, want %q", page.Text(), "Body text")
	}
	if page.Diagnostics().Count(DiagFooterRemoved) != 1 {
		t.Error("expected a footer diagnostic")
	}
}

func TestBuilder_LogsFontMismatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	diag := NewDiagnostics(2, logger)
	line, _ := NewLine(makeSpan(t, 0, 10, 40, 20, 12, "small"))
	line.Append(makeSpan(t, 45, 10, 85, 20, 16, "large"), DefaultConfig(), diag)

	out := buf.String()
	if !strings.Contains(out, "kind=font-mismatch") || !strings.Contains(out, "page=2") {
		t.Errorf("log output = %q", out)
	}
}

func TestBuilder_WithLoggerNil(t *testing.T) {
	b := NewBuilder().WithLogger(nil)
	if _, err := b.Build(pageOf(1, twoColumnFragments()...)); err != nil {
		t.Fatalf("Build: %v", err)
	}
}

func TestState_String(t *testing.T) {
	if StateLinesBuilt.String() != "LinesBuilt" {
		t.Errorf("String() = %q", StateLinesBuilt.String())
	}
	if State(99).String() != "Unknown" {
		t.Errorf("String() = %q", State(99).String())
	}
}
