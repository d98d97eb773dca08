package reader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// jsonSpan is a span as PDF text extractors dump it: boxes and points as
// arrays
type jsonSpan struct {
	BBox   []float64 `json:"bbox"`
	Size   float64   `json:"size"`
	Text   string    `json:"text"`
	Origin []float64 `json:"origin"`
	Font   string    `json:"font,omitempty"`
}

type jsonLine struct {
	Spans []jsonSpan `json:"spans"`
}

type jsonBlock struct {
	Lines []jsonLine `json:"lines"`
}

type jsonPage struct {
	Number int         `json:"number,omitempty"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

// JSONSource serves pages decoded from a page dump
type JSONSource struct {
	pages []text.PageData
}

// OpenJSON reads a page dump file
func OpenJSON(path string) (*JSONSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page dump: %w", err)
	}
	defer f.Close()

	src, err := DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// DecodeJSON decodes a page dump. Three layouts are accepted: an array of
// pages, an object with a "pages" array, or a single page object.
func DecodeJSON(r io.Reader) (*JSONSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dump: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to decode page dump: empty input")
	}

	var pages []jsonPage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &pages); err != nil {
			return nil, fmt.Errorf("failed to decode page dump: %w", err)
		}
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("failed to decode page dump: %w", err)
		}
		if _, ok := probe["pages"]; ok {
			var doc jsonDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("failed to decode page dump: %w", err)
			}
			pages = doc.Pages
		} else {
			var page jsonPage
			if err := json.Unmarshal(data, &page); err != nil {
				return nil, fmt.Errorf("failed to decode page dump: %w", err)
			}
			pages = []jsonPage{page}
		}
	default:
		return nil, fmt.Errorf("failed to decode page dump: unexpected %q", data[0])
	}

	src := &JSONSource{pages: make([]text.PageData, len(pages))}
	for i, p := range pages {
		pd, err := p.toPageData(i + 1)
		if err != nil {
			return nil, err
		}
		src.pages[i] = pd
	}
	return src, nil
}

// NewJSONSource serves already decoded pages
func NewJSONSource(pages []text.PageData) *JSONSource {
	return &JSONSource{pages: pages}
}

func (p jsonPage) toPageData(index int) (text.PageData, error) {
	number := p.Number
	if number == 0 {
		number = index
	}
	out := text.PageData{
		Number: number,
		Width:  p.Width,
		Height: p.Height,
		Blocks: make([]text.Block, 0, len(p.Blocks)),
	}
	for _, b := range p.Blocks {
		block := text.Block{Lines: make([]text.LineData, 0, len(b.Lines))}
		for _, l := range b.Lines {
			line := text.LineData{Spans: make([]text.Fragment, 0, len(l.Spans))}
			for _, s := range l.Spans {
				f, err := s.toFragment()
				if err != nil {
					return text.PageData{}, fmt.Errorf("page %d: %w", number, err)
				}
				line.Spans = append(line.Spans, f)
			}
			block.Lines = append(block.Lines, line)
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out, nil
}

func (s jsonSpan) toFragment() (text.Fragment, error) {
	bbox, ok := model.RectFromSlice(s.BBox)
	if !ok {
		return text.Fragment{}, fmt.Errorf("span %q: bbox needs 4 numbers, got %d", s.Text, len(s.BBox))
	}
	f := text.Fragment{BBox: bbox, Size: s.Size, Text: s.Text, Font: s.Font}
	switch len(s.Origin) {
	case 2:
		f.Origin = model.Point{X: s.Origin[0], Y: s.Origin[1]}
	case 0:
		// Without an origin, assume the baseline is the bottom of the box
		f.Origin = model.Point{X: bbox.X0, Y: bbox.Y1}
	default:
		return text.Fragment{}, fmt.Errorf("span %q: origin needs 2 numbers, got %d", s.Text, len(s.Origin))
	}
	return f, nil
}

// PageCount returns the number of pages
func (s *JSONSource) PageCount() int {
	return len(s.pages)
}

// Page returns a page, 1-indexed by position in the dump
func (s *JSONSource) Page(number int) (text.PageData, error) {
	if err := checkPage(number, len(s.pages)); err != nil {
		return text.PageData{}, err
	}
	return s.pages[number-1], nil
}

// Close is a no-op; the dump is read fully by OpenJSON
func (s *JSONSource) Close() error {
	return nil
}

// EncodeJSON writes pages as a page dump that DecodeJSON reads back
func EncodeJSON(w io.Writer, pages []text.PageData) error {
	doc := jsonDocument{Pages: make([]jsonPage, len(pages))}
	for i, p := range pages {
		jp := jsonPage{Number: p.Number, Width: p.Width, Height: p.Height, Blocks: make([]jsonBlock, 0, len(p.Blocks))}
		for _, b := range p.Blocks {
			jb := jsonBlock{Lines: make([]jsonLine, 0, len(b.Lines))}
			for _, l := range b.Lines {
				jl := jsonLine{Spans: make([]jsonSpan, 0, len(l.Spans))}
				for _, f := range l.Spans {
					jl.Spans = append(jl.Spans, jsonSpan{
						BBox:   []float64{f.BBox.X0, f.BBox.Y0, f.BBox.X1, f.BBox.Y1},
						Size:   f.Size,
						Text:   f.Text,
						Origin: []float64{f.Origin.X, f.Origin.Y},
						Font:   f.Font,
					})
				}
				jb.Lines = append(jb.Lines, jl)
			}
			jp.Blocks = append(jp.Blocks, jb)
		}
		doc.Pages[i] = jp
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode page dump: %w", err)
	}
	return nil
}
