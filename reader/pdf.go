package reader

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// PDFConfig controls how glyphs are grouped into fragments
type PDFConfig struct {
	// GapRatio is the largest horizontal gap between consecutive glyphs of
	// one fragment, as a fraction of the font size. Larger gaps, including
	// every word space, start a new fragment; the layout stage joins the
	// fragments of a line with single spaces. Default: 0.15
	GapRatio float64

	// BaselineRatio is the largest baseline shift between consecutive glyphs
	// of one fragment, as a fraction of the font size. Default: 0.1
	BaselineRatio float64

	// Ascent and Descent place the top and bottom of a fragment's box
	// relative to its baseline, as fractions of the font size.
	// Defaults: 0.8 and 0.2
	Ascent  float64
	Descent float64
}

// DefaultPDFConfig returns the default glyph grouping configuration
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		GapRatio:      0.15,
		BaselineRatio: 0.1,
		Ascent:        0.8,
		Descent:       0.2,
	}
}

// letterBox is the page size assumed when a page carries no usable MediaBox
var letterBox = [4]float64{0, 0, 612, 792}

// PDFSource reads pages from a PDF file
type PDFSource struct {
	file   *os.File
	reader *pdf.Reader
	config PDFConfig
}

// OpenPDF opens a PDF file with the default glyph grouping
func OpenPDF(path string) (*PDFSource, error) {
	return OpenPDFWithConfig(path, DefaultPDFConfig())
}

// OpenPDFWithConfig opens a PDF file with a custom glyph grouping
func OpenPDFWithConfig(path string, config PDFConfig) (src *PDFSource, err error) {
	// The parser panics on some malformed files instead of returning errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &PDFSource{file: f, reader: r, config: config}, nil
}

// PageCount returns the number of pages
func (s *PDFSource) PageCount() int {
	return s.reader.NumPage()
}

// Page extracts the fragments of a page, 1-indexed
func (s *PDFSource) Page(number int) (data text.PageData, err error) {
	if err := checkPage(number, s.PageCount()); err != nil {
		return text.PageData{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: failed to read content: %v", number, r)
		}
	}()

	page := s.reader.Page(number)
	if page.V.IsNull() {
		return text.PageData{}, fmt.Errorf("page %d: missing page object", number)
	}

	box := mediaBox(page.V)
	data = text.PageData{
		Number: number,
		Width:  box[2] - box[0],
		Height: box[3] - box[1],
	}

	frags := groupGlyphs(page.Content().Text, box, s.config)
	data.Blocks = text.SingleBlock(frags)
	return data, nil
}

// Close closes the underlying file
func (s *PDFSource) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// mediaBox returns [llx, lly, urx, ury] of a page, following the Parent
// chain since MediaBox is inheritable
func mediaBox(v pdf.Value) [4]float64 {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			var r [4]float64
			for i := range r {
				r[i] = box.Index(i).Float64()
			}
			x0, x1 := math.Min(r[0], r[2]), math.Max(r[0], r[2])
			y0, y1 := math.Min(r[1], r[3]), math.Max(r[1], r[3])
			if x1 > x0 && y1 > y0 {
				return [4]float64{x0, y0, x1, y1}
			}
		}
		v = v.Key("Parent")
	}
	return letterBox
}

// run accumulates consecutive glyphs of one fragment
type run struct {
	font   string
	size   float64
	x0, x1 float64
	y      float64 // baseline in PDF space
	sb     strings.Builder
}

// groupGlyphs merges consecutive glyphs sharing font, size and baseline into
// fragments, converting from PDF space (y up) to page space (y down)
func groupGlyphs(glyphs []pdf.Text, box [4]float64, cfg PDFConfig) []text.Fragment {
	var (
		frags []text.Fragment
		cur   *run
	)

	flush := func() {
		if cur == nil {
			return
		}
		s := text.Normalize(cur.sb.String())
		baseline := box[3] - cur.y
		frags = append(frags, text.Fragment{
			BBox: model.Rect{
				X0: cur.x0 - box[0],
				Y0: baseline - cfg.Ascent*cur.size,
				X1: cur.x1 - box[0],
				Y1: baseline + cfg.Descent*cur.size,
			},
			Size:   cur.size,
			Text:   s,
			Origin: model.Point{X: cur.x0 - box[0], Y: baseline},
			Font:   cur.font,
		})
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" || g.FontSize <= 0 {
			continue
		}
		if cur != nil && !cur.continues(g, cfg) {
			flush()
		}
		if cur == nil {
			cur = &run{font: g.Font, size: g.FontSize, x0: g.X, x1: g.X + g.W, y: g.Y}
			cur.sb.WriteString(g.S)
			continue
		}
		cur.sb.WriteString(g.S)
		if end := g.X + g.W; end > cur.x1 {
			cur.x1 = end
		}
	}
	flush()
	return frags
}

// continues reports whether g extends the run
func (r *run) continues(g pdf.Text, cfg PDFConfig) bool {
	if g.Font != r.font || g.FontSize != r.size {
		return false
	}
	if math.Abs(g.Y-r.y) > cfg.BaselineRatio*r.size {
		return false
	}
	gap := g.X - r.x1
	// A glyph behind the run means the content stream jumped back
	return gap >= -cfg.BaselineRatio*r.size && gap <= cfg.GapRatio*r.size
}
