package export

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tsawler/reflow/layout"
)

// ImageOptions controls the debug overlay
type ImageOptions struct {
	// Scale converts page units to pixels. Default: 1
	Scale float64

	// Labels draws the reading-order position of every column and paragraph
	Labels bool
}

// DefaultImageOptions returns a 1:1 overlay with labels
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Scale: 1, Labels: true}
}

// DebugImage draws the boxes of every level of a built page
func DebugImage(p *layout.Page, opts ImageOptions) image.Image {
	return drawPage(p, opts).Image()
}

// WriteDebugPNG draws the page overlay and encodes it as PNG
func WriteDebugPNG(w io.Writer, p *layout.Page, opts ImageOptions) error {
	if err := drawPage(p, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", p.Number, err)
	}
	return nil
}

func drawPage(p *layout.Page, opts ImageOptions) *gg.Context {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	s := opts.Scale

	bbox := p.BBox()
	width := int(math.Ceil(bbox.Width() * s))
	height := int(math.Ceil(bbox.Height() * s))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(s, s)
	dc.SetLineWidth(1 / s)

	for _, l := range p.Lines() {
		for _, sp := range l.Spans() {
			strokeBox(dc, sp, 0.75, 0.75, 0.75)
		}
		strokeBox(dc, l, 0.2, 0.4, 0.9)
	}
	for _, para := range p.Paragraphs() {
		strokeBox(dc, para, 0.1, 0.6, 0.2)
	}
	for _, c := range p.Columns() {
		strokeBox(dc, c, 0.85, 0.1, 0.1)
	}

	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		n := 0
		for ci, c := range p.Columns() {
			r := c.BBox()
			dc.SetRGB(0.85, 0.1, 0.1)
			dc.DrawString(fmt.Sprintf("c%d", ci+1), r.X0, r.Y0-2)
			for _, para := range c.Paragraphs() {
				n++
				pr := para.BBox()
				dc.SetRGB(0.1, 0.6, 0.2)
				dc.DrawStringAnchored(fmt.Sprintf("p%d", n), pr.X1+2, pr.Y0, 0, 1)
			}
		}
	}
	return dc
}

func strokeBox(dc *gg.Context, n layout.Node, r, g, b float64) {
	box := n.BBox()
	dc.SetRGB(r, g, b)
	dc.DrawRectangle(box.X0, box.Y0, box.Width(), box.Height())
	dc.Stroke()
}
