package export

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/model"
)

// HTMLOptions controls HTML output
type HTMLOptions struct {
	// Title is the document title. Default: "Document"
	Title string

	// Geometry adds data-bbox attributes with page coordinates to every
	// column and paragraph
	Geometry bool
}

// WriteHTML renders pages as a standalone HTML document
func WriteHTML(w io.Writer, pages []*layout.Page, opts HTMLOptions) error {
	if opts.Title == "" {
		opts.Title = "Document"
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	title := element(atom.Title)
	title.AppendChild(textNode(opts.Title))
	head.AppendChild(title)

	body := element(atom.Body)
	root.AppendChild(body)
	for _, p := range pages {
		body.AppendChild(pageNode(p, opts))
	}

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

func pageNode(p *layout.Page, opts HTMLOptions) *html.Node {
	section := element(atom.Section)
	section.Attr = []html.Attribute{
		{Key: "class", Val: "page"},
		{Key: "data-page", Val: strconv.Itoa(p.Number)},
	}

	for i, c := range p.Columns() {
		div := element(atom.Div)
		div.Attr = []html.Attribute{
			{Key: "class", Val: "column"},
			{Key: "data-column", Val: strconv.Itoa(i + 1)},
		}
		if opts.Geometry {
			div.Attr = append(div.Attr, bboxAttr(c.BBox()))
		}

		for _, para := range c.Paragraphs() {
			pn := element(atom.P)
			if opts.Geometry {
				pn.Attr = append(pn.Attr,
					bboxAttr(para.BBox()),
					html.Attribute{Key: "data-size", Val: formatFloat(para.FontSize())},
				)
			}
			pn.AppendChild(textNode(para.Text()))
			div.AppendChild(pn)
		}
		section.AppendChild(div)
	}
	return section
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func bboxAttr(r model.Rect) html.Attribute {
	return html.Attribute{
		Key: "data-bbox",
		Val: formatFloat(r.X0) + " " + formatFloat(r.Y0) + " " + formatFloat(r.X1) + " " + formatFloat(r.Y1),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
