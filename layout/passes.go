package layout

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/tsawler/reflow/model"
)

// MergeContained folds every paragraph whose bounding box lies inside an
// earlier paragraph's box into that paragraph. This repairs justified text
// whose wide word gaps split one visual line into several spans that line
// clustering could not join. Paragraphs are visited in slice order; the
// result keeps the surviving paragraphs in that order.
//
// A merge never grows the outer paragraph's box, so each outer paragraph
// needs a single spatial query.
func MergeContained(paragraphs []*Paragraph, cfg Config, diag *Diagnostics) []*Paragraph {
	if len(paragraphs) < 2 {
		return paragraphs
	}

	var tr rtree.RTreeG[int]
	for i, p := range paragraphs {
		tr.Insert(p.bbox.Min(), p.bbox.Max(), i)
	}

	removed := make([]bool, len(paragraphs))
	for i, outer := range paragraphs {
		if removed[i] {
			continue
		}

		var candidates []int
		tr.Search(outer.bbox.Min(), outer.bbox.Max(), func(_, _ [2]float64, j int) bool {
			if j > i && !removed[j] {
				candidates = append(candidates, j)
			}
			return true
		})
		sort.Ints(candidates)

		for _, j := range candidates {
			if outer.Contains(paragraphs[j]) {
				outer.MergeInner(paragraphs[j], cfg, diag)
				removed[j] = true
			}
		}
	}

	out := make([]*Paragraph, 0, len(paragraphs))
	for i, p := range paragraphs {
		if !removed[i] {
			out = append(out, p)
		}
	}
	return out
}

// IsNearBottom reports whether p ends within NLineFooterMargin of its own
// average line heights from the bottom of the page
func IsNearBottom(p *Paragraph, page model.Rect, cfg Config) bool {
	return (page.Y1-p.bbox.Y1)/p.avgLineHeight < cfg.NLineFooterMargin
}

// RemoveFooters drops the paragraphs that sit near the bottom of the page.
// Page numbers and running footers go, and so does any genuine last
// paragraph close to the margin.
func RemoveFooters(paragraphs []*Paragraph, page model.Rect, cfg Config, diag *Diagnostics) []*Paragraph {
	out := make([]*Paragraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		if IsNearBottom(p, page, cfg) {
			diag.add(DiagFooterRemoved, p.bbox, "removed footer %q", p.Text())
			continue
		}
		out = append(out, p)
	}
	return out
}
