// integration.go connects built pages to the Document model
package reflow

import (
	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/model"
)

// AnalyzeDocument builds every page of a file with default settings and
// returns the per-page results as a Document.
//
// Example:
//
//	doc, err := reflow.AnalyzeDocument("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, page := range doc.Pages {
//	    fmt.Printf("Page %d: %d columns, accepted=%v\n",
//	        page.Number, page.Columns, page.Accepted)
//	}
func AnalyzeDocument(path string) (*model.Document, error) {
	return AnalyzeDocumentWithConfig(path, layout.DefaultConfig())
}

// AnalyzeDocumentWithConfig is AnalyzeDocument with custom tolerances
func AnalyzeDocumentWithConfig(path string, config layout.Config) (*model.Document, error) {
	doc, _, err := Open(path).WithConfig(config).Document()
	return doc, err
}

// DocumentFromResults converts page results to the Document model. source
// names the document in the result.
func DocumentFromResults(source string, results []PageResult) *model.Document {
	doc := model.NewDocument(source)
	for _, r := range results {
		pt := model.PageText{
			Number:      r.Number,
			Fragments:   r.Fragments,
			LetterRatio: r.LetterRatio,
			Accepted:    r.Accepted,
		}
		if r.Page != nil {
			bbox := r.Page.BBox()
			pt.Width = bbox.Width()
			pt.Height = bbox.Height()
			pt.Text = r.Page.Text()
			pt.Columns = len(r.Page.Columns())
		}
		doc.AddPage(pt)
	}
	return doc
}
