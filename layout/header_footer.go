package layout

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/reflow/model"
	"github.com/tsawler/reflow/text"
)

// HeaderFooterRegion represents a detected running header or footer
type HeaderFooterRegion struct {
	// Type indicates if this is a header or footer
	Type RegionType

	// BBox is the union of the matching fragments, with Y measured from the
	// page edge the region belongs to
	BBox model.Rect

	// Text is the typical text content
	Text string

	// IsPageNumber indicates if this region contains page numbers
	IsPageNumber bool

	// Confidence is the detection confidence (0.0 to 1.0)
	Confidence float64

	// Pages lists the page numbers that carry this header/footer
	Pages []int
}

// RegionType indicates whether a region is a header or footer
type RegionType int

const (
	Header RegionType = iota
	Footer
)

func (r RegionType) String() string {
	if r == Header {
		return "header"
	}
	return "footer"
}

// HeaderFooterConfig holds configuration for header/footer detection
type HeaderFooterConfig struct {
	// HeaderRegionHeight is the height from top of page to consider as header zone
	// Default: 72 points (1 inch)
	HeaderRegionHeight float64

	// FooterRegionHeight is the height from bottom of page to consider as footer zone
	// Default: 72 points (1 inch)
	FooterRegionHeight float64

	// MinOccurrenceRatio is the minimum fraction of pages a text must appear on
	// to be considered a header/footer (0.0 to 1.0)
	// Default: 0.5 (50% of pages)
	MinOccurrenceRatio float64

	// PositionTolerance is the maximum Y difference for text to be considered same position
	// Default: 5 points
	PositionTolerance float64

	// XPositionTolerance is the maximum X difference for text to be considered same position
	// Default: 10 points
	XPositionTolerance float64

	// MinPages is the minimum number of pages required for header/footer detection
	// Default: 2
	MinPages int
}

// DefaultHeaderFooterConfig returns sensible default configuration
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		HeaderRegionHeight: 72.0,
		FooterRegionHeight: 72.0,
		MinOccurrenceRatio: 0.5,
		PositionTolerance:  5.0,
		XPositionTolerance: 10.0,
		MinPages:           2,
	}
}

// HeaderFooterDetector detects running headers and footers across pages
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a new detector with default configuration
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: DefaultHeaderFooterConfig(),
	}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{
		config: config,
	}
}

// HeaderFooterResult contains the detection results
type HeaderFooterResult struct {
	Headers []HeaderFooterRegion
	Footers []HeaderFooterRegion
	Config  HeaderFooterConfig
}

// Detect looks for text repeated at the same position near the top or
// bottom edge of at least MinOccurrenceRatio of the pages
func (d *HeaderFooterDetector) Detect(pages []text.PageData) *HeaderFooterResult {
	if len(pages) < d.config.MinPages {
		return &HeaderFooterResult{Config: d.config}
	}

	headerCandidates := d.extractCandidates(pages, Header)
	footerCandidates := d.extractCandidates(pages, Footer)

	return &HeaderFooterResult{
		Headers: d.findRepeatingPatterns(headerCandidates, len(pages), Header),
		Footers: d.findRepeatingPatterns(footerCandidates, len(pages), Footer),
		Config:  d.config,
	}
}

// candidate represents a potential header/footer text
type candidate struct {
	Text   string
	X      float64
	Y      float64 // distance from the top for headers, from the bottom for footers
	Width  float64
	Height float64
	Page   int
}

// edgeDistance returns how far f is from the page edge of the given region
func edgeDistance(f text.Fragment, pageHeight float64, regionType RegionType) float64 {
	if regionType == Header {
		return f.BBox.Y0
	}
	return pageHeight - f.BBox.Y1
}

// extractCandidates extracts header or footer candidates from pages
func (d *HeaderFooterDetector) extractCandidates(pages []text.PageData, regionType RegionType) []candidate {
	region := d.config.HeaderRegionHeight
	if regionType == Footer {
		region = d.config.FooterRegionHeight
	}

	var candidates []candidate
	for _, page := range pages {
		for _, frag := range page.Fragments() {
			t := strings.TrimSpace(frag.Text)
			if t == "" {
				continue
			}
			dist := edgeDistance(frag, page.Height, regionType)
			if dist < region {
				candidates = append(candidates, candidate{
					Text:   t,
					X:      frag.BBox.X0,
					Y:      dist,
					Width:  frag.BBox.Width(),
					Height: frag.BBox.Height(),
					Page:   page.Number,
				})
			}
		}
	}
	return candidates
}

// findRepeatingPatterns finds text that repeats across pages
func (d *HeaderFooterDetector) findRepeatingPatterns(candidates []candidate, pageCount int, regionType RegionType) []HeaderFooterRegion {
	if len(candidates) == 0 {
		return nil
	}

	// Group candidates by text with page numbers masked
	groups := make(map[string][]candidate)
	for _, c := range candidates {
		normalized := normalizeForComparison(c.Text)
		groups[normalized] = append(groups[normalized], c)
	}

	minOccurrences := int(float64(pageCount) * d.config.MinOccurrenceRatio)
	if minOccurrences < 2 {
		minOccurrences = 2
	}

	var regions []HeaderFooterRegion
	for normalizedText, group := range groups {
		// Single letters are likely pieces of larger text
		if len(normalizedText) <= 2 && !isPageNumberPattern(normalizedText) {
			continue
		}

		pageSet := make(map[int]bool)
		for _, c := range group {
			pageSet[c.Page] = true
		}
		if len(pageSet) < minOccurrences {
			continue
		}
		if !d.hasConsistentPosition(group) {
			continue
		}

		isPageNum := isPageNumberPattern(normalizedText) || containsPageNumberPattern(group)
		representativeText := group[0].Text
		if isPageNum {
			representativeText = "[Page Number]"
		}

		pageNumbers := make([]int, 0, len(pageSet))
		for n := range pageSet {
			pageNumbers = append(pageNumbers, n)
		}
		sort.Ints(pageNumbers)

		regions = append(regions, HeaderFooterRegion{
			Type:         regionType,
			BBox:         groupBBox(group),
			Text:         representativeText,
			IsPageNumber: isPageNum,
			Confidence:   d.calculateConfidence(len(pageSet), pageCount),
			Pages:        pageNumbers,
		})
	}

	// Highest confidence first; text breaks ties so map order never leaks
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Confidence != regions[j].Confidence {
			return regions[i].Confidence > regions[j].Confidence
		}
		return regions[i].Text < regions[j].Text
	})

	return regions
}

// hasConsistentPosition checks if candidates appear at consistent positions
func (d *HeaderFooterDetector) hasConsistentPosition(group []candidate) bool {
	if len(group) < 2 {
		return false
	}

	refY := group[0].Y
	refX := group[0].X
	for _, c := range group[1:] {
		if absFloat(c.Y-refY) > d.config.PositionTolerance {
			return false
		}
		if absFloat(c.X-refX) > d.config.XPositionTolerance {
			return false
		}
	}
	return true
}

// groupBBox calculates the bounding box for a group of candidates
func groupBBox(group []candidate) model.Rect {
	r := model.Rect{X0: group[0].X, Y0: group[0].Y, X1: group[0].X + group[0].Width, Y1: group[0].Y + group[0].Height}
	for _, c := range group[1:] {
		r.Include(model.Rect{X0: c.X, Y0: c.Y, X1: c.X + c.Width, Y1: c.Y + c.Height})
	}
	return r
}

// calculateConfidence derives confidence from the occurrence ratio. Only
// position-consistent groups get here, hence the fixed bonus.
func (d *HeaderFooterDetector) calculateConfidence(pagesWithText, totalPages int) float64 {
	if totalPages == 0 {
		return 0
	}
	confidence := float64(pagesWithText)/float64(totalPages)*0.9 + 0.1
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

var digitRun = regexp.MustCompile(`\d+`)

// normalizeForComparison replaces runs of digits with a placeholder
func normalizeForComparison(s string) string {
	return digitRun.ReplaceAllString(s, "#")
}

// pageNumberPatterns are common page number shapes after normalization
var pageNumberPatterns = []string{
	"#",
	"Page #",
	"- # -",
	"# of #",
	"Page # of #",
	"#/#",
	"p. #",
	"p.#",
	"pg #",
	"pg. #",
}

// isPageNumberPattern checks if normalized text looks like a page number
func isPageNumberPattern(normalizedText string) bool {
	trimmed := strings.TrimSpace(normalizedText)
	for _, pattern := range pageNumberPatterns {
		if strings.EqualFold(trimmed, pattern) {
			return true
		}
	}
	return false
}

// containsPageNumberPattern checks whether the numbers in a group mostly
// form a sequence
func containsPageNumberPattern(group []candidate) bool {
	if len(group) < 2 {
		return false
	}

	var numbers []int
	for _, c := range group {
		for _, match := range digitRun.FindAllString(c.Text, -1) {
			if num, err := strconv.Atoi(match); err == nil {
				numbers = append(numbers, num)
			}
		}
	}
	if len(numbers) < 2 {
		return false
	}

	sort.Ints(numbers)
	sequential := 0
	for i := 1; i < len(numbers); i++ {
		if numbers[i]-numbers[i-1] == 1 {
			sequential++
		}
	}
	return sequential >= len(numbers)/2
}

// FilterPage returns a copy of page without the fragments that belong to a
// detected header or footer
func (r *HeaderFooterResult) FilterPage(page text.PageData, headers, footers bool) text.PageData {
	if r == nil || (!headers && !footers) {
		return page
	}

	out := page
	out.Blocks = make([]text.Block, 0, len(page.Blocks))
	for _, b := range page.Blocks {
		nb := text.Block{Lines: make([]text.LineData, 0, len(b.Lines))}
		for _, l := range b.Lines {
			nl := text.LineData{Spans: make([]text.Fragment, 0, len(l.Spans))}
			for _, f := range l.Spans {
				if headers && r.matches(r.Headers, page, f, Header) {
					continue
				}
				if footers && r.matches(r.Footers, page, f, Footer) {
					continue
				}
				nl.Spans = append(nl.Spans, f)
			}
			nb.Lines = append(nb.Lines, nl)
		}
		out.Blocks = append(out.Blocks, nb)
	}
	return out
}

func (r *HeaderFooterResult) matches(regions []HeaderFooterRegion, page text.PageData, f text.Fragment, regionType RegionType) bool {
	limit := r.Config.HeaderRegionHeight
	if regionType == Footer {
		limit = r.Config.FooterRegionHeight
	}
	if edgeDistance(f, page.Height, regionType) >= limit {
		return false
	}
	for _, region := range regions {
		if !containsPage(region.Pages, page.Number) {
			continue
		}
		if textsMatch(f.Text, region.Text, region.IsPageNumber) {
			return true
		}
	}
	return false
}

// containsPage checks if a page number is in the list
func containsPage(pages []int, number int) bool {
	for _, p := range pages {
		if p == number {
			return true
		}
	}
	return false
}

// textsMatch checks if two texts match (considering page numbers)
func textsMatch(fragText, regionText string, isPageNumber bool) bool {
	fragText = strings.TrimSpace(fragText)
	regionText = strings.TrimSpace(regionText)

	if isPageNumber {
		return isPageNumberPattern(normalizeForComparison(fragText))
	}
	if fragText == regionText {
		return true
	}
	return normalizeForComparison(fragText) == normalizeForComparison(regionText)
}

// HasHeaders returns true if any headers were detected
func (r *HeaderFooterResult) HasHeaders() bool {
	return r != nil && len(r.Headers) > 0
}

// HasFooters returns true if any footers were detected
func (r *HeaderFooterResult) HasFooters() bool {
	return r != nil && len(r.Footers) > 0
}

// HasHeadersOrFooters returns true if any headers or footers were detected
func (r *HeaderFooterResult) HasHeadersOrFooters() bool {
	return r.HasHeaders() || r.HasFooters()
}

// Summary returns a human-readable summary of detection results
func (r *HeaderFooterResult) Summary() string {
	if r == nil || !r.HasHeadersOrFooters() {
		return "No headers or footers detected"
	}

	var parts []string
	if len(r.Headers) > 0 {
		texts := make([]string, len(r.Headers))
		for i, h := range r.Headers {
			texts[i] = h.Text
		}
		parts = append(parts, "Headers: "+strings.Join(texts, ", "))
	}
	if len(r.Footers) > 0 {
		texts := make([]string, len(r.Footers))
		for i, f := range r.Footers {
			texts[i] = f.Text
		}
		parts = append(parts, "Footers: "+strings.Join(texts, ", "))
	}
	return strings.Join(parts, "; ")
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
