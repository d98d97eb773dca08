// Command reflow prints the reading-order text of a PDF or JSON page dump.
//
// Usage:
//
//	reflow [flags] file.pdf
//
//	reflow -pages 1,3-5 -exclude-headers -exclude-footers report.pdf
//	reflow -config reflow.toml -json paper.pdf > paper.json
//	reflow -debug-png ./overlays -v paper.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/tsawler/reflow"
	"github.com/tsawler/reflow/config"
	"github.com/tsawler/reflow/export"
	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/reader"
	"github.com/tsawler/reflow/text"
)

func main() {
	var (
		configPath     = flag.String("config", "", "Path to a TOML, YAML or JSON tolerance file")
		pageList       = flag.String("pages", "", "Pages to extract, e.g. 1,3-5 (default: all)")
		parallel       = flag.Int("parallel", 1, "Pages built concurrently (0 = one per CPU)")
		keepNoisy      = flag.Bool("keep-noisy", false, "Keep pages that fail the letter-ratio filter")
		mergeContained = flag.Bool("merge-contained", false, "Merge paragraphs nested inside another")
		removeFooters  = flag.Bool("remove-footers", false, "Drop paragraphs near the bottom margin of each page")
		excludeHeaders = flag.Bool("exclude-headers", false, "Drop running headers repeated across pages")
		excludeFooters = flag.Bool("exclude-footers", false, "Drop running footers and page numbers")
		jsonOut        = flag.Bool("json", false, "Print the per-page document as JSON instead of text")
		htmlPath       = flag.String("html", "", "Also write an HTML outline of the pages to this file")
		pngDir         = flag.String("debug-png", "", "Also write a PNG overlay per page into this directory")
		dumpPages      = flag.Bool("dump-pages", false, "Print the raw page fragments as a JSON page dump and exit")
		verbose        = flag.Bool("v", false, "Log pipeline diagnostics to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pages, err := parsePages(*pageList)
	if err != nil {
		fatal(err)
	}

	if *dumpPages {
		if err := dump(path, pages); err != nil {
			fatal(err)
		}
		return
	}

	ext := reflow.Open(path).
		Pages(pages...).
		Parallel(*parallel).
		WithLogger(logger)
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		ext = ext.WithConfig(cfg)
	}
	if *keepNoisy {
		ext = ext.KeepNoisyPages()
	}
	if *mergeContained {
		ext = ext.MergeContained()
	}
	if *removeFooters {
		ext = ext.RemoveFooters()
	}
	if *excludeHeaders {
		ext = ext.ExcludeHeaders()
	}
	if *excludeFooters {
		ext = ext.ExcludeFooters()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Warnings are logged by the extractor at warn level
	results, _, err := ext.PageResultsContext(ctx)
	if err != nil {
		fatal(err)
	}

	built := make([]*layout.Page, 0, len(results))
	for _, r := range results {
		built = append(built, r.Page)
	}

	if *htmlPath != "" {
		if err := writeHTML(*htmlPath, path, built); err != nil {
			fatal(err)
		}
	}
	if *pngDir != "" {
		if err := writePNGs(*pngDir, built); err != nil {
			fatal(err)
		}
	}

	doc := reflow.DocumentFromResults(path, results)
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			fatal(err)
		}
	} else {
		fmt.Print(doc.Text())
	}
}

// dump writes the selected pages of path as a JSON page dump on stdout
func dump(path string, numbers []int) error {
	src, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	if len(numbers) == 0 {
		for n := 1; n <= src.PageCount(); n++ {
			numbers = append(numbers, n)
		}
	}
	pages := make([]text.PageData, 0, len(numbers))
	for _, n := range numbers {
		data, err := src.Page(n)
		if err != nil {
			return err
		}
		pages = append(pages, data)
	}
	return reader.EncodeJSON(os.Stdout, pages)
}

func writeHTML(out, title string, pages []*layout.Page) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := export.WriteHTML(f, pages, export.HTMLOptions{Title: title, Geometry: true}); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return f.Close()
}

func writePNGs(dir string, pages []*layout.Page) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	opts := export.DefaultImageOptions()
	for _, p := range pages {
		name := filepath.Join(dir, fmt.Sprintf("page-%03d.png", p.Number))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := export.WriteDebugPNG(f, p, opts); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "reflow: %v\n", err)
	os.Exit(1)
}
