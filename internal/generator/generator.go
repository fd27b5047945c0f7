/*
Package generator runs one full page generation pass over the site.

A run moves through fixed stages and stops at the first filesystem error:

 1. clear: delete and recreate the output directory
 2. load: read every configured source, skipping missing or broken ones
 3. render: write one page per record that has a tool name
 4. index: write the page map
*/
package generator

import (
	"fmt"
	"io"
	"os"
	"path"
	"sort"

	"go.uber.org/zap"

	"github.com/aitoolcomparator/tool-pages/internal/config"
	"github.com/aitoolcomparator/tool-pages/internal/index"
	"github.com/aitoolcomparator/tool-pages/internal/record"
	"github.com/aitoolcomparator/tool-pages/internal/render"
	"github.com/aitoolcomparator/tool-pages/internal/sources"
)

// Generator renders the site's tool pages.
type Generator struct {
	cfg      *config.Config
	logger   *zap.Logger
	out      io.Writer
	loader   *sources.Loader
	renderer *render.Renderer
}

// Collision records two tools that normalized to the same page file.
type Collision struct {
	File   string
	First  string
	Second string
}

// Result summarizes a completed run.
type Result struct {
	// Files lists every page written, in render order.
	Files []string

	// Map is the page map that was written.
	Map *index.PageMap

	// Skipped counts records without a tool name.
	Skipped int

	// Collisions lists pages that were overwritten by a later tool.
	Collisions []Collision

	// Failed lists sources that could not be loaded.
	Failed []sources.Report
}

// New creates a Generator. Progress is printed to out.
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		loader:   sources.NewLoader(logger, out),
		renderer: render.NewRenderer(render.DefaultBaseURL, cfg.OutputDir),
	}
}

// Sources returns the configured sources with resolved paths.
func (g *Generator) Sources() []sources.Source {
	srcs := make([]sources.Source, 0, len(g.cfg.Sources))
	for _, sc := range g.cfg.Sources {
		srcs = append(srcs, sources.Source{Path: g.cfg.DataPath(sc.File), Category: sc.Category})
	}
	return srcs
}

// Load reads all sources and returns the records that can become pages,
// along with the raw load result.
func (g *Generator) Load() ([]record.Record, *sources.Result, error) {
	loaded := g.loader.LoadAll(g.Sources())

	named := make([]record.Record, 0, len(loaded.Records))
	for _, rec := range loaded.Records {
		if rec.Name() == "" {
			g.logger.Debug("skipping record without tool name")
			continue
		}
		named = append(named, rec)
	}

	if len(named) == 0 {
		return nil, loaded, ErrNoRecords
	}
	return named, loaded, nil
}

// Run performs a full generation pass.
func (g *Generator) Run() (*Result, error) {
	outputDir := g.cfg.OutputPath()

	if err := clearDir(outputDir); err != nil {
		return nil, err
	}

	fmt.Fprintln(g.out, "🔍 Loading tool data...")
	records, loaded, err := g.Load()
	if err != nil {
		fmt.Fprintln(g.out, "  No tool records found in the configured data files.")
		return nil, err
	}
	fmt.Fprintln(g.out)

	result := &Result{
		Map:     index.New(),
		Skipped: len(loaded.Records) - len(records),
		Failed:  loaded.Failed(),
	}

	for _, rec := range records {
		name := rec.Name()
		file := render.PageFile(name)
		ref := g.cfg.PageRef(file)

		if previous, taken := result.Map.Add(name, ref); taken {
			collision := Collision{File: file, First: previous, Second: name}
			if g.cfg.Strict {
				return nil, &CollisionError{File: file, First: previous, Second: name}
			}
			result.Collisions = append(result.Collisions, collision)
			g.logger.Warn("page file collision, keeping the later tool",
				zap.String("file", file),
				zap.String("first", previous),
				zap.String("second", name))
		}

		fmt.Fprintf(g.out, "Generating %s -> %s\n", name, path.Join(g.cfg.OutputDir, file))
		written, err := g.renderer.WritePage(outputDir, rec)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, written)
	}

	if err := index.Write(g.cfg.MapPath(), result.Map); err != nil {
		return nil, err
	}

	g.printSummary(result, outputDir)
	return result, nil
}

func (g *Generator) printSummary(result *Result, outputDir string) {
	fmt.Fprintf(g.out, "\n✓ Generated %d tool pages in %s\n", len(result.Files), outputDir)

	files := append([]string(nil), result.Files...)
	sort.Strings(files)
	fmt.Fprintln(g.out, "Files generated:")
	for _, f := range files {
		fmt.Fprintf(g.out, "  - %s\n", f)
	}
	fmt.Fprintf(g.out, "✓ Wrote %d entries to %s\n", result.Map.Len(), g.cfg.MapPath())

	if len(result.Collisions) > 0 {
		fmt.Fprintf(g.out, "\n⚠️  %d page collisions (later tool kept):\n", len(result.Collisions))
		for _, c := range result.Collisions {
			fmt.Fprintf(g.out, "   - %s: %q replaced %q\n", c.File, c.Second, c.First)
		}
	}
	if len(result.Failed) > 0 {
		fmt.Fprintf(g.out, "\nℹ️  Skipped %d data files:\n", len(result.Failed))
		for _, rep := range result.Failed {
			fmt.Fprintf(g.out, "   - %s: %v\n", rep.Source.Name(), rep.Err)
		}
	}
}

// clearDir deletes dir and everything in it, then recreates it empty.
func clearDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear output directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
