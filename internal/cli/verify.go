package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aitoolcomparator/tool-pages/internal/config"
	"github.com/aitoolcomparator/tool-pages/internal/generator"
	"github.com/aitoolcomparator/tool-pages/internal/index"
	"github.com/aitoolcomparator/tool-pages/internal/render"
)

// NewVerifyCmd creates the 'verify' command for checking generated output.
func NewVerifyCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify generated pages against the page map and data files",
		Long: `Check that every page listed in tool_page_map.json exists, that every
page in the output directory is listed, and that every tool in the data files
has an up-to-date entry.`,
		Example: `  tool-pages verify
  tool-pages verify --site ./website`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}

	return cmd
}

// verifyReport collects the problems found by runVerify.
type verifyReport struct {
	problems []string
}

func (r *verifyReport) addf(format string, args ...interface{}) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func runVerify(cmd *cobra.Command, opts *Options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	m, err := index.Read(cfg.MapPath())
	if err != nil {
		return fmt.Errorf("%w\n💡 Run 'tool-pages generate' first", err)
	}
	fmt.Fprintf(out, "✓ Page map: %s (%d entries)\n", cfg.MapPath(), m.Len())

	report := &verifyReport{}
	checkMappedFiles(cfg, m, report)
	checkUnmappedFiles(cfg, m, report)

	records, _, err := generator.New(cfg, opts.Logger, nil).Load()
	if err != nil {
		report.addf("no tool records could be loaded from %s", cfg.DataPath(""))
	}
	for _, rec := range records {
		want := cfg.PageRef(render.PageFile(rec.Name()))
		got, ok := m.Path(rec.Name())
		switch {
		case !ok:
			report.addf("%s: not in page map", rec.Name())
		case got != want:
			report.addf("%s: mapped to %s, expected %s", rec.Name(), got, want)
		}
	}
	if err == nil {
		fmt.Fprintf(out, "✓ Tools in data files: %d\n", len(records))
	}

	if len(report.problems) == 0 {
		fmt.Fprintln(out, "✓ All pages verified")
		return nil
	}

	for _, p := range report.problems {
		fmt.Fprintf(out, "✗ %s\n", p)
	}
	return fmt.Errorf("verification failed: %d problems\n💡 Run 'tool-pages generate' to rebuild the pages", len(report.problems))
}

// checkMappedFiles reports map entries whose page file is missing.
func checkMappedFiles(cfg *config.Config, m *index.PageMap, report *verifyReport) {
	for _, ref := range m.Paths() {
		if _, err := os.Stat(filepath.Join(cfg.SiteDir, filepath.FromSlash(ref))); err != nil {
			report.addf("%s: listed in page map but missing", ref)
		}
	}
}

// checkUnmappedFiles reports pages in the output directory that no entry points to.
func checkUnmappedFiles(cfg *config.Config, m *index.PageMap, report *verifyReport) {
	mapped := make(map[string]bool)
	for _, ref := range m.Paths() {
		mapped[ref] = true
	}

	entries, err := os.ReadDir(cfg.OutputPath())
	if err != nil {
		report.addf("cannot read %s: %v", cfg.OutputPath(), err)
		return
	}

	var stray []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), render.PageExt) {
			continue
		}
		if !mapped[cfg.PageRef(e.Name())] {
			stray = append(stray, e.Name())
		}
	}
	sort.Strings(stray)
	for _, name := range stray {
		report.addf("%s: page not listed in page map", name)
	}
}
