package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aitoolcomparator/tool-pages/internal/config"
	"github.com/aitoolcomparator/tool-pages/internal/generator"
	"github.com/aitoolcomparator/tool-pages/internal/index"
	"github.com/aitoolcomparator/tool-pages/internal/record"
	"github.com/aitoolcomparator/tool-pages/internal/render"
)

// NewListCmd creates the 'list' command for listing the tools in the data files.
func NewListCmd(opts *Options) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the tools found in the data files",
		Long: `Load every data file and show each named tool, grouped by category,
with the page file it would be written to. Nothing is written to the site.`,
		Example: `  tool-pages list
  tool-pages ls
  tool-pages list --json  # print the page map that generate would write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output the page map as JSON")

	return cmd
}

// runList displays the loaded tools.
func runList(cmd *cobra.Command, opts *Options, jsonOutput bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	records, _, err := generator.New(cfg, opts.Logger, nil).Load()
	if err != nil {
		fmt.Fprintln(out, "No tools found.")
		fmt.Fprintf(out, "Check the data files in %s\n", cfg.DataPath(""))
		return nil
	}

	if jsonOutput {
		return printPageMap(out, cfg, records)
	}

	fmt.Fprintf(out, "Tools (%d):\n", len(records))
	for _, group := range groupByCategory(records) {
		fmt.Fprintf(out, "\n  %s (%d)\n", group.label, len(group.records))
		for _, rec := range group.records {
			fmt.Fprintf(out, "    %-32s %s\n", rec.Name(), cfg.PageRef(render.PageFile(rec.Name())))
		}
	}

	return nil
}

func printPageMap(out io.Writer, cfg *config.Config, records []record.Record) error {
	m := index.New()
	for _, rec := range records {
		m.Add(rec.Name(), cfg.PageRef(render.PageFile(rec.Name())))
	}

	data, err := m.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode page map: %w", err)
	}
	_, err = out.Write(data)
	return err
}

type categoryGroup struct {
	label   string
	records []record.Record
}

// groupByCategory groups records by category label in order of first appearance.
func groupByCategory(records []record.Record) []categoryGroup {
	var groups []categoryGroup
	positions := make(map[string]int)

	for _, rec := range records {
		label := record.CategoryLabel(rec.Category())
		if label == "" {
			label = "Uncategorized"
		}

		pos, ok := positions[label]
		if !ok {
			pos = len(groups)
			positions[label] = pos
			groups = append(groups, categoryGroup{label: label})
		}
		groups[pos].records = append(groups[pos].records, rec)
	}

	return groups
}
