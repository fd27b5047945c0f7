package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aitoolcomparator/tool-pages/internal/generator"
	"github.com/aitoolcomparator/tool-pages/internal/record"
	"github.com/aitoolcomparator/tool-pages/internal/search"
)

// NewSearchCmd creates the 'search' command for keyword search over the tools.
func NewSearchCmd(opts *Options) *cobra.Command {
	var (
		category   string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the tools in the data files",
		Long: `Search tool names, summaries, features and pros/cons for the given words.
Results are ranked by relevance and show the page each tool is written to.`,
		Example: `  tool-pages search terminal agent
  tool-pages search "code review" --category coding
  tool-pages search editor --limit 3 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, strings.Join(args, " "), category, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only search one category (coding, cli, low-code, specialized)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *Options, query, category string, limit int, jsonOutput bool) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	records, _, err := generator.New(cfg, opts.Logger, nil).Load()
	if err != nil {
		return err
	}

	indexer, err := search.NewIndexer()
	if err != nil {
		return err
	}
	defer indexer.Close()

	if err := indexer.IndexRecords(records, cfg.OutputDir); err != nil {
		return err
	}

	var results []search.Result
	if category != "" {
		if !record.KnownCategory(category) {
			opts.Logger.Warn("unknown category, results may be empty", zap.String("category", category))
		}
		results, err = indexer.SearchByCategory(query, category, limit)
	} else {
		results, err = indexer.Search(query, limit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No tools match %q\n", query)
		return nil
	}

	fmt.Fprintf(out, "Results for %q (%d):\n\n", query, len(results))
	for i, r := range results {
		fmt.Fprintf(out, "  %d. %s", i+1, r.Name)
		if r.Category != "" {
			fmt.Fprintf(out, " [%s]", record.CategoryLabel(r.Category))
		}
		fmt.Fprintf(out, "\n     %s  (score %.3f)\n", r.Page, r.Score)
	}

	return nil
}
