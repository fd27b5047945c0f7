package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aitoolcomparator/tool-pages/internal/generator"
)

// NewGenerateCmd creates the 'generate' command for rendering all tool pages.
func NewGenerateCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate tool pages and the page map",
		Long: `Clear <site>/tools/, render one page per named tool from the data files,
and write tool_page_map.json. Missing or unreadable data files are skipped.`,
		Example: `  tool-pages generate
  tool-pages generate --site ./website
  tool-pages generate --config tool-pages.yaml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *Options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := generator.New(cfg, opts.Logger, out).Run(); err != nil {
		if errors.Is(err, generator.ErrNoRecords) {
			fmt.Fprintf(out, "\nℹ️  Check that %s contains the data files:\n", cfg.DataPath(""))
			for _, src := range cfg.Sources {
				fmt.Fprintf(out, "   - %s\n", src.File)
			}
		}
		return err
	}

	return nil
}
