/*
Package cli implements the tool-pages commands.

Every command reads the same configuration: an optional YAML file selected
with --config (or tool-pages.yaml in the working directory), overridden by
any flag given explicitly on the command line.
*/
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aitoolcomparator/tool-pages/internal/config"
	"github.com/aitoolcomparator/tool-pages/internal/version"
)

// Options holds the flags shared by all commands.
type Options struct {
	ConfigPath string
	SiteDir    string
	Strict     bool
	Verbose    bool

	Logger *zap.Logger
}

// NewRootCmd creates the tool-pages root command. Run without a subcommand it
// generates the site's tool pages.
func NewRootCmd() *cobra.Command {
	opts := &Options{Logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tool-pages",
		Short: "Generate static detail pages for AI coding tools",
		Long: `tool-pages reads the comparison site's tool data files and writes one
HTML detail page per tool into <site>/tools/, plus tool_page_map.json
mapping each tool name to its page.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.Logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ./"+config.DefaultConfigFile+" if present)")
	root.PersistentFlags().StringVarP(&opts.SiteDir, "site", "s", "", "site root directory (default \""+config.DefaultConfig().SiteDir+"\")")
	root.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "fail when two tools map to the same page file")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		NewGenerateCmd(opts),
		NewListCmd(opts),
		NewSearchCmd(opts),
		NewVerifyCmd(opts),
		NewVersionCmd(),
	)

	return root
}

// newLogger builds a console logger on stderr: warnings and errors only, or
// everything with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// loadConfig reads the config file, then applies the flags that were set.
func loadConfig(cmd *cobra.Command, opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cmd.Flags(), opts, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(flags *pflag.FlagSet, opts *Options, cfg *config.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "site":
			cfg.SiteDir = opts.SiteDir
		case "strict":
			cfg.Strict = opts.Strict
		}
	})
}
