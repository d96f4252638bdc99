package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/gosummary/internal/config"
	"github.com/itsmostafa/gosummary/internal/summary"
	"github.com/itsmostafa/gosummary/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	trimStr       string
	titleFromName bool
	createReadmes bool
	configFile    string
	debug         bool
	quiet         bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gosummary [base_path]",
		Short: "Produce an mdBook SUMMARY.md file from a doc tree",
		Long: `gosummary scans a tree of Markdown documents and writes SUMMARY.md into
the documentation root (default "src/"), one nested entry per document.

Titles are read from the first line starting with --trim_str, or derived from
file names with --title_from_name. With --create_readmes every directory gets
a README.md entry, even when the file does not exist yet.

Reference: https://github.com/rust-lang-nursery/mdBook/issues/677`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSummary,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo SUMMARY.md lines to stdout")
	cmd.Flags().StringVar(&trimStr, "trim_str", "# ", "Trim string to retrieve title from a file")
	cmd.Flags().BoolVar(&titleFromName, "title_from_name", false, "Get titles from MD file names")
	cmd.Flags().BoolVar(&createReadmes, "create_readmes", false, "Add README.md entries for dirs without one")
	cmd.Flags().StringVar(&configFile, "config", "", "Project config file (default "+config.DefaultFile+" if present)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log debug diagnostics to stderr")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the run report")

	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("gosummary %s\n", version.String()))
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(config.EnvFile); err != nil {
		return err
	}

	// Only flags given explicitly override env and file values.
	var flags config.Values
	if len(args) == 1 {
		flags.BasePath = &args[0]
	}
	if cmd.Flags().Changed("verbose") {
		flags.Verbose = &verbose
	}
	if cmd.Flags().Changed("trim_str") {
		flags.TrimStr = &trimStr
	}
	if cmd.Flags().Changed("title_from_name") {
		flags.TitleFromName = &titleFromName
	}
	if cmd.Flags().Changed("create_readmes") {
		flags.CreateReadmes = &createReadmes
	}

	cfg, err := config.Resolve(config.Sources{
		ConfigFile:     configFile,
		ConfigRequired: configFile != "",
		Flags:          flags,
	})
	if err != nil {
		return err
	}
	cfg.Echo = cmd.OutOrStdout()
	cfg.Logger = newLogger(cmd, debug)

	report, err := summary.Generate(cfg)
	if err != nil {
		return err
	}
	if !quiet {
		summary.FormatReport(cmd.ErrOrStderr(), report)
	}
	return nil
}

// newLogger returns a text logger on stderr without timestamps.
func newLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
