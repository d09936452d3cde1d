package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-inspect/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "vinspect",
		Short: "Inspect rendered vdom trees",
		Long: `vinspect mounts HTML fixtures as rendered host nodes and prints the
tree the inspection adapter reports for them: element names,
normalized attributes, and children.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errors.SetColors(!noColor && os.Getenv("NO_COLOR") == "")
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	cmd.AddCommand(
		treeCmd(),
		codesCmd(),
		versionCmd(),
	)
	return cmd
}
