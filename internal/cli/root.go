// Package cli implements the schedgen command-line interface.
//
// The main command is generate, which parses stream specs from the command
// line, resolves streamers against the TOML configuration, and composites
// the announcement image onto a background picture.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/streamcrew/schedgen/pkg/buildinfo"
)

// Execute runs the schedgen CLI with the given base context and returns an
// error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "schedgen",
		Short:        "Schedgen renders stream schedule announcement images",
		Long:         `Schedgen composites a weekday title and a styled list of stream times, handles, and avatars onto a background picture, producing a single announcement image ready to post.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
