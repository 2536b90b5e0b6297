// Package cli implements the doctree command line interface: a small
// driver that exercises the doctree library against a sample tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianc/doctree/internal/logging"
)

var (
	verbosity int
	outPath   string
)

// NewRootCmd builds the doctree root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctree",
		Short: "Build a sample markup tree and print it",
		Long: `doctree builds a small shopping-list document tree and prints its
serialized markup, both display renderings, and the element count, then
applies a deferred add-class command and prints the tree again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(verbosity)
			return runDemo(cmd.OutOrStdout(), outPath)
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (-v, -vv)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "also write the final outer markup to this file")

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger := logging.GetLogger("cli")
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
