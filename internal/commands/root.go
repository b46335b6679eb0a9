// Package commands wires the fairshare CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fairshare",
		Short:   "Split shared expenses fairly among friends",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newFriendCommand())
	rootCmd.AddCommand(newPaymentCommand())
	rootCmd.AddCommand(newBalancesCommand())
	rootCmd.AddCommand(newSettleCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
