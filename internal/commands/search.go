package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/report"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Find payments by purpose or category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			matched := report.Search(a.ledger.Payments(), strings.Join(args, " "))
			printPayments(matched)
			return nil
		},
	}
}
