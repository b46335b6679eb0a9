package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/settle"
)

func newSettleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Show the minimal transfers to settle all debts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			transfers := settle.Plan(a.ledger.Balances())
			if len(transfers) == 0 {
				fmt.Println("Nothing to settle.")
				return nil
			}
			for _, t := range transfers {
				fmt.Printf("%s pays %s Rs.%s\n", t.FromName, t.ToName, t.Amount.StringFixed(2))
			}
			return nil
		},
	}
}
