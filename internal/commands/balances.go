package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBalancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show each participant's net position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			balances := a.ledger.Balances()
			if len(balances) == 0 {
				fmt.Println("Everyone is settled up.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPOSITION")
			for _, b := range balances {
				if b.Amount.IsPositive() {
					fmt.Fprintf(tw, "%d\t%s\tshould receive Rs.%s\n", b.ParticipantID, b.Name, b.Amount.StringFixed(2))
				} else {
					fmt.Fprintf(tw, "%d\t%s\towes Rs.%s\n", b.ParticipantID, b.Name, b.Amount.Neg().StringFixed(2))
				}
			}
			return tw.Flush()
		},
	}
}
