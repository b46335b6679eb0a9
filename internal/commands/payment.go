package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/ledger"
	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/money"
)

func newPaymentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payments",
	}
	cmd.AddCommand(newPaymentAddCommand())
	cmd.AddCommand(newPaymentRmCommand())
	cmd.AddCommand(newPaymentLsCommand())
	return cmd
}

func newPaymentAddCommand() *cobra.Command {
	var payerID int
	var amountStr string
	var involved []int
	var purpose string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a shared expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			payment, err := a.ledger.AddPayment(ledger.AddPaymentParams{
				PayerID:     payerID,
				Amount:      amount,
				InvolvedIDs: involved,
				Purpose:     purpose,
				Category:    model.Category(category),
			})
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Recorded payment %d: %s paid Rs.%s for %q\n",
				payment.ID, payment.PayerName, payment.Amount.StringFixed(2), payment.Purpose)
			return nil
		},
	}

	cmd.Flags().IntVar(&payerID, "payer", 0, "participant id of who paid (required)")
	_ = cmd.MarkFlagRequired("payer")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount paid (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntSliceVar(&involved, "involved", nil, "comma-separated participant ids sharing the expense (required)")
	_ = cmd.MarkFlagRequired("involved")
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the payment was for")
	cmd.Flags().StringVar(&category, "category", "", "expense category (defaults to General)")

	return cmd
}

func newPaymentRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a payment (only while all referenced participants exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			removed, err := a.ledger.RemovePayment(id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("Payment %d not found; nothing to do\n", id)
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Removed payment %d\n", id)
			return nil
		},
	}
}

func newPaymentLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			printPayments(a.ledger.Payments())
			return nil
		},
	}
}

func printPayments(payments []model.Payment) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tPAYER\tAMOUNT\tPURPOSE\tCATEGORY\tINVOLVED")
	for _, p := range payments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Date.Format(model.DateFormat),
			p.PayerName,
			p.Amount.StringFixed(2),
			p.Purpose,
			p.Category,
			strings.Join(p.InvolvedNames, "; "),
		)
	}
	tw.Flush()
}
