package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/ledger"
)

func newFriendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage participants",
	}
	cmd.AddCommand(newFriendAddCommand())
	cmd.AddCommand(newFriendRmCommand())
	cmd.AddCommand(newFriendLsCommand())
	return cmd
}

func newFriendAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a participant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			p, err := a.ledger.AddParticipant(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Added %s (id %d)\n", p.Name, p.ID)
			return nil
		},
	}
}

func newFriendRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a participant (only when settled up)",
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

			removed, err := a.ledger.RemoveParticipant(id)
			var cerr *ledger.ConflictError
			if errors.As(err, &cerr) {
				return fmt.Errorf("cannot remove participant: %s Rs.%s", cerr.Direction, cerr.Amount.StringFixed(2))
			}
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("Participant %d not found; nothing to do\n", id)
				return nil
			}
			if err := a.save(); err != nil {
				return err
			}
			fmt.Printf("Removed participant %d\n", id)
			return nil
		},
	}
}

func newFriendLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, p := range a.ledger.Participants() {
				fmt.Fprintf(tw, "%d\t%s\n", p.ID, p.Name)
			}
			return tw.Flush()
		},
	}
}
