package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fairshare-dev/fairshare/internal/model"
	"github.com/fairshare-dev/fairshare/internal/report"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show expense totals by category and payer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			summary := report.Summarize(a.ledger.Payments())

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tTOTAL")
			for _, c := range sortedCategories(summary.ByCategory) {
				fmt.Fprintf(tw, "%s\tRs.%s\n", c, summary.ByCategory[c].StringFixed(2))
			}
			fmt.Fprintln(tw, "\nPAYER\tTOTAL")
			for _, name := range sortedKeys(summary.ByPayer) {
				fmt.Fprintf(tw, "%s\tRs.%s\n", name, summary.ByPayer[name].StringFixed(2))
			}
			fmt.Fprintf(tw, "\nGRAND TOTAL\tRs.%s\n", summary.GrandTotal.StringFixed(2))
			return tw.Flush()
		},
	}
}

// sortedCategories lists the default vocabulary in display order first,
// then any extension categories alphabetically.
func sortedCategories[V any](m map[model.Category]V) []model.Category {
	known := make(map[model.Category]bool)
	var out []model.Category
	for _, c := range model.Categories() {
		known[c] = true
		if _, ok := m[c]; ok {
			out = append(out, c)
		}
	}
	var extra []model.Category
	for c := range m {
		if !known[c] {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
