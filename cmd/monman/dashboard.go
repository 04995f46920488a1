package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/budget"
	"github.com/monman-id/monman/internal/cli"
	"github.com/monman-id/monman/internal/currency"
)

func dashboardCmd() *cobra.Command {
	var recentLimit int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the balance summary and recent transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			s := budget.Summarize(budgets)

			summary := fmt.Sprintf("Allocated  %s\nSpent      %s\nRemaining  %s",
				currency.Format(s.TotalAllocated, currency.DefaultOptions()),
				currency.Format(s.TotalSpent, currency.DefaultOptions()),
				cli.RenderAmount(s.TotalRemaining),
			)
			if s.OverBudget > 0 {
				summary += "\n" + cli.ExpenseStyle.Render(fmt.Sprintf("%d of %d budgets over", s.OverBudget, s.BudgetCount))
			}
			fmt.Println(cli.RenderBox("Saldo "+currency.FormatCompact(s.TotalRemaining), summary))

			recent, err := store.RecentTransactions(ctx, recentLimit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions yet."))
				return nil
			}

			fmt.Println(cli.BoldStyle.Render("Recent transactions"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, txn := range recent {
				// Spend renders as an outflow on the dashboard feed.
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					txn.Date.Format("02/01/2006"),
					txn.Item,
					cli.RenderAmount(-txn.Amount),
					cli.SubtleStyle.Render(txn.Store),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recentLimit, "recent", 10, "how many recent transactions to show")

	return cmd
}
