package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/budget"
	"github.com/monman-id/monman/internal/cli"
	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budget categories",
		Long:  `Create, inspect, and adjust per-category spending budgets.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(showBudgetCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets with their progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets yet. Use 'monman budgets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Budget"),
				cli.TableHeaderStyle.Render("Period"),
				cli.TableHeaderStyle.Render("Allocated"),
				cli.TableHeaderStyle.Render("Spent"),
				cli.TableHeaderStyle.Render("Remaining"),
				cli.TableHeaderStyle.Render("Used"))

			for i := range budgets {
				c := &budgets[i]
				p := budget.ComputeProgress(c)

				used := fmt.Sprintf("%.0f%%", p.Percentage)
				if p.OverBudget {
					used = cli.ExpenseStyle.Render(used + " !")
				} else if p.Percentage > 80 {
					used = cli.WarningStyle.Render(used)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.Name,
					c.Period.Label(),
					currency.Format(c.Allocated, currency.DefaultOptions()),
					currency.Format(p.Spent, currency.DefaultOptions()),
					cli.RenderAmount(p.Remaining),
					used,
				)
			}

			s := budget.Summarize(budgets)
			fmt.Fprintf(w, "%s\t\t%s\t%s\t%s\t\n",
				cli.BoldStyle.Render("Total"),
				currency.Format(s.TotalAllocated, currency.DefaultOptions()),
				currency.Format(s.TotalSpent, currency.DefaultOptions()),
				cli.RenderAmount(s.TotalRemaining),
			)
			return nil
		},
	}
}

func addBudgetCmd() *cobra.Command {
	var (
		allocatedText  string
		periodText     string
		lastPeriodText string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new budget category",
		Long: `Create a budget with an allocation cap for its period. Amounts accept
Rupiah text in any common form: "Rp 500.000", "500000", or "1,5" with
comma decimals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			allocated := currency.Parse(allocatedText)
			if allocated <= 0 {
				return fmt.Errorf("invalid allocation %q: amount must be positive", allocatedText)
			}

			b := &model.BudgetCategory{
				Name:      strings.TrimSpace(args[0]),
				Allocated: allocated,
				Period:    model.Period(periodText),
			}
			if lastPeriodText != "" {
				last := currency.Parse(lastPeriodText)
				b.LastPeriodSpent = &last
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.CreateBudget(ctx, b); err != nil {
				return err
			}

			fmt.Printf("Created budget %q with %s per %s\n",
				b.Name,
				currency.Format(b.Allocated, currency.DefaultOptions()),
				b.Period,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&allocatedText, "allocated", "", "allocation cap in Rupiah (required)")
	cmd.Flags().StringVar(&periodText, "period", string(model.PeriodMonthly), "budget period: weekly, monthly, or yearly")
	cmd.Flags().StringVar(&lastPeriodText, "last-period", "", "prior period's total spend, for comparison")
	_ = cmd.MarkFlagRequired("allocated")

	return cmd
}

func showBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one budget's full card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(renderBudgetCard(c))
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var (
		allocatedText  string
		periodText     string
		lastPeriodText string
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Adjust a budget's allocation, period, or comparison baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}

			if allocatedText != "" {
				allocated := currency.Parse(allocatedText)
				if allocated <= 0 {
					return fmt.Errorf("invalid allocation %q: amount must be positive", allocatedText)
				}
				c.Allocated = allocated
			}
			if periodText != "" {
				c.Period = model.Period(periodText)
			}
			if lastPeriodText != "" {
				last := currency.Parse(lastPeriodText)
				c.LastPeriodSpent = &last
			}

			if err := store.UpdateBudget(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated budget %q\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&allocatedText, "allocated", "", "new allocation cap in Rupiah")
	cmd.Flags().StringVar(&periodText, "period", "", "new period: weekly, monthly, or yearly")
	cmd.Flags().StringVar(&lastPeriodText, "last-period", "", "prior period's total spend")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a budget and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteBudget(ctx, c.ID); err != nil {
				return err
			}

			fmt.Printf("Deleted budget %q (%d transactions)\n", c.Name, len(c.Transactions))
			return nil
		},
	}
}

// renderBudgetCard renders the full detail view of one budget:
// progress bar, comparison panel, presets, and transaction history.
func renderBudgetCard(c *model.BudgetCategory) string {
	p := budget.ComputeProgress(c)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", cli.BoldStyle.Render(c.Name), cli.SubtleStyle.Render(c.Period.Label())))
	b.WriteString(fmt.Sprintf("%s / %s  %s\n",
		currency.Format(p.Spent, currency.DefaultOptions()),
		currency.Format(c.Allocated, currency.DefaultOptions()),
		cli.SubtleStyle.Render(fmt.Sprintf("%.0f%% terpakai", p.Percentage)),
	))
	b.WriteString(cli.RenderBar(p.Percentage, p.OverBudget, 40) + "\n")
	b.WriteString("Remaining: " + cli.RenderAmount(p.Remaining) + "\n")

	if cmp := budget.ComputeComparison(c); cmp.Available {
		sign := ""
		style := cli.IncomeStyle
		if cmp.Diff >= 0 {
			sign = "+"
			style = cli.ExpenseStyle
		}
		b.WriteString(fmt.Sprintf("Last period: %s  %s\n",
			currency.Format(*c.LastPeriodSpent, currency.DefaultOptions()),
			style.Render(fmt.Sprintf("%s%s (%s%.1f%%)",
				sign, currency.Format(cmp.Diff.Abs(), currency.DefaultOptions()),
				sign, cmp.DiffPercent)),
		))
	}

	if len(c.CommonPurchases) > 0 {
		b.WriteString("\n" + cli.SubtleStyle.Render("Common purchases:") + "\n")
		for i, preset := range c.CommonPurchases {
			line := fmt.Sprintf("  %d. %s", i+1, preset.Item)
			if preset.Quantity != "" {
				line += " (" + preset.Quantity + ")"
			}
			line += "  ~" + currency.Format(preset.EstimatedAmount, currency.DefaultOptions())
			if preset.Store != "" {
				line += "  " + cli.SubtleStyle.Render(preset.Store)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(c.Transactions) > 0 {
		b.WriteString("\n" + cli.SubtleStyle.Render("Transactions:") + "\n")
		for _, txn := range c.Transactions {
			line := "  " + txn.Item
			if txn.Quantity != "" {
				line += " (" + txn.Quantity + ")"
			}
			line += "  " + currency.Format(txn.Amount, currency.DefaultOptions())
			if txn.Store != "" {
				line += "  " + cli.SubtleStyle.Render(txn.Store)
			}
			line += "  " + cli.SubtleStyle.Render(txn.Date.Format("02/01/2006")+"  "+txn.ID)
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
