package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/importer"
	"github.com/monman-id/monman/internal/model"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <budget> <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions into a budget from CSV. Columns: item, quantity,
amount, store, category, date (YYYY-MM-DD). Rows that fail validation
are skipped and reported, not fatal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[1], err)
			}
			defer file.Close()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}

			result, err := importer.Import(ctx, store, b.ID, file, os.Stderr)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d transactions into %q", result.Imported, b.Name)
			if result.Skipped > 0 {
				fmt.Printf(" (%d rows skipped)", result.Skipped)
			}
			fmt.Println()
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var budgetName string

	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export transactions to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var transactions []model.Transaction
			if budgetName != "" {
				b, err := store.GetBudget(ctx, budgetName)
				if err != nil {
					return err
				}
				transactions = b.Transactions
			} else {
				budgets, err := store.ListBudgets(ctx)
				if err != nil {
					return err
				}
				for i := range budgets {
					transactions = append(transactions, budgets[i].Transactions...)
				}
			}

			file, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer file.Close()

			if err := importer.Export(file, transactions); err != nil {
				return err
			}

			fmt.Printf("Exported %d transactions to %s\n", len(transactions), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetName, "budget", "", "export a single budget's transactions")

	return cmd
}
