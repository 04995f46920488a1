package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/budget"
	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
)

func spendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spend",
		Short: "Log purchases against a budget",
	}

	cmd.AddCommand(addSpendCmd())
	cmd.AddCommand(quickSpendCmd())
	cmd.AddCommand(deleteSpendCmd())

	return cmd
}

func addSpendCmd() *cobra.Command {
	var (
		amountText  string
		quantity    string
		storeName   string
		categoryTag string
		dateText    string
	)

	cmd := &cobra.Command{
		Use:   "add <budget> <item>",
		Short: "Add a transaction to a budget",
		Long: `Log a purchase. The amount accepts Rupiah text ("Rp 12.500" or
"12500"); the date defaults to today.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			draft := model.TransactionDraft{
				Item:     args[1],
				Quantity: quantity,
				Amount:   currency.Parse(amountText),
				Store:    storeName,
				Category: categoryTag,
			}
			if dateText != "" {
				date, err := time.Parse("2006-01-02", dateText)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateText, err)
				}
				draft.Date = date
			}
			if err := draft.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}

			txn, err := store.AddTransaction(ctx, b.ID, draft)
			if err != nil {
				return err
			}

			// Re-read so the progress report reflects the new spend.
			b, err = store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}
			p := budget.ComputeProgress(b)

			fmt.Printf("Logged %s for %s (%s)\n",
				currency.Format(txn.Amount, currency.DefaultOptions()),
				txn.Item, txn.ID)
			fmt.Printf("%s: %s of %s used (%.0f%%)\n",
				b.Name,
				currency.Format(p.Spent, currency.DefaultOptions()),
				currency.Format(b.Allocated, currency.DefaultOptions()),
				p.Percentage,
			)
			if p.OverBudget {
				fmt.Println("Over budget!")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amountText, "amount", "", "purchase amount in Rupiah (required)")
	cmd.Flags().StringVar(&quantity, "qty", "", "free-text quantity: '× 2', '1/2 kg'")
	cmd.Flags().StringVar(&storeName, "store", "", "where it was bought")
	cmd.Flags().StringVar(&categoryTag, "category", "", "suggestion tag")
	cmd.Flags().StringVar(&dateText, "date", "", "transaction date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func quickSpendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick <budget> <preset#>",
		Short: "Log a purchase from a budget's preset list",
		Long: `Apply a common-purchase preset as-is: the preset's item, quantity,
estimated amount, and store become the transaction. Use
'monman budgets show' to see preset numbers.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			index, err := strconv.Atoi(args[1])
			if err != nil || index < 1 {
				return fmt.Errorf("invalid preset number %q", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}
			if index > len(b.CommonPurchases) {
				return fmt.Errorf("budget %q has %d presets, asked for %d", b.Name, len(b.CommonPurchases), index)
			}

			draft := budget.ApplyPreset(b.CommonPurchases[index-1])
			if err := draft.Validate(); err != nil {
				return err
			}

			txn, err := store.AddTransaction(ctx, b.ID, draft)
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s for %s (%s)\n",
				currency.Format(txn.Amount, currency.DefaultOptions()),
				txn.Item, txn.ID)
			return nil
		},
	}
}

func deleteSpendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <budget> <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := store.GetBudget(ctx, args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteTransaction(ctx, b.ID, args[1]); err != nil {
				return err
			}

			fmt.Printf("Deleted transaction %s from %q\n", args[1], b.Name)
			return nil
		},
	}
}
