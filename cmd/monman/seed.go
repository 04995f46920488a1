package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/model"
)

// Demo dataset: two budgets with presets and a few days of purchases.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a demo dataset",
		Long:  `Populate an empty database with sample budgets, presets, and transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return fmt.Errorf("refusing to seed: database already has %d budgets", len(existing))
			}

			lastPeriod := model.Money(65000000)
			groceries := &model.BudgetCategory{
				Name:            "Belanja Harian",
				Allocated:       150000000, // Rp 1,5 jt
				Period:          model.PeriodMonthly,
				LastPeriodSpent: &lastPeriod,
			}
			if err := store.CreateBudget(ctx, groceries); err != nil {
				return err
			}

			transport := &model.BudgetCategory{
				Name:      "Transportasi",
				Allocated: 30000000, // Rp 300 rb
				Period:    model.PeriodWeekly,
			}
			if err := store.CreateBudget(ctx, transport); err != nil {
				return err
			}

			groceryPresets := []model.CommonPurchase{
				{Item: "Indomie Goreng", Quantity: "× 5", EstimatedAmount: 1500000, Store: "Indomaret", SortOrder: 0},
				{Item: "Ayam Potong", Quantity: "1 ekor", EstimatedAmount: 4500000, Store: "Pasar", SortOrder: 1},
				{Item: "Beras", Quantity: "5 kg", EstimatedAmount: 7500000, Store: "Toko Sembako", SortOrder: 2},
				{Item: "Minyak Goreng", Quantity: "1 liter", EstimatedAmount: 2500000, SortOrder: 3},
			}
			for i := range groceryPresets {
				if err := store.AddCommonPurchase(ctx, groceries.ID, &groceryPresets[i]); err != nil {
					return err
				}
			}

			fuelPresets := []model.CommonPurchase{
				{Item: "Bensin", EstimatedAmount: 5000000, Store: "SPBU Shell", SortOrder: 0},
				{Item: "Bensin", EstimatedAmount: 7500000, Store: "SPBU Pertamina", SortOrder: 1},
			}
			for i := range fuelPresets {
				if err := store.AddCommonPurchase(ctx, transport.ID, &fuelPresets[i]); err != nil {
					return err
				}
			}

			today := time.Now().UTC().Truncate(24 * time.Hour)
			seedTxns := []struct {
				budgetID string
				draft    model.TransactionDraft
			}{
				{groceries.ID, model.TransactionDraft{Item: "Indomie Goreng", Quantity: "× 5", Amount: 1500000, Store: "Indomaret Jl. Sudirman", Date: today.AddDate(0, 0, -1)}},
				{groceries.ID, model.TransactionDraft{Item: "Ayam Potong", Quantity: "1/2 kg", Amount: 3000000, Store: "Pasar Minggu", Date: today.AddDate(0, 0, -2)}},
				{groceries.ID, model.TransactionDraft{Item: "Sabun Lifebuoy", Amount: 1200000, Store: "Alfamart", Date: today.AddDate(0, 0, -4)}},
				{transport.ID, model.TransactionDraft{Item: "Bensin", Amount: 5000000, Store: "SPBU Shell Jl. Thamrin", Date: today.AddDate(0, 0, -3)}},
			}
			for _, s := range seedTxns {
				if _, err := store.AddTransaction(ctx, s.budgetID, s.draft); err != nil {
					return err
				}
			}

			fmt.Println("Seeded 2 budgets, 6 presets, and 4 transactions.")
			return nil
		},
	}
}
