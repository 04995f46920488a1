package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/cli"
	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
)

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage a budget's common-purchase presets",
	}

	cmd.AddCommand(listPresetsCmd())
	cmd.AddCommand(addPresetCmd())

	return cmd
}

func listPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <budget>",
		Short: "List a budget's presets",
		Args:  cobra.ExactArgs(1),
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

			if len(b.CommonPurchases) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No presets. Use 'monman presets add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("#"),
				cli.TableHeaderStyle.Render("Item"),
				cli.TableHeaderStyle.Render("Quantity"),
				cli.TableHeaderStyle.Render("Estimated"),
				cli.TableHeaderStyle.Render("Store"))

			for i, preset := range b.CommonPurchases {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i+1,
					preset.Item,
					preset.Quantity,
					currency.Format(preset.EstimatedAmount, currency.DefaultOptions()),
					preset.Store,
				)
			}
			return nil
		},
	}
}

func addPresetCmd() *cobra.Command {
	var (
		amountText string
		quantity   string
		storeName  string
		sortOrder  int
	)

	cmd := &cobra.Command{
		Use:   "add <budget> <item>",
		Short: "Add a common-purchase preset to a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			estimated := currency.Parse(amountText)
			if estimated <= 0 {
				return fmt.Errorf("invalid estimated amount %q: must be positive", amountText)
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

			preset := &model.CommonPurchase{
				Item:            args[1],
				Quantity:        quantity,
				EstimatedAmount: estimated,
				Store:           storeName,
				SortOrder:       sortOrder,
			}
			if err := store.AddCommonPurchase(ctx, b.ID, preset); err != nil {
				return err
			}

			fmt.Printf("Added preset %q (~%s) to %q\n",
				preset.Item,
				currency.Format(preset.EstimatedAmount, currency.DefaultOptions()),
				b.Name,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountText, "amount", "", "estimated price in Rupiah (required)")
	cmd.Flags().StringVar(&quantity, "qty", "", "free-text quantity")
	cmd.Flags().StringVar(&storeName, "store", "", "usual store")
	cmd.Flags().IntVar(&sortOrder, "order", 0, "display position")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
