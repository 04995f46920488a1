package main

import (
	"github.com/spf13/cobra"

	"github.com/monman-id/monman/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive budget cards screen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(ctx, store)
		},
	}
}
