package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/monman-id/monman/internal/service"
)

// Run starts the budget cards screen and blocks until the user quits.
func Run(ctx context.Context, storage service.Storage) error {
	program := tea.NewProgram(NewModel(ctx, storage), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
