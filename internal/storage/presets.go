package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/monman-id/monman/internal/common"
	"github.com/monman-id/monman/internal/model"
)

// AddCommonPurchase attaches a purchase preset to a budget.
func (s *SQLiteStorage) AddCommonPurchase(ctx context.Context, budgetID string, preset *model.CommonPurchase) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}
	if preset == nil {
		return fmt.Errorf("%w: preset", ErrNilParameter)
	}
	if strings.TrimSpace(preset.Item) == "" {
		return fmt.Errorf("%w: preset item is required", common.ErrInvalidInput)
	}
	if preset.EstimatedAmount <= 0 {
		return fmt.Errorf("%w: preset estimated amount must be positive", common.ErrInvalidInput)
	}

	if preset.ID == "" {
		preset.ID = uuid.NewString()
	}
	preset.BudgetID = budgetID

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO common_purchases (id, budget_id, item, quantity, estimated_amount, store, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		preset.ID, preset.BudgetID, preset.Item, nullableString(preset.Quantity),
		int64(preset.EstimatedAmount), nullableString(preset.Store), preset.SortOrder,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: budget %s", common.ErrNotFound, budgetID)
		}
		return fmt.Errorf("failed to insert common purchase: %w", err)
	}
	return nil
}

// ListCommonPurchases returns a budget's presets in display order.
func (s *SQLiteStorage) ListCommonPurchases(ctx context.Context, budgetID string) ([]model.CommonPurchase, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, budget_id, item, quantity, estimated_amount, store, sort_order
		FROM common_purchases
		WHERE budget_id = ?
		ORDER BY sort_order, item`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query common purchases: %w", err)
	}
	defer rows.Close()

	var presets []model.CommonPurchase
	for rows.Next() {
		var (
			preset          model.CommonPurchase
			quantity, store sql.NullString
		)
		if err := rows.Scan(
			&preset.ID, &preset.BudgetID, &preset.Item, &quantity,
			&preset.EstimatedAmount, &store, &preset.SortOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan common purchase: %w", err)
		}
		preset.Quantity = quantity.String
		preset.Store = store.String
		presets = append(presets, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating common purchases: %w", err)
	}
	return presets, nil
}
