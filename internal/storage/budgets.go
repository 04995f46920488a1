package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/monman-id/monman/internal/common"
	"github.com/monman-id/monman/internal/model"
)

// CreateBudget inserts a new budget category. The ID is assigned here
// when the caller left it empty.
func (s *SQLiteStorage) CreateBudget(ctx context.Context, budget *model.BudgetCategory) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if err := budget.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	if budget.ID == "" {
		budget.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, name, allocated, period, last_period_spent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		budget.ID, budget.Name, int64(budget.Allocated), string(budget.Period),
		nullableMoney(budget.LastPeriodSpent), budget.CreatedAt, budget.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: budget %q", common.ErrDuplicateEntry, budget.Name)
		}
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	slog.Debug("created budget", "id", budget.ID, "name", budget.Name)
	return nil
}

// GetBudget returns the budget with the given name, hydrated with its
// transactions (insertion order) and presets.
func (s *SQLiteStorage) GetBudget(ctx context.Context, name string) (*model.BudgetCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, allocated, period, last_period_spent, created_at, updated_at
		FROM budgets
		WHERE name = ?`, name)

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: budget %q", common.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	if err := s.hydrateBudget(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// ListBudgets returns all budget categories ordered by name, each
// hydrated with its transactions and presets.
func (s *SQLiteStorage) ListBudgets(ctx context.Context) ([]model.BudgetCategory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, allocated, period, last_period_spent, created_at, updated_at
		FROM budgets
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.BudgetCategory
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	for i := range budgets {
		if err := s.hydrateBudget(ctx, &budgets[i]); err != nil {
			return nil, err
		}
	}

	slog.Debug("retrieved budgets", "count", len(budgets))
	return budgets, nil
}

// UpdateBudget persists changes to a budget's stored fields. Derived
// figures are never written.
func (s *SQLiteStorage) UpdateBudget(ctx context.Context, budget *model.BudgetCategory) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if err := validateString(budget.ID, "budget.ID"); err != nil {
		return err
	}
	if err := budget.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	budget.UpdatedAt = time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE budgets
		SET name = ?, allocated = ?, period = ?, last_period_spent = ?, updated_at = ?
		WHERE id = ?`,
		budget.Name, int64(budget.Allocated), string(budget.Period),
		nullableMoney(budget.LastPeriodSpent), budget.UpdatedAt, budget.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %s", common.ErrNotFound, budget.ID)
	}
	return nil
}

// DeleteBudget removes a budget and, via cascade, its transactions and
// presets.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %s", common.ErrNotFound, id)
	}

	slog.Debug("deleted budget", "id", id)
	return nil
}

func (s *SQLiteStorage) hydrateBudget(ctx context.Context, budget *model.BudgetCategory) error {
	transactions, err := s.listTransactions(ctx, budget.ID)
	if err != nil {
		return err
	}
	budget.Transactions = transactions

	presets, err := s.ListCommonPurchases(ctx, budget.ID)
	if err != nil {
		return err
	}
	budget.CommonPurchases = presets
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBudget(row rowScanner) (*model.BudgetCategory, error) {
	var (
		budget model.BudgetCategory
		period string
		last   sql.NullInt64
	)
	if err := row.Scan(
		&budget.ID, &budget.Name, &budget.Allocated, &period, &last,
		&budget.CreatedAt, &budget.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}
	budget.Period = model.Period(period)
	if last.Valid {
		m := model.Money(last.Int64)
		budget.LastPeriodSpent = &m
	}
	return &budget, nil
}

func nullableMoney(m *model.Money) any {
	if m == nil {
		return nil
	}
	return int64(*m)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
