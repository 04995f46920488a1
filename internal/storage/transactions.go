package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/monman-id/monman/internal/common"
	"github.com/monman-id/monman/internal/model"
)

// AddTransaction validates the draft and logs it against a budget. The
// returned transaction carries the assigned ID and date; a zero draft
// date defaults to today.
func (s *SQLiteStorage) AddTransaction(ctx context.Context, budgetID string, draft model.TransactionDraft) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	date := draft.Date
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	txn := model.Transaction{
		ID:        uuid.NewString(),
		BudgetID:  budgetID,
		Item:      strings.TrimSpace(draft.Item),
		Quantity:  draft.Quantity,
		Store:     draft.Store,
		Category:  draft.Category,
		Amount:    draft.Amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget_transactions (id, budget_id, item, quantity, amount, store, category, txn_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.BudgetID, txn.Item, nullableString(txn.Quantity), int64(txn.Amount),
		nullableString(txn.Store), nullableString(txn.Category), txn.Date, txn.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return nil, fmt.Errorf("%w: budget %s", common.ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	slog.Debug("added transaction", "budget", budgetID, "item", txn.Item, "amount", int64(txn.Amount))
	return &txn, nil
}

// DeleteTransaction removes one transaction from a budget. Any existing
// id is deletable; there is no validation beyond existence.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, budgetID, transactionID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(budgetID, "budgetID"); err != nil {
		return err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM budget_transactions WHERE id = ? AND budget_id = ?`,
		transactionID, budgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, transactionID)
	}

	slog.Debug("deleted transaction", "budget", budgetID, "id", transactionID)
	return nil
}

// RecentTransactions returns the newest transactions across all
// budgets, for the dashboard. Newest first by date, then insertion.
func (s *SQLiteStorage) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, budget_id, item, quantity, amount, store, category, txn_date, created_at
		FROM budget_transactions
		ORDER BY txn_date DESC, created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// listTransactions returns a budget's transactions in insertion order.
func (s *SQLiteStorage) listTransactions(ctx context.Context, budgetID string) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, budget_id, item, quantity, amount, store, category, txn_date, created_at
		FROM budget_transactions
		WHERE budget_id = ?
		ORDER BY created_at, id`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var (
			txn                       model.Transaction
			quantity, store, category sql.NullString
		)
		if err := rows.Scan(
			&txn.ID, &txn.BudgetID, &txn.Item, &quantity, &txn.Amount,
			&store, &category, &txn.Date, &txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Quantity = quantity.String
		txn.Store = store.String
		txn.Category = category.String
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return transactions, nil
}
