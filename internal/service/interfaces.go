// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/monman-id/monman/internal/model"
)

// Storage defines the contract for the persistence layer. Budget reads
// hydrate the full category (transactions and presets included) so the
// pure derivation code in internal/budget always sees the current
// lists.
type Storage interface {
	// Budget operations
	CreateBudget(ctx context.Context, budget *model.BudgetCategory) error
	GetBudget(ctx context.Context, name string) (*model.BudgetCategory, error)
	ListBudgets(ctx context.Context) ([]model.BudgetCategory, error)
	UpdateBudget(ctx context.Context, budget *model.BudgetCategory) error
	DeleteBudget(ctx context.Context, id string) error

	// Transaction operations
	AddTransaction(ctx context.Context, budgetID string, draft model.TransactionDraft) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, budgetID, transactionID string) error
	RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error)

	// Preset operations
	AddCommonPurchase(ctx context.Context, budgetID string, preset *model.CommonPurchase) error
	ListCommonPurchases(ctx context.Context, budgetID string) ([]model.CommonPurchase, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
