package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monman-id/monman/internal/common"
	"github.com/monman-id/monman/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testBudget(name string) *model.BudgetCategory {
	return &model.BudgetCategory{
		Name:      name,
		Allocated: 50000000,
		Period:    model.PeriodMonthly,
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestBudgetCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budget := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, budget))
	assert.NotEmpty(t, budget.ID)

	got, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	assert.Equal(t, budget.ID, got.ID)
	assert.Equal(t, model.Money(50000000), got.Allocated)
	assert.Equal(t, model.PeriodMonthly, got.Period)
	assert.Nil(t, got.LastPeriodSpent)
	assert.Empty(t, got.Transactions)

	last := model.Money(42000000)
	got.Allocated = 60000000
	got.LastPeriodSpent = &last
	require.NoError(t, store.UpdateBudget(ctx, got))

	updated, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	assert.Equal(t, model.Money(60000000), updated.Allocated)
	require.NotNil(t, updated.LastPeriodSpent)
	assert.Equal(t, last, *updated.LastPeriodSpent)

	require.NoError(t, store.DeleteBudget(ctx, budget.ID))
	_, err = store.GetBudget(ctx, "Belanja Harian")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateBudgetRejectsDuplicatesAndInvalid(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.CreateBudget(ctx, testBudget("Transportasi")))
	err := store.CreateBudget(ctx, testBudget("Transportasi"))
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	invalid := &model.BudgetCategory{Name: "", Allocated: 100, Period: model.PeriodWeekly}
	assert.ErrorIs(t, store.CreateBudget(ctx, invalid), common.ErrInvalidInput)

	badPeriod := &model.BudgetCategory{Name: "Jajan", Allocated: 100, Period: "daily"}
	assert.ErrorIs(t, store.CreateBudget(ctx, badPeriod), common.ErrInvalidInput)
}

func TestAddAndDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budget := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, budget))

	txn, err := store.AddTransaction(ctx, budget.ID, model.TransactionDraft{
		Item:     "Indomie Goreng",
		Quantity: "× 5",
		Amount:   12500,
		Store:    "Indomaret Jl. Sudirman",
		Date:     time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, txn.ID)

	_, err = store.AddTransaction(ctx, budget.ID, model.TransactionDraft{
		Item:   "Ayam potong",
		Amount: 30000,
	})
	require.NoError(t, err)

	got, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)

	// Insertion order is list order.
	assert.Equal(t, "Indomie Goreng", got.Transactions[0].Item)
	assert.Equal(t, "× 5", got.Transactions[0].Quantity)
	assert.Equal(t, model.Money(12500), got.Transactions[0].Amount)
	assert.Equal(t, "Ayam potong", got.Transactions[1].Item)
	assert.Equal(t, "", got.Transactions[1].Quantity)

	require.NoError(t, store.DeleteTransaction(ctx, budget.ID, txn.ID))
	got, err = store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "Ayam potong", got.Transactions[0].Item)

	assert.ErrorIs(t, store.DeleteTransaction(ctx, budget.ID, txn.ID), common.ErrNotFound)
}

func TestAddTransactionGatesOnDraftValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budget := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, budget))

	_, err := store.AddTransaction(ctx, budget.ID, model.TransactionDraft{Item: "", Amount: 1000})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = store.AddTransaction(ctx, budget.ID, model.TransactionDraft{Item: "Kopi", Amount: 0})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	got, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	assert.Empty(t, got.Transactions)
}

func TestAddTransactionUnknownBudget(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.AddTransaction(ctx, "no-such-budget", model.TransactionDraft{Item: "Kopi", Amount: 1000})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCommonPurchases(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budget := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, budget))

	presets := []model.CommonPurchase{
		{Item: "Beras", Quantity: "5 kg", EstimatedAmount: 65000, Store: "Toko Beras", SortOrder: 1},
		{Item: "Indomie Goreng", Quantity: "× 5", EstimatedAmount: 12500, Store: "Indomaret", SortOrder: 0},
	}
	for i := range presets {
		require.NoError(t, store.AddCommonPurchase(ctx, budget.ID, &presets[i]))
	}

	got, err := store.ListCommonPurchases(ctx, budget.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Indomie Goreng", got[0].Item) // sort_order wins
	assert.Equal(t, "Beras", got[1].Item)

	hydrated, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	assert.Len(t, hydrated.CommonPurchases, 2)

	err = store.AddCommonPurchase(ctx, budget.ID, &model.CommonPurchase{Item: "", EstimatedAmount: 100})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRecentTransactions(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	groceries := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, groceries))
	transport := testBudget("Transportasi")
	require.NoError(t, store.CreateBudget(ctx, transport))

	dates := []time.Time{
		time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC),
	}
	budgets := []string{groceries.ID, groceries.ID, transport.ID}
	items := []string{"Sabun Lifebuoy", "Indomie Goreng", "Bensin"}
	for i := range dates {
		_, err := store.AddTransaction(ctx, budgets[i], model.TransactionDraft{
			Item: items[i], Amount: 10000, Date: dates[i],
		})
		require.NoError(t, err)
	}

	recent, err := store.RecentTransactions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Indomie Goreng", recent[0].Item)
	assert.Equal(t, "Bensin", recent[1].Item)
}

func TestDeleteBudgetCascades(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	budget := testBudget("Belanja Harian")
	require.NoError(t, store.CreateBudget(ctx, budget))
	_, err := store.AddTransaction(ctx, budget.ID, model.TransactionDraft{Item: "Kopi", Amount: 25000})
	require.NoError(t, err)
	require.NoError(t, store.AddCommonPurchase(ctx, budget.ID, &model.CommonPurchase{Item: "Kopi", EstimatedAmount: 25000}))

	require.NoError(t, store.DeleteBudget(ctx, budget.ID))

	recent, err := store.RecentTransactions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
