package importer

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monman-id/monman/internal/model"
	"github.com/monman-id/monman/internal/storage"
)

func newStore(t *testing.T) (*storage.SQLiteStorage, string) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	budget := &model.BudgetCategory{Name: "Belanja Harian", Allocated: 50000000, Period: model.PeriodMonthly}
	require.NoError(t, store.CreateBudget(context.Background(), budget))
	return store, budget.ID
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	store, budgetID := newStore(t)

	input := strings.Join([]string{
		"item,quantity,amount,store,category,date",
		`Indomie Goreng,× 5,"Rp 12.500",Indomaret Jl. Sudirman,groceries,2025-11-25`,
		"Ayam potong,1/2 kg,30000,Pasar Minggu,,2025-11-24",
		"Bensin,,50000,SPBU Shell,,",
	}, "\n")

	result, err := Import(ctx, store, budgetID, strings.NewReader(input), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	budget, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	require.Len(t, budget.Transactions, 3)
	assert.Equal(t, model.Money(1250000), budget.Transactions[0].Amount)
	assert.Equal(t, "Indomaret Jl. Sudirman", budget.Transactions[0].Store)
	assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), budget.Transactions[0].Date)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	ctx := context.Background()
	store, budgetID := newStore(t)

	input := strings.Join([]string{
		",×2,1000,,,",        // empty item
		"Kopi,,gratis,,,",    // unparsable amount -> 0 -> invalid draft
		"Kopi,,25000,,,",     // valid
		"Teh,,5000,,,banana", // bad date
	}, "\n")

	result, err := Import(ctx, store, budgetID, strings.NewReader(input), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Skipped)
}

func TestExportRoundTrip(t *testing.T) {
	transactions := []model.Transaction{
		{
			Item:     "Indomie Goreng",
			Quantity: "× 5",
			Amount:   12500,
			Store:    "Indomaret",
			Category: "groceries",
			Date:     time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			Item:   "Bensin",
			Amount: 5000000,
			Date:   time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, transactions))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "item,quantity,amount,store,category,date", lines[0])
	assert.Contains(t, lines[1], "Indomie Goreng")
	assert.Contains(t, lines[1], "125") // whole-Rupiah amount text
	assert.Contains(t, lines[2], "2025-11-23")

	// Exported files import back cleanly.
	ctx := context.Background()
	store, budgetID := newStore(t)
	result, err := Import(ctx, store, budgetID, &buf, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	budget, err := store.GetBudget(ctx, "Belanja Harian")
	require.NoError(t, err)
	require.Len(t, budget.Transactions, 2)
	assert.Equal(t, model.Money(12500), budget.Transactions[0].Amount)
	assert.Equal(t, model.Money(5000000), budget.Transactions[1].Amount)
}
