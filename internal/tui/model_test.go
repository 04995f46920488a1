package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monman-id/monman/internal/model"
	"github.com/monman-id/monman/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))

	budget := &model.BudgetCategory{Name: "Belanja Harian", Allocated: 50000000, Period: model.PeriodMonthly}
	require.NoError(t, store.CreateBudget(ctx, budget))
	require.NoError(t, store.AddCommonPurchase(ctx, budget.ID, &model.CommonPurchase{
		Item: "Indomie Goreng", Quantity: "× 5", EstimatedAmount: 12500, Store: "Indomaret",
	}))

	m := NewModel(ctx, store)
	loaded, _ := m.Update(m.loadBudgets()())
	return loaded.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestToggleExpand(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.budgets, 1)
	assert.False(t, m.cards[0].Expanded)

	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.True(t, m.cards[0].Expanded)

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	assert.False(t, m.cards[0].Expanded)
}

func TestAddFormOpensAndCancels(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)
	assert.True(t, m.cards[0].Adding)

	next, _ = m.Update(keyMsg("esc"))
	m = next.(Model)
	assert.False(t, m.cards[0].Adding)
	assert.Equal(t, model.TransactionDraft{}, m.cards[0].Draft)
}

func TestPresetPrefillsForm(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("enter")) // expand first
	m = next.(Model)
	next, _ = m.Update(keyMsg("1"))
	m = next.(Model)

	require.True(t, m.cards[0].Adding)
	assert.Equal(t, "Indomie Goreng", m.cards[0].Draft.Item)
	assert.Equal(t, model.Money(12500), m.cards[0].Draft.Amount)
	assert.Equal(t, "Indomie Goreng", m.inputs[fieldItem].Value())
	assert.Equal(t, "125", m.inputs[fieldAmount].Value())
}

func TestSubmitInvalidDraftKeepsFormOpen(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("a"))
	m = next.(Model)

	next, _ = m.Update(keyMsg("enter")) // empty draft
	m = next.(Model)
	assert.True(t, m.cards[0].Adding)
	assert.Error(t, m.lastError)
}

func TestViewRendersProgress(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.True(t, strings.Contains(view, "Belanja Harian"))
	assert.True(t, strings.Contains(view, "terpakai"))
}
