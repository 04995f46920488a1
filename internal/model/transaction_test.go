package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		draft   TransactionDraft
		wantErr bool
	}{
		{
			name:  "valid draft",
			draft: TransactionDraft{Item: "Kopi", Amount: 1},
		},
		{
			name:    "empty item",
			draft:   TransactionDraft{Item: "", Amount: 1000},
			wantErr: true,
			errMsg:  "item is required",
		},
		{
			name:    "whitespace-only item",
			draft:   TransactionDraft{Item: "   ", Amount: 1000},
			wantErr: true,
			errMsg:  "item is required",
		},
		{
			name:    "zero amount",
			draft:   TransactionDraft{Item: "Kopi", Amount: 0},
			wantErr: true,
			errMsg:  "amount must be positive, got 0",
		},
		{
			name:    "negative amount",
			draft:   TransactionDraft{Item: "Kopi", Amount: -500},
			wantErr: true,
			errMsg:  "amount must be positive, got -500",
		},
		{
			name:  "quantity and store stay optional",
			draft: TransactionDraft{Item: "Bensin", Amount: 50000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudgetCategoryValidate(t *testing.T) {
	valid := BudgetCategory{Name: "Transportasi", Period: PeriodWeekly, Allocated: 20000000}
	assert.NoError(t, valid.Validate())

	noName := BudgetCategory{Period: PeriodMonthly, Allocated: 100}
	assert.EqualError(t, noName.Validate(), "budget name is required")

	badPeriod := BudgetCategory{Name: "Jajan", Period: "daily", Allocated: 100}
	assert.EqualError(t, badPeriod.Validate(), `invalid budget period: "daily"`)

	negative := BudgetCategory{Name: "Jajan", Period: PeriodMonthly, Allocated: -1}
	assert.EqualError(t, negative.Validate(), "allocated amount cannot be negative, got -1")
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "minggu ini", PeriodWeekly.Label())
	assert.Equal(t, "bulan ini", PeriodMonthly.Label())
	assert.Equal(t, "tahun ini", PeriodYearly.Label())
}

func TestMoneyWholeRupiah(t *testing.T) {
	assert.Equal(t, int64(25), Money(2500).WholeRupiah())
	assert.Equal(t, int64(26), Money(2550).WholeRupiah())
	assert.Equal(t, int64(-26), Money(-2550).WholeRupiah())
	assert.Equal(t, int64(0), Money(0).WholeRupiah())
}
