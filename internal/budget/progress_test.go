package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monman-id/monman/internal/model"
)

func money(m model.Money) *model.Money {
	return &m
}

func category(allocated model.Money, amounts ...model.Money) *model.BudgetCategory {
	c := &model.BudgetCategory{
		ID:        "b1",
		Name:      "Belanja Harian",
		Period:    model.PeriodMonthly,
		Allocated: allocated,
	}
	for _, a := range amounts {
		c.Transactions = append(c.Transactions, model.Transaction{Amount: a})
	}
	return c
}

func TestSpent(t *testing.T) {
	assert.Equal(t, model.Money(0), Spent(category(100000)))
	assert.Equal(t, model.Money(325000), Spent(category(500000, 125000, 200000)))
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		category *model.BudgetCategory
		want     Progress
	}{
		{
			name:     "normal spend",
			category: category(500000, 125000, 200000),
			want: Progress{
				Spent:      325000,
				Remaining:  175000,
				Percentage: 65,
				OverBudget: false,
			},
		},
		{
			name:     "equal to allocation is not over budget",
			category: category(500000, 500000),
			want: Progress{
				Spent:      500000,
				Remaining:  0,
				Percentage: 100,
				OverBudget: false,
			},
		},
		{
			name:     "one cent past allocation is over budget",
			category: category(500000, 500001),
			want: Progress{
				Spent:      500001,
				Remaining:  -1,
				Percentage: 100.0002,
				OverBudget: true,
			},
		},
		{
			name:     "zero allocation yields zero percentage",
			category: category(0, 125000),
			want: Progress{
				Spent:      125000,
				Remaining:  -125000,
				Percentage: 0,
				OverBudget: true,
			},
		},
		{
			name:     "zero allocation zero spend",
			category: category(0),
			want:     Progress{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgress(tt.category)
			assert.Equal(t, tt.want.Spent, got.Spent)
			assert.Equal(t, tt.want.Remaining, got.Remaining)
			assert.InDelta(t, tt.want.Percentage, got.Percentage, 0.001)
			assert.Equal(t, tt.want.OverBudget, got.OverBudget)
		})
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-5))
	assert.Equal(t, 65.0, ClampPercent(65))
	assert.Equal(t, 100.0, ClampPercent(120))
}

func TestComputeComparison(t *testing.T) {
	t.Run("no baseline means unavailable", func(t *testing.T) {
		cmp := ComputeComparison(category(500000, 100000))
		assert.False(t, cmp.Available)
		assert.Equal(t, model.Money(0), cmp.Diff)
		assert.Equal(t, 0.0, cmp.DiffPercent)
	})

	t.Run("zero baseline is a real comparison", func(t *testing.T) {
		c := category(500000, 50000)
		c.LastPeriodSpent = money(0)
		cmp := ComputeComparison(c)
		assert.True(t, cmp.Available)
		assert.Equal(t, model.Money(50000), cmp.Diff)
		assert.Equal(t, 0.0, cmp.DiffPercent)
	})

	t.Run("increase is positive", func(t *testing.T) {
		c := category(500000, 150000)
		c.LastPeriodSpent = money(100000)
		cmp := ComputeComparison(c)
		assert.True(t, cmp.Available)
		assert.Equal(t, model.Money(50000), cmp.Diff)
		assert.InDelta(t, 50.0, cmp.DiffPercent, 0.001)
	})

	t.Run("decrease is negative", func(t *testing.T) {
		c := category(500000, 50000)
		c.LastPeriodSpent = money(100000)
		cmp := ComputeComparison(c)
		assert.Equal(t, model.Money(-50000), cmp.Diff)
		assert.InDelta(t, -50.0, cmp.DiffPercent, 0.001)
	})
}

func TestApplyPreset(t *testing.T) {
	preset := model.CommonPurchase{
		Item:            "Indomie Goreng",
		Quantity:        "× 5",
		EstimatedAmount: 12500,
		Store:           "Indomaret",
	}
	draft := ApplyPreset(preset)
	assert.Equal(t, "Indomie Goreng", draft.Item)
	assert.Equal(t, "× 5", draft.Quantity)
	assert.Equal(t, model.Money(12500), draft.Amount)
	assert.Equal(t, "Indomaret", draft.Store)

	// Optional preset fields project as empty strings.
	sparse := ApplyPreset(model.CommonPurchase{Item: "Bensin", EstimatedAmount: 50000})
	assert.Equal(t, "", sparse.Quantity)
	assert.Equal(t, "", sparse.Store)
}

func TestSummarize(t *testing.T) {
	categories := []model.BudgetCategory{
		*category(500000, 125000, 200000),
		*category(100000, 150000),
	}
	s := Summarize(categories)
	assert.Equal(t, 2, s.BudgetCount)
	assert.Equal(t, model.Money(600000), s.TotalAllocated)
	assert.Equal(t, model.Money(475000), s.TotalSpent)
	assert.Equal(t, model.Money(125000), s.TotalRemaining)
	assert.Equal(t, 1, s.OverBudget)

	assert.Equal(t, Summary{}, Summarize(nil))
}
