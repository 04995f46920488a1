// Package budget derives display figures from a budget category. Every
// function is a pure projection of its input; nothing here mutates a
// category or its transaction list.
package budget

import (
	"github.com/monman-id/monman/internal/model"
)

// Progress holds the derived figures for a category's current period.
type Progress struct {
	Spent      model.Money
	Remaining  model.Money
	Percentage float64 // raw, may exceed 100
	OverBudget bool
}

// Comparison relates current spend to the prior period's total.
// Positive Diff means spending increased (worse); negative means
// improvement. Available is false when no baseline exists, which is
// distinct from a baseline of zero.
type Comparison struct {
	Diff        model.Money
	DiffPercent float64
	Available   bool
}

// Spent sums the category's transaction amounts. An empty list is 0.
func Spent(c *model.BudgetCategory) model.Money {
	var total model.Money
	for _, txn := range c.Transactions {
		total += txn.Amount
	}
	return total
}

// ComputeProgress derives remaining balance, consumption percentage and
// the over-budget flag. A zero allocation yields a percentage of 0
// rather than a non-finite value, and equality with the allocation is
// not over budget.
func ComputeProgress(c *model.BudgetCategory) Progress {
	spent := Spent(c)
	p := Progress{
		Spent:      spent,
		Remaining:  c.Allocated - spent,
		OverBudget: spent > c.Allocated,
	}
	if c.Allocated > 0 {
		p.Percentage = float64(spent) / float64(c.Allocated) * 100
	}
	return p
}

// ClampPercent bounds a raw percentage to [0, 100] for progress-bar
// widths. Text display keeps the raw value.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ComputeComparison derives the period-over-period panel. A nil
// baseline yields Available false with no figures; a zero baseline is
// a real comparison whose percentage is defined as 0.
func ComputeComparison(c *model.BudgetCategory) Comparison {
	if c.LastPeriodSpent == nil {
		return Comparison{}
	}
	last := *c.LastPeriodSpent
	cmp := Comparison{
		Available: true,
		Diff:      Spent(c) - last,
	}
	if last > 0 {
		cmp.DiffPercent = float64(cmp.Diff) / float64(last) * 100
	}
	return cmp
}

// ApplyPreset projects a common purchase into a prefilled transaction
// draft for the user to confirm or edit. It does not add anything.
func ApplyPreset(p model.CommonPurchase) model.TransactionDraft {
	return model.TransactionDraft{
		Item:     p.Item,
		Quantity: p.Quantity,
		Amount:   p.EstimatedAmount,
		Store:    p.Store,
	}
}
