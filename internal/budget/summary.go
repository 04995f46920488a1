package budget

import (
	"github.com/monman-id/monman/internal/model"
)

// Summary aggregates progress across all categories for the dashboard.
type Summary struct {
	TotalAllocated model.Money
	TotalSpent     model.Money
	TotalRemaining model.Money
	BudgetCount    int
	OverBudget     int
}

// Summarize folds per-category progress into dashboard totals.
func Summarize(categories []model.BudgetCategory) Summary {
	s := Summary{BudgetCount: len(categories)}
	for i := range categories {
		p := ComputeProgress(&categories[i])
		s.TotalAllocated += categories[i].Allocated
		s.TotalSpent += p.Spent
		s.TotalRemaining += p.Remaining
		if p.OverBudget {
			s.OverBudget++
		}
	}
	return s
}
