package model

import (
	"fmt"
	"strings"
	"time"
)

// Period is the recurrence window a budget allocation applies to. It is
// a display label only and has no effect on any arithmetic.
type Period string

const (
	// PeriodWeekly labels a budget that resets every week.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly labels a budget that resets every month.
	PeriodMonthly Period = "monthly"
	// PeriodYearly labels a budget that resets every year.
	PeriodYearly Period = "yearly"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Label returns the Indonesian display text for the period.
func (p Period) Label() string {
	switch p {
	case PeriodWeekly:
		return "minggu ini"
	case PeriodYearly:
		return "tahun ini"
	default:
		return "bulan ini"
	}
}

// CommonPurchase is a purchase preset attached to a budget: a template
// that pre-fills the add-transaction form. Presets are not part of
// spend accounting.
type CommonPurchase struct {
	ID              string
	BudgetID        string
	Item            string
	Quantity        string
	Store           string
	EstimatedAmount Money
	SortOrder       int
}

// BudgetCategory is a named spending bucket: an allocation cap for the
// current period plus the transactions logged against it. The category
// owns its transaction and preset lists while displayed; derived
// figures (spent, remaining, percentages) are never stored and are
// recomputed from the current lists on every evaluation.
type BudgetCategory struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastPeriodSpent *Money // nil means no comparison baseline, not zero
	ID              string
	Name            string
	Period          Period
	Transactions    []Transaction
	CommonPurchases []CommonPurchase
	Allocated       Money
}

// Validate checks the stored fields of a category before persistence.
func (c *BudgetCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("budget name is required")
	}
	if c.Allocated < 0 {
		return fmt.Errorf("allocated amount cannot be negative, got %d", c.Allocated)
	}
	if !c.Period.Valid() {
		return fmt.Errorf("invalid budget period: %q", c.Period)
	}
	if c.LastPeriodSpent != nil && *c.LastPeriodSpent < 0 {
		return fmt.Errorf("last period spend cannot be negative, got %d", *c.LastPeriodSpent)
	}
	return nil
}
