package model

import (
	"fmt"
	"strings"
	"time"
)

// Transaction is a single purchase logged against a budget category.
// Amount is the absolute cost and always counts as a positive
// contribution to that category's spend.
type Transaction struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
	BudgetID  string
	Item      string
	Quantity  string // free text: "× 2", "1/2 kg", a price note, or empty
	Store     string // free text provenance: "Indomaret Jl. Sudirman"
	Category  string // suggestion tag only, never aggregated
	Amount    Money
}

// TransactionDraft holds the add-transaction form fields before they are
// committed. Presets project into a draft; the user confirms or edits it.
type TransactionDraft struct {
	Date     time.Time
	Item     string
	Quantity string
	Store    string
	Category string
	Amount   Money
}

// Validate reports whether the draft is submittable. This is the single
// gate for every add path: a non-empty item after trimming and a
// positive amount. Quantity and store are always optional.
func (d TransactionDraft) Validate() error {
	if strings.TrimSpace(d.Item) == "" {
		return fmt.Errorf("item is required")
	}
	if d.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", d.Amount)
	}
	return nil
}
