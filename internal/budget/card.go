package budget

import (
	"github.com/monman-id/monman/internal/model"
)

// CardState is the view state of one budget card: collapsed or
// expanded, and whether the add-transaction form is open. Transitions
// are pure; the hosting view holds the current state and swaps it for
// the returned one. Submitting is the only transition that emits
// anything, and only after the draft passes validation.
type CardState struct {
	Draft    model.TransactionDraft
	Expanded bool
	Adding   bool
}

// ToggleExpanded flips between collapsed and expanded. No side effects.
func (s CardState) ToggleExpanded() CardState {
	s.Expanded = !s.Expanded
	return s
}

// StartAdding opens the add-transaction form with an empty draft.
func (s CardState) StartAdding() CardState {
	s.Adding = true
	s.Draft = model.TransactionDraft{}
	return s
}

// StartAddingPreset opens the form prefilled from a common purchase.
func (s CardState) StartAddingPreset(p model.CommonPurchase) CardState {
	s.Adding = true
	s.Draft = ApplyPreset(p)
	return s
}

// SetDraft replaces the in-progress form fields.
func (s CardState) SetDraft(d model.TransactionDraft) CardState {
	s.Draft = d
	return s
}

// Submit validates the draft. On success it returns the draft for the
// caller to hand to the transaction store, with the form closed and
// cleared. On failure the state is unchanged so the form stays open
// for correction.
func (s CardState) Submit() (model.TransactionDraft, CardState, error) {
	if err := s.Draft.Validate(); err != nil {
		return model.TransactionDraft{}, s, err
	}
	draft := s.Draft
	s.Adding = false
	s.Draft = model.TransactionDraft{}
	return draft, s, nil
}

// Cancel closes the form and discards the draft without emitting it.
func (s CardState) Cancel() CardState {
	s.Adding = false
	s.Draft = model.TransactionDraft{}
	return s
}
