// Package tui implements the interactive budget cards screen.
package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/monman-id/monman/internal/budget"
	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
	"github.com/monman-id/monman/internal/service"
)

// Form field order in the add-transaction form.
const (
	fieldItem = iota
	fieldQuantity
	fieldAmount
	fieldStore
	fieldCount
)

type budgetsLoadedMsg struct {
	budgets []model.BudgetCategory
}

type storeErrMsg struct {
	err error
}

type txnStoredMsg struct{}

// Model holds the budget cards screen state. Each visible card pairs a
// BudgetCategory with a pure budget.CardState; all derived figures come
// from internal/budget on every View call.
type Model struct {
	storage   service.Storage
	ctx       context.Context
	lastError error
	budgets   []model.BudgetCategory
	cards     []budget.CardState
	inputs    []textinput.Model
	keymap    KeyMap
	cursor    int
	txnCursor int
	focus     int
	width     int
	height    int
	quitting  bool
}

// NewModel creates the screen model backed by the given storage.
func NewModel(ctx context.Context, storage service.Storage) Model {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := []string{"Indomie Goreng, Ayam, Bensin...", "× 2, 1/2 kg (opsional)", "30000", "Indomaret, Pasar (opsional)"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 120
	}

	return Model{
		storage: storage,
		ctx:     ctx,
		inputs:  inputs,
		keymap:  DefaultKeyMap(),
	}
}

// Init loads the budgets.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.loadBudgets())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case budgetsLoadedMsg:
		m.budgets = msg.budgets
		if len(m.cards) != len(m.budgets) {
			m.cards = make([]budget.CardState, len(m.budgets))
		}
		if m.cursor >= len(m.budgets) {
			m.cursor = 0
		}
		m.clampTxnCursor()
		return m, nil

	case txnStoredMsg:
		m.lastError = nil
		return m, m.loadBudgets()

	case storeErrMsg:
		m.lastError = msg.err
		return m, nil

	case tea.KeyMsg:
		if len(m.budgets) > 0 && m.cards[m.cursor].Adding {
			return m.updateForm(msg)
		}
		return m.updateCards(msg)
	}

	return m, nil
}

func (m Model) updateCards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
			m.txnCursor = 0
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.budgets)-1 {
			m.cursor++
			m.txnCursor = 0
		}

	case key.Matches(msg, m.keymap.Toggle):
		if len(m.cards) > 0 {
			m.cards[m.cursor] = m.cards[m.cursor].ToggleExpanded()
			m.txnCursor = 0
		}

	case key.Matches(msg, m.keymap.Add):
		if len(m.cards) > 0 {
			m.cards[m.cursor] = m.cards[m.cursor].StartAdding()
			m.syncFormFromDraft()
		}

	case key.Matches(msg, m.keymap.Preset):
		if len(m.cards) > 0 && m.cards[m.cursor].Expanded {
			idx, _ := strconv.Atoi(msg.String())
			presets := m.budgets[m.cursor].CommonPurchases
			if idx >= 1 && idx <= len(presets) {
				m.cards[m.cursor] = m.cards[m.cursor].StartAddingPreset(presets[idx-1])
				m.syncFormFromDraft()
			}
		}

	case key.Matches(msg, m.keymap.NextTxn):
		if m.expandedTxnCount() > 0 && m.txnCursor < m.expandedTxnCount()-1 {
			m.txnCursor++
		}

	case key.Matches(msg, m.keymap.PrevTxn):
		if m.txnCursor > 0 {
			m.txnCursor--
		}

	case key.Matches(msg, m.keymap.Delete):
		if m.expandedTxnCount() > 0 {
			txn := m.budgets[m.cursor].Transactions[m.txnCursor]
			return m, m.deleteTransaction(txn.BudgetID, txn.ID)
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.cards[m.cursor] = m.cards[m.cursor].Cancel()
		m.lastError = nil
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		m.cards[m.cursor] = m.cards[m.cursor].SetDraft(m.draftFromForm())
		draft, next, err := m.cards[m.cursor].Submit()
		if err != nil {
			// Invalid draft: surface the error, keep the form open.
			m.lastError = err
			return m, nil
		}
		m.cards[m.cursor] = next
		return m, m.addTransaction(m.budgets[m.cursor].ID, draft)

	case key.Matches(msg, m.keymap.NextField):
		m.focus = (m.focus + 1) % fieldCount
		m.focusInputs()
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		m.focusInputs()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.cards[m.cursor] = m.cards[m.cursor].SetDraft(m.draftFromForm())
	return m, cmd
}

func (m *Model) syncFormFromDraft() {
	draft := m.cards[m.cursor].Draft
	m.inputs[fieldItem].SetValue(draft.Item)
	m.inputs[fieldQuantity].SetValue(draft.Quantity)
	if draft.Amount > 0 {
		m.inputs[fieldAmount].SetValue(strconv.FormatInt(draft.Amount.WholeRupiah(), 10))
	} else {
		m.inputs[fieldAmount].SetValue("")
	}
	m.inputs[fieldStore].SetValue(draft.Store)
	m.focus = fieldItem
	m.focusInputs()
}

func (m *Model) focusInputs() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// draftFromForm reads the form fields into a draft. The amount field
// takes whole Rupiah text, in any form Parse accepts.
func (m Model) draftFromForm() model.TransactionDraft {
	return model.TransactionDraft{
		Item:     m.inputs[fieldItem].Value(),
		Quantity: m.inputs[fieldQuantity].Value(),
		Amount:   currency.Parse(m.inputs[fieldAmount].Value()),
		Store:    m.inputs[fieldStore].Value(),
	}
}

func (m Model) expandedTxnCount() int {
	if len(m.budgets) == 0 || !m.cards[m.cursor].Expanded {
		return 0
	}
	return len(m.budgets[m.cursor].Transactions)
}

func (m *Model) clampTxnCursor() {
	if count := m.expandedTxnCount(); m.txnCursor >= count {
		m.txnCursor = 0
	}
}

func (m Model) loadBudgets() tea.Cmd {
	return func() tea.Msg {
		budgets, err := m.storage.ListBudgets(m.ctx)
		if err != nil {
			return storeErrMsg{err: err}
		}
		return budgetsLoadedMsg{budgets: budgets}
	}
}

func (m Model) addTransaction(budgetID string, draft model.TransactionDraft) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.storage.AddTransaction(m.ctx, budgetID, draft); err != nil {
			return storeErrMsg{err: err}
		}
		return txnStoredMsg{}
	}
}

func (m Model) deleteTransaction(budgetID, transactionID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.storage.DeleteTransaction(m.ctx, budgetID, transactionID); err != nil {
			return storeErrMsg{err: err}
		}
		return txnStoredMsg{}
	}
}
