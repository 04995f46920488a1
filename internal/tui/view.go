package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/monman-id/monman/internal/budget"
	"github.com/monman-id/monman/internal/cli"
	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	labelStyle    = lipgloss.NewStyle().Foreground(cli.NeutralColor)
	errStyle      = lipgloss.NewStyle().Foreground(cli.ExpenseColor)
)

// View renders the budget cards.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("MonMan — Anggaran"))
	b.WriteString("\n")

	if len(m.budgets) == 0 {
		b.WriteString(cli.SubtleStyle.Render("Belum ada anggaran. Buat dengan 'monman budgets add'."))
		b.WriteString("\n")
		return b.String()
	}

	for i := range m.budgets {
		b.WriteString(m.renderCard(i))
		b.WriteString("\n")
	}

	if m.lastError != nil {
		b.WriteString(errStyle.Render("! " + m.lastError.Error()))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("↑/↓ pilih · enter buka · a tambah · 1-9 preset · J/K · x hapus · q keluar"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCard(i int) string {
	c := &m.budgets[i]
	card := m.cards[i]
	progress := budget.ComputeProgress(c)

	cursor := "  "
	nameStyle := lipgloss.NewStyle()
	if i == m.cursor {
		cursor = "❯ "
		nameStyle = selectedStyle
	}

	header := fmt.Sprintf("%s%s %s  %s",
		cursor,
		nameStyle.Render(c.Name),
		labelStyle.Render(c.Period.Label()),
		cli.RenderAmount(progress.Remaining),
	)

	bar := cli.RenderBar(progress.Percentage, progress.OverBudget, 30)
	stats := fmt.Sprintf("  %s / %s  %s",
		currency.Format(progress.Spent, currency.DefaultOptions()),
		currency.Format(c.Allocated, currency.DefaultOptions()),
		labelStyle.Render(fmt.Sprintf("%.0f%% terpakai · %d transaksi", progress.Percentage, len(c.Transactions))),
	)

	lines := []string{header, "  " + bar, stats}

	if card.Expanded {
		lines = append(lines, m.renderExpanded(i)...)
	}
	if card.Adding && i == m.cursor {
		lines = append(lines, m.renderForm()...)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderExpanded(i int) []string {
	c := &m.budgets[i]
	var lines []string

	if cmp := budget.ComputeComparison(c); cmp.Available {
		lines = append(lines, "  "+labelStyle.Render("Perbandingan periode:")+" "+renderComparison(cmp, *c.LastPeriodSpent))
	}

	if len(c.CommonPurchases) > 0 {
		lines = append(lines, "  "+labelStyle.Render("Pembelian umum:"))
		for n, preset := range c.CommonPurchases {
			entry := fmt.Sprintf("    %d. %s", n+1, preset.Item)
			if preset.Quantity != "" {
				entry += " (" + preset.Quantity + ")"
			}
			entry += "  ~" + currency.Format(preset.EstimatedAmount, currency.DefaultOptions())
			lines = append(lines, entry)
		}
	}

	if len(c.Transactions) > 0 {
		lines = append(lines, "  "+labelStyle.Render("Riwayat transaksi:"))
		for n, txn := range c.Transactions {
			marker := "    "
			style := lipgloss.NewStyle()
			if i == m.cursor && n == m.txnCursor {
				marker = "  ❯ "
				style = selectedStyle
			}
			entry := txn.Item
			if txn.Quantity != "" {
				entry += " (" + txn.Quantity + ")"
			}
			line := marker + style.Render(entry) + "  " + currency.Format(txn.Amount, currency.DefaultOptions())
			if txn.Store != "" {
				line += "  " + labelStyle.Render(txn.Store)
			}
			line += "  " + labelStyle.Render(txn.Date.Format("02/01/2006"))
			lines = append(lines, line)
		}
	}

	return lines
}

func (m Model) renderForm() []string {
	labels := []string{"Item / Barang", "Kuantitas", "Harga (Rp)", "Tempat Beli"}
	lines := []string{"  " + cli.BoldStyle.Render("Tambah Transaksi")}
	for i, input := range m.inputs {
		lines = append(lines, fmt.Sprintf("    %s %s", labelStyle.Render(labels[i]+":"), input.View()))
	}
	lines = append(lines, "    "+labelStyle.Render("enter simpan · esc batal · tab pindah kolom"))
	return lines
}

// renderComparison styles the period diff: an increase in spend is a
// warning, a decrease an improvement.
func renderComparison(cmp budget.Comparison, last model.Money) string {
	sign := ""
	style := cli.IncomeStyle
	if cmp.Diff >= 0 {
		sign = "+"
		style = cli.ExpenseStyle
	}
	return fmt.Sprintf("periode lalu %s  %s",
		currency.Format(last, currency.DefaultOptions()),
		style.Render(fmt.Sprintf("%s%s (%s%.1f%%)",
			sign,
			currency.Format(cmp.Diff.Abs(), currency.DefaultOptions()),
			sign,
			cmp.DiffPercent,
		)),
	)
}
