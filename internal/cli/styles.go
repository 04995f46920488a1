// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/monman-id/monman/internal/currency"
	"github.com/monman-id/monman/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#2563EB") // Blue
	// IncomeColor marks positive amounts.
	IncomeColor = lipgloss.Color("#16A34A") // Green
	// ExpenseColor marks negative amounts and over-budget warnings.
	ExpenseColor = lipgloss.Color("#DC2626") // Red
	// WarningColor marks budgets running hot.
	WarningColor = lipgloss.Color("#CA8A04") // Yellow
	// NeutralColor marks zero amounts and secondary text.
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(NeutralColor)

	// IncomeStyle formats inflows.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats outflows and over-budget figures.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// WarningStyle formats budgets past the caution threshold.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// AmountStyle picks the display style for an amount by its sign:
// green for income, red for expense, gray for zero.
func AmountStyle(amount model.Money) lipgloss.Style {
	switch currency.Classify(amount) {
	case currency.SignPositive:
		return IncomeStyle
	case currency.SignNegative:
		return ExpenseStyle
	default:
		return SubtleStyle
	}
}

// RenderAmount formats an amount and colors it by sign.
func RenderAmount(amount model.Money) string {
	return AmountStyle(amount).Render(currency.Format(amount, currency.DefaultOptions()))
}

// RenderBar renders a progress bar of the given width. The fill color
// follows the card rules: red over budget, yellow past 80%, green
// otherwise. Percent is clamped to [0, 100] for the width only.
func RenderBar(percent float64, overBudget bool, width int) string {
	if width <= 0 {
		width = 20
	}
	clamped := percent
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	filled := int(clamped / 100 * float64(width))

	style := IncomeStyle
	switch {
	case overBudget:
		style = ExpenseStyle
	case percent > 80:
		style = WarningStyle
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return style.Render(bar)
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	))
}
