package tui

import (
	"fmt"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/tui/components"
	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.entries) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n" + dim.Render("  No budget entries yet. Add them with `finplan budget add`.")
	}

	s := a.summary

	// Row 1: Metric cards
	netDetail := "surplus"
	if s.Net < 0 {
		netDetail = "deficit"
	}
	cards := []struct{ Label, Value, Detail string }{
		{"Income", cli.FormatMoneyCompact(s.TotalIncome), "per month"},
		{"Expenses", cli.FormatMoneyCompact(s.TotalExpenses), "per month"},
		{"Net", cli.FormatMoneyCompact(s.Net), netDetail},
		{"Savings rate", cli.FormatPercent(s.SavingsRate), "target 20%"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Actual vs target split
	var ruleBody strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	overStyle := lipgloss.NewStyle().Foreground(t.Red)

	writeRuleLine := func(name string, actual, target float64, overIsBad bool) {
		status := okStyle
		if overIsBad && actual > target {
			status = overStyle
		}
		if !overIsBad && actual < target {
			status = overStyle
		}
		fmt.Fprintf(&ruleBody, "%s %s actual  %s target  %s\n",
			labelStyle.Render(fmt.Sprintf("%-8s", name)),
			status.Render(fmt.Sprintf("%12s", cli.FormatMoney(actual))),
			labelStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(target))),
			status.Render(cli.FormatDelta(actual, target)))
	}
	writeRuleLine("Needs", s.Needs, s.TargetNeeds, true)
	writeRuleLine("Wants", s.Wants, s.TargetWants, true)
	writeRuleLine("Savings", s.Savings, s.TargetSavings, false)

	b.WriteString(components.ContentCard("50/30/20 Rule", ruleBody.String(), cw))
	b.WriteString("\n")

	// Row 3: Entry breakdown, incomes left, expenses right
	halves := components.LayoutRow(cw, 2)

	incBody := a.renderEntryList(model.KindIncome, components.CardInnerWidth(halves[0]))
	expBody := a.renderEntryList(model.KindExpense, components.CardInnerWidth(halves[1]))

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Income", incBody, cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Expenses", expBody, cw))
	} else {
		incCard := components.ContentCard("Income", incBody, halves[0])
		expCard := components.ContentCard("Expenses", expBody, halves[1])
		b.WriteString(components.CardRow([]string{incCard, expCard}))
	}

	return b.String()
}

func (a App) renderEntryList(kind string, innerW int) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	classStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := innerW - 24
	if nameW < 8 {
		nameW = 8
	}

	var b strings.Builder
	for _, e := range a.entries {
		if e.Kind != kind {
			continue
		}
		class := ""
		if e.Kind == model.KindExpense {
			class = e.Necessity
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.Name, nameW))),
			amtStyle.Render(fmt.Sprintf("%11s", cli.FormatMoney(e.Amount))),
			classStyle.Render(class))
	}
	if b.Len() == 0 {
		return classStyle.Render("none")
	}
	return b.String()
}
