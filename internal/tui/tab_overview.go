package tui

import (
	"fmt"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/tui/components"
	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	var totalDebt float64
	for _, d := range a.debts {
		totalDebt += d.Balance
	}

	payoffDetail := ""
	if len(a.debts) > 0 {
		best := a.comparison.Avalanche
		if a.comparison.Best == a.comparison.Snowball.Strategy {
			best = a.comparison.Snowball
		}
		if best.Converged {
			payoffDetail = "debt-free in " + cli.FormatMonths(best.TotalMonths)
		} else {
			payoffDetail = "not paid off in 50y"
		}
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Net / month", cli.FormatMoneyCompact(a.summary.Net), cli.FormatPercent(a.summary.SavingsRate) + " saved"},
		{"Total debt", cli.FormatMoneyCompact(totalDebt), payoffDetail},
		{"Health", fmt.Sprintf("%d/100", a.health.Score), "grade " + a.health.Grade},
		{"In 30 years", cli.FormatMoneyCompact(a.projection.FinalBalance), "if savings invested"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Health score bars + 50/30/20 comparison
	halves := components.LayoutRow(cw, 2)
	innerW := components.CardInnerWidth(halves[0])
	barW := innerW - 18
	if barW < 10 {
		barW = 10
	}

	var healthBody strings.Builder
	healthBody.WriteString(components.ScoreBar("Savings", a.health.SavingsRateScore/40, 10, barW))
	healthBody.WriteString("\n")
	healthBody.WriteString(components.ScoreBar("Debt", a.health.DebtScore/30, 10, barW))
	healthBody.WriteString("\n")
	healthBody.WriteString(components.ScoreBar("Essentials", a.health.EssentialsScore/30, 10, barW))
	healthBody.WriteString("\n")

	var ruleBody strings.Builder
	ruleInnerW := components.CardInnerWidth(halves[1])
	ruleBarW := ruleInnerW - 18
	if ruleBarW < 10 {
		ruleBarW = 10
	}
	if a.summary.TotalIncome > 0 {
		income := a.summary.TotalIncome
		ruleBody.WriteString(components.RatioBar("Needs", a.summary.Needs/income, t.Blue, 10, ruleBarW))
		ruleBody.WriteString("\n")
		ruleBody.WriteString(components.RatioBar("Wants", a.summary.Wants/income, t.Orange, 10, ruleBarW))
		ruleBody.WriteString("\n")
		ruleBody.WriteString(components.RatioBar("Savings", a.summary.Savings/income, t.Green, 10, ruleBarW))
		ruleBody.WriteString("\n")
	} else {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		ruleBody.WriteString(dim.Render("No income entries yet."))
		ruleBody.WriteString("\n")
	}

	healthCard := components.ContentCard(
		fmt.Sprintf("Health Score  %d/100 (%s)", a.health.Score, a.health.Grade),
		healthBody.String(), halves[0])
	ruleCard := components.ContentCard("Spending vs 50/30/20", ruleBody.String(), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Health Score  %d/100 (%s)", a.health.Score, a.health.Grade),
			healthBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Spending vs 50/30/20", ruleBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{healthCard, ruleCard}))
	}
	b.WriteString("\n")

	// Row 3: Debt list
	if len(a.debts) > 0 {
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		barStyle := lipgloss.NewStyle().Foreground(t.Red)

		maxBalance := 0.0
		for _, d := range a.debts {
			if d.Balance > maxBalance {
				maxBalance = d.Balance
			}
		}

		debtInnerW := components.CardInnerWidth(cw)
		nameW := 18
		barMax := debtInnerW - nameW - 24
		if barMax < 5 {
			barMax = 5
		}

		var debtBody strings.Builder
		for _, d := range a.debts {
			barLen := 0
			if maxBalance > 0 {
				barLen = int(d.Balance / maxBalance * float64(barMax))
			}
			fmt.Fprintf(&debtBody, "%s %s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(d.Name, nameW))),
				amtStyle.Render(fmt.Sprintf("%12s", cli.FormatMoneyCompact(d.Balance))),
				amtStyle.Render(fmt.Sprintf("%7s", cli.FormatRate(d.AnnualRate))),
				barStyle.Render(strings.Repeat("█", barLen)))
		}
		b.WriteString(components.ContentCard("Debts", debtBody.String(), cw))
	} else {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString("\n")
		b.WriteString(dim.Render("  No debts tracked. Press [a] to add one."))
	}

	return b.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
