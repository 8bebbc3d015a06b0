package tui

import (
	"fmt"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/plan"
	"github.com/nwrenn27-sketch/finplan/internal/tui/components"
	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPayoffTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.debts) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n" + dim.Render("  No debts tracked. Press [a] to add one.")
	}

	p := a.activePlan()

	// Row 1: Metric cards for the active strategy
	cards := []struct{ Label, Value, Detail string }{
		{"Strategy", titleCase(p.Strategy), "[s] to toggle"},
		{"Debt-free in", cli.FormatMonths(p.TotalMonths), ""},
		{"Total interest", cli.FormatMoneyCompact(p.TotalInterest), ""},
		{"Extra payment", cli.FormatMoney(a.extra) + "/mo", "[+/-] to adjust"},
	}
	if !p.Converged {
		cards[1].Value = ">" + cli.FormatMonths(plan.MaxMonths)
		cards[1].Detail = "never pays off"
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Strategy comparison + payoff timeline
	halves := components.LayoutRow(cw, 2)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	bestStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)

	av := a.comparison.Avalanche
	sn := a.comparison.Snowball

	var cmpBody strings.Builder
	fmt.Fprintf(&cmpBody, "%s  %s, %s interest\n",
		labelStyle.Render("Avalanche"),
		valStyle.Render(cli.FormatMonths(av.TotalMonths)),
		valStyle.Render(cli.FormatMoneyCompact(av.TotalInterest)))
	fmt.Fprintf(&cmpBody, "%s  %s, %s interest\n",
		labelStyle.Render("Snowball "),
		valStyle.Render(cli.FormatMonths(sn.TotalMonths)),
		valStyle.Render(cli.FormatMoneyCompact(sn.TotalInterest)))
	cmpBody.WriteString("\n")
	if a.comparison.InterestSaved > 0.005 {
		fmt.Fprintf(&cmpBody, "%s saves %s\n",
			bestStyle.Render(titleCase(a.comparison.Best)),
			bestStyle.Render(cli.FormatMoney(a.comparison.InterestSaved)))
	} else {
		cmpBody.WriteString(labelStyle.Render("Both cost the same here."))
		cmpBody.WriteString("\n")
	}

	var tlBody strings.Builder
	monthStyle := lipgloss.NewStyle().Foreground(t.Accent)
	for _, ev := range p.Timeline {
		fmt.Fprintf(&tlBody, "%s  %s\n",
			monthStyle.Render(fmt.Sprintf("%7s", cli.FormatMonths(ev.Month))),
			valStyle.Render(ev.Debt))
	}
	if !p.Converged {
		warnStyle := lipgloss.NewStyle().Foreground(t.Red)
		for _, d := range p.Remaining {
			fmt.Fprintf(&tlBody, "%s  %s still owes %s\n",
				warnStyle.Render("  never"),
				warnStyle.Render(d.Name),
				warnStyle.Render(cli.FormatMoneyCompact(d.Balance)))
		}
	}

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Strategy Comparison", cmpBody.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Timeline", tlBody.String(), cw))
	} else {
		cmpCard := components.ContentCard("Strategy Comparison", cmpBody.String(), halves[0])
		tlCard := components.ContentCard("Timeline", tlBody.String(), halves[1])
		b.WriteString(components.CardRow([]string{cmpCard, tlCard}))
	}
	b.WriteString("\n")

	// Row 3: Remaining balance curve for the active strategy
	if len(p.Balances) > 1 {
		chartH := 8
		if a.isCompactLayout() {
			chartH = 6
		}
		b.WriteString(components.ContentCard(
			"Remaining Balance",
			components.BarChart(p.Balances, monthLabels(len(p.Balances)), t.Red, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}

	return b.String()
}

// monthLabels builds sparse X-axis labels, one per full year.
func monthLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		month := i + 1
		if month%12 == 0 {
			labels[i] = fmt.Sprintf("%dy", month/12)
		}
	}
	return labels
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
