package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/tui/components"
	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInvestTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	p := a.projection

	if p.Monthly <= 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		return "\n" + dim.Render("  Nothing to project: your budget has no monthly savings.")
	}

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Contributing", cli.FormatMoney(p.Monthly) + "/mo", "from budget savings"},
		{fmt.Sprintf("In %d years", a.investYears), cli.FormatMoneyCompact(p.FinalBalance), "[+/-] horizon"},
		{"Growth", cli.FormatMoneyCompact(p.TotalGrowth), fmt.Sprintf("at %s/yr", cli.FormatRate(p.AnnualReturn))},
		{"Real value", cli.FormatMoneyCompact(lastRealBalance(p.Years)), fmt.Sprintf("%s inflation", cli.FormatRate(p.InflationRate))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Growth chart
	if len(p.Years) > 0 {
		vals := make([]float64, len(p.Years))
		labels := make([]string, len(p.Years))
		for i, y := range p.Years {
			vals[i] = y.Balance
			if y.Year%5 == 0 {
				labels[i] = strconv.Itoa(y.Year) + "y"
			}
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			"Projected Balance",
			components.BarChart(vals, labels, t.Green, components.CardInnerWidth(cw), chartH),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Milestone table
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	growthStyle := lipgloss.NewStyle().Foreground(t.Green)

	var tableBody strings.Builder
	fmt.Fprintf(&tableBody, "%s %s %s %s\n",
		labelStyle.Render("Year"),
		labelStyle.Render(fmt.Sprintf("%14s", "Balance")),
		labelStyle.Render(fmt.Sprintf("%14s", "Contributed")),
		labelStyle.Render(fmt.Sprintf("%14s", "Growth")))
	for _, y := range p.Years {
		if y.Year%5 != 0 && y.Year != a.investYears {
			continue
		}
		fmt.Fprintf(&tableBody, "%s %s %s %s\n",
			valStyle.Render(fmt.Sprintf("%4d", y.Year)),
			valStyle.Render(fmt.Sprintf("%14s", cli.FormatMoneyCompact(y.Balance))),
			labelStyle.Render(fmt.Sprintf("%14s", cli.FormatMoneyCompact(y.Contributed))),
			growthStyle.Render(fmt.Sprintf("%14s", cli.FormatMoneyCompact(y.Growth))))
	}
	b.WriteString(components.ContentCard("Milestones", tableBody.String(), cw))

	return b.String()
}

func lastRealBalance(years []model.ProjectionYear) float64 {
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1].RealBalance
}
