package components

import (
	"fmt"

	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForScore returns red/orange/yellow/green based on a 0-1 ratio,
// where higher is better.
func ColorForScore(ratio float64) string {
	t := theme.Active
	switch {
	case ratio >= 0.75:
		return string(t.Green)
	case ratio >= 0.5:
		return string(t.Yellow)
	case ratio >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ScoreBar renders a labeled progress bar colored by how good the
// ratio is.
func ScoreBar(label string, ratio float64, labelW, barWidth int) string {
	t := theme.Active

	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForScore(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForScore(ratio))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(ratio) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100))
}

// RatioBar renders a labeled progress bar in a fixed accent color,
// for actual-versus-target comparisons where neither end is "bad".
func RatioBar(label string, ratio float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(ratio) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ratio*100))
}
