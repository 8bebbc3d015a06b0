package components

import (
	"strings"
	"testing"

	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", got, tallLines)
	}
}

func TestSparklinePeaksAtFullBlock(t *testing.T) {
	theme.SetActive("terminal")

	out := Sparkline([]float64{0, 50, 100}, theme.Active.Green)
	if !strings.Contains(out, "█") {
		t.Error("peak value should render a full block")
	}
	if !strings.Contains(out, "▁") {
		t.Error("zero value should render the lowest block")
	}
}
