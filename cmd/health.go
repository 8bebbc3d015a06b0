package cmd

import (
	"fmt"

	"github.com/nwrenn27-sketch/finplan/internal/budget"
	"github.com/nwrenn27-sketch/finplan/internal/cli"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Financial health score from your budget and debts",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	debts, err := s.ListDebts()
	if err != nil {
		return err
	}
	if len(entries) == 0 && len(debts) == 0 {
		fmt.Println("\n  Nothing to score yet.")
		fmt.Println("  Add income and expenses with `finplan budget add`, debts with `finplan debts add`.")
		return nil
	}

	summary := budget.Summarize(entries)
	report := budget.HealthScore(summary, debts)
	if flagJSON {
		return printJSON(report)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINANCIAL HEALTH  %d/100 (%s)", report.Score, report.Grade)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Component", "Score", "Value"},
		Rows: [][]string{
			{"Savings rate", fmt.Sprintf("%.0f/40", report.SavingsRateScore), cli.FormatPercent(report.SavingsRate)},
			{"Debt load", fmt.Sprintf("%.0f/30", report.DebtScore), cli.FormatPercent(report.DebtToIncome) + " DTI"},
			{"Essentials", fmt.Sprintf("%.0f/30", report.EssentialsScore), cli.FormatPercent(report.EssentialsRatio) + " of income"},
		},
	}))

	fmt.Println(cli.RenderHorizontalBar("Score", float64(report.Score), 100, 40))
	fmt.Println()
	return nil
}
