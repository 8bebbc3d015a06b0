package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagStrategy string
	flagExtra    float64
	flagDebts    []string
	flagCompare  bool
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Simulate debt payoff with avalanche or snowball",
	Long: `Simulate month-by-month debt payoff using saved debts, or ad-hoc debts
passed with --debt name:balance:rate:minpayment (repeatable).`,
	RunE: runPayoff,
}

func init() {
	payoffCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Payoff strategy: avalanche or snowball (default from config)")
	payoffCmd.Flags().Float64VarP(&flagExtra, "extra", "e", -1, "Extra monthly payment toward the top-priority debt")
	payoffCmd.Flags().StringArrayVar(&flagDebts, "debt", nil, "Ad-hoc debt as name:balance:rate:minpayment")
	payoffCmd.Flags().BoolVarP(&flagCompare, "compare", "c", false, "Run both strategies and compare")
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	debts, err := resolveDebts()
	if err != nil {
		return err
	}
	if len(debts) == 0 {
		fmt.Println("\n  No debts found. Add some with `finplan debts add` or pass --debt.")
		return nil
	}

	extra := flagExtra
	if extra < 0 {
		extra = cfg.General.ExtraPayment
	}

	if flagCompare {
		cmp := plan.Compare(debts, extra)
		if flagJSON {
			return printJSON(cmp)
		}
		renderComparison(cmp)
		return nil
	}

	strategy, err := resolveStrategy(cfg.General.DefaultStrategy)
	if err != nil {
		return err
	}

	result := plan.Simulate(debts, extra, strategy)
	if flagJSON {
		return printJSON(result)
	}
	renderPlan(result, extra)
	return nil
}

// resolveDebts returns the ad-hoc --debt specs when given, otherwise the
// saved debts from the store.
func resolveDebts() ([]model.Debt, error) {
	if len(flagDebts) == 0 {
		return loadDebts()
	}

	debts := make([]model.Debt, 0, len(flagDebts))
	for _, spec := range flagDebts {
		d, err := parseDebtSpec(spec)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, nil
}

// parseDebtSpec parses "name:balance:rate:minpayment".
func parseDebtSpec(spec string) (model.Debt, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return model.Debt{}, fmt.Errorf("invalid debt spec %q, want name:balance:rate:minpayment", spec)
	}

	d := model.Debt{Name: strings.TrimSpace(parts[0])}
	if d.Name == "" {
		return model.Debt{}, fmt.Errorf("invalid debt spec %q: empty name", spec)
	}

	fields := []struct {
		dst   *float64
		label string
	}{
		{&d.Balance, "balance"},
		{&d.AnnualRate, "rate"},
		{&d.MinPayment, "minpayment"},
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil || v < 0 {
			return model.Debt{}, fmt.Errorf("invalid %s in debt spec %q", f.label, spec)
		}
		*f.dst = v
	}
	return d, nil
}

func resolveStrategy(fallback string) (plan.Strategy, error) {
	name := flagStrategy
	if name == "" {
		name = fallback
	}
	switch name {
	case "", string(plan.Avalanche):
		return plan.Avalanche, nil
	case string(plan.Snowball):
		return plan.Snowball, nil
	default:
		return "", fmt.Errorf("unknown strategy %q, want avalanche or snowball", name)
	}
}

func renderPlan(p model.PayoffPlan, extra float64) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF PLAN  %s", strings.ToUpper(p.Strategy))))
	fmt.Println()

	rows := [][]string{
		{"Time to debt-free", cli.FormatMonths(p.TotalMonths)},
		{"Total paid", cli.FormatMoney(p.TotalPaid)},
		{"Total interest", cli.FormatMoney(p.TotalInterest)},
	}
	if extra > 0 {
		rows = append(rows, []string{"Extra payment", cli.FormatMoney(extra) + "/mo"})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Summary", ""},
		Rows:    rows,
	}))

	if len(p.Timeline) > 0 {
		timelineRows := make([][]string, 0, len(p.Timeline))
		for _, ev := range p.Timeline {
			timelineRows = append(timelineRows, []string{ev.Debt, fmt.Sprintf("month %d", ev.Month)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Paid Off",
			Headers: []string{"Debt", "When"},
			Rows:    timelineRows,
		}))
	}

	renderNonConvergence(p)
	fmt.Println()
}

func renderComparison(cmp model.StrategyComparison) {
	fmt.Println()
	fmt.Println(cli.RenderTitle("AVALANCHE vs SNOWBALL"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Strategy", "Months", "Interest", "Total Paid"},
		Rows: [][]string{
			{"Avalanche", cli.FormatMonths(cmp.Avalanche.TotalMonths), cli.FormatMoney(cmp.Avalanche.TotalInterest), cli.FormatMoney(cmp.Avalanche.TotalPaid)},
			{"Snowball", cli.FormatMonths(cmp.Snowball.TotalMonths), cli.FormatMoney(cmp.Snowball.TotalInterest), cli.FormatMoney(cmp.Snowball.TotalPaid)},
		},
	}))

	if cmp.InterestSaved > 0.005 {
		fmt.Printf("  Best: %s, saving %s in interest", cmp.Best, cli.FormatMoney(cmp.InterestSaved))
		if cmp.MonthsSaved > 0 {
			fmt.Printf(" and %s", cli.FormatMonths(cmp.MonthsSaved))
		}
		fmt.Println()
	} else {
		fmt.Println("  Both strategies cost the same here.")
	}

	renderNonConvergence(cmp.Avalanche)
	renderNonConvergence(cmp.Snowball)
	fmt.Println()
}

// renderNonConvergence warns when the 50-year cap was hit with debts
// still carrying a balance.
func renderNonConvergence(p model.PayoffPlan) {
	if p.Converged {
		return
	}
	fmt.Printf("\n  WARNING (%s): not paid off within %s.\n", p.Strategy, cli.FormatMonths(plan.MaxMonths))
	for _, d := range p.Remaining {
		fmt.Printf("    %s still owes %s", d.Name, cli.FormatMoneyCompact(d.Balance))
		if d.MinPayment <= d.MonthlyInterest() {
			fmt.Printf(" (min payment %s doesn't cover monthly interest %s)",
				cli.FormatMoney(d.MinPayment), cli.FormatMoney(d.MonthlyInterest()))
		}
		fmt.Println()
	}
}
