package cmd

import (
	"fmt"
	"strconv"

	"github.com/nwrenn27-sketch/finplan/internal/budget"
	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagEntryAmount    float64
	flagEntryKind      string
	flagEntryCategory  string
	flagEntryNecessity string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Monthly budget with a 50/30/20 breakdown",
	RunE:  runBudgetSummary,
}

var budgetAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an income or expense line",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetAdd,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budget entries",
	RunE:  runBudgetList,
}

var budgetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a budget entry by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRm,
}

func init() {
	budgetAddCmd.Flags().Float64VarP(&flagEntryAmount, "amount", "a", 0, "Monthly amount in dollars")
	budgetAddCmd.Flags().StringVarP(&flagEntryKind, "kind", "k", model.KindExpense, "Entry kind: income or expense")
	budgetAddCmd.Flags().StringVarP(&flagEntryCategory, "category", "c", "", "Free-form category label")
	budgetAddCmd.Flags().StringVar(&flagEntryNecessity, "necessity", model.NecessityNeed, "Expense class: need, want, or savings")
	_ = budgetAddCmd.MarkFlagRequired("amount")

	budgetCmd.AddCommand(budgetAddCmd, budgetListCmd, budgetRmCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetAdd(_ *cobra.Command, args []string) error {
	if flagEntryAmount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	if flagEntryKind != model.KindIncome && flagEntryKind != model.KindExpense {
		return fmt.Errorf("kind must be income or expense, got %q", flagEntryKind)
	}
	switch flagEntryNecessity {
	case model.NecessityNeed, model.NecessityWant, model.NecessitySavings:
	default:
		return fmt.Errorf("necessity must be need, want, or savings, got %q", flagEntryNecessity)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	e := model.BudgetEntry{
		Name:     args[0],
		Category: flagEntryCategory,
		Kind:     flagEntryKind,
		Amount:   flagEntryAmount,
	}
	if e.Kind == model.KindExpense {
		e.Necessity = flagEntryNecessity
	}

	id, err := s.SaveEntry(e)
	if err != nil {
		return err
	}
	fmt.Printf("  Added #%d %s (%s): %s/mo\n", id, e.Name, e.Kind, cli.FormatMoney(e.Amount))
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No budget entries. Add one with `finplan budget add`.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		class := e.Necessity
		if e.Kind == model.KindIncome {
			class = "-"
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10), e.Name, e.Kind, class, cli.FormatMoney(e.Amount),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget Entries",
		Headers: []string{"ID", "Name", "Kind", "Class", "Monthly"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runBudgetRm(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry ID %q", args[0])
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.DeleteEntry(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no budget entry with ID %d", id)
	}
	fmt.Printf("  Removed entry #%d\n", id)
	return nil
}

func runBudgetSummary(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No budget entries. Add one with `finplan budget add`.")
		return nil
	}

	summary := budget.Summarize(entries)
	if flagJSON {
		return printJSON(summary)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Totals", ""},
		Rows: [][]string{
			{"Income", cli.FormatMoney(summary.TotalIncome)},
			{"Expenses", cli.FormatMoney(summary.TotalExpenses)},
			{"---"},
			{"Net", cli.FormatMoney(summary.Net)},
			{"Savings rate", cli.FormatPercent(summary.SavingsRate)},
		},
	}))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "50/30/20 Rule",
		Headers: []string{"Class", "Actual", "Target"},
		Rows: [][]string{
			{"Needs", cli.FormatMoney(summary.Needs), cli.FormatMoney(summary.TargetNeeds)},
			{"Wants", cli.FormatMoney(summary.Wants), cli.FormatMoney(summary.TargetWants)},
			{"Savings", cli.FormatMoney(summary.Savings), cli.FormatMoney(summary.TargetSavings)},
		},
	}))

	max := summary.TotalIncome
	if max > 0 {
		fmt.Println("  Spending")
		fmt.Println(cli.RenderHorizontalBar("Needs  ", summary.Needs, max, 30))
		fmt.Println(cli.RenderHorizontalBar("Wants  ", summary.Wants, max, 30))
		fmt.Println(cli.RenderHorizontalBar("Savings", summary.Savings, max, 30))
	}
	fmt.Println()
	return nil
}
