package cmd

import (
	"fmt"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDebtBalance float64
	flagDebtRate    float64
	flagDebtMin     float64
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Manage saved debts",
	RunE:  runDebtsList,
}

var debtsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsAdd,
}

var debtsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved debts",
	RunE:  runDebtsList,
}

var debtsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsRm,
}

func init() {
	debtsAddCmd.Flags().Float64VarP(&flagDebtBalance, "balance", "b", 0, "Current balance in dollars")
	debtsAddCmd.Flags().Float64VarP(&flagDebtRate, "rate", "r", 0, "Annual interest rate as a percentage")
	debtsAddCmd.Flags().Float64VarP(&flagDebtMin, "min", "m", 0, "Minimum monthly payment in dollars")
	_ = debtsAddCmd.MarkFlagRequired("balance")
	_ = debtsAddCmd.MarkFlagRequired("min")

	debtsCmd.AddCommand(debtsAddCmd, debtsListCmd, debtsRmCmd)
	rootCmd.AddCommand(debtsCmd)
}

func runDebtsAdd(_ *cobra.Command, args []string) error {
	if flagDebtBalance < 0 || flagDebtRate < 0 || flagDebtMin < 0 {
		return fmt.Errorf("balance, rate, and min payment must be non-negative")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d := model.Debt{
		Name:       args[0],
		Balance:    flagDebtBalance,
		AnnualRate: flagDebtRate,
		MinPayment: flagDebtMin,
	}
	if err := s.SaveDebt(d); err != nil {
		return err
	}

	fmt.Printf("  Saved %s: %s at %s, min %s/mo\n",
		d.Name, cli.FormatMoney(d.Balance), cli.FormatRate(d.AnnualRate), cli.FormatMoney(d.MinPayment))
	return nil
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	debts, err := loadDebts()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(debts)
	}
	if len(debts) == 0 {
		fmt.Println("\n  No debts saved. Add one with `finplan debts add`.")
		return nil
	}

	var totalBalance, totalMin float64
	rows := make([][]string, 0, len(debts)+2)
	for _, d := range debts {
		totalBalance += d.Balance
		totalMin += d.MinPayment
		rows = append(rows, []string{
			d.Name,
			cli.FormatMoney(d.Balance),
			cli.FormatRate(d.AnnualRate),
			cli.FormatMoney(d.MinPayment),
			cli.FormatMoney(d.MonthlyInterest()),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(totalBalance), "", cli.FormatMoney(totalMin), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debts",
		Headers: []string{"Name", "Balance", "APR", "Min/mo", "Interest/mo"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runDebtsRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ok, err := s.DeleteDebt(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no debt named %q", args[0])
	}
	fmt.Printf("  Removed %s\n", args[0])
	return nil
}
