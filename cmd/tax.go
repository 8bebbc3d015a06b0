package cmd

import (
	"fmt"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/cli"
	"github.com/nwrenn27-sketch/finplan/internal/tax"

	"github.com/spf13/cobra"
)

var (
	flagTaxIncome    float64
	flagTaxYear      int
	flagTaxStatus    string
	flagTaxStateRate float64
)

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Estimate federal income tax, FICA, and take-home pay",
	RunE:  runTax,
}

func init() {
	taxCmd.Flags().Float64VarP(&flagTaxIncome, "income", "i", 0, "Gross annual income in dollars")
	taxCmd.Flags().IntVarP(&flagTaxYear, "year", "y", 0, "Tax year (default from config)")
	taxCmd.Flags().StringVarP(&flagTaxStatus, "status", "s", "", "Filing status: "+strings.Join(tax.Statuses(), ", "))
	taxCmd.Flags().Float64Var(&flagTaxStateRate, "state-rate", -1, "Flat state tax rate as a percentage")
	_ = taxCmd.MarkFlagRequired("income")
	rootCmd.AddCommand(taxCmd)
}

func runTax(_ *cobra.Command, _ []string) error {
	if flagTaxIncome < 0 {
		return fmt.Errorf("income must be non-negative")
	}

	cfg := loadConfig()
	year := flagTaxYear
	if year == 0 {
		year = cfg.Tax.Year
	}
	status := flagTaxStatus
	if status == "" {
		status = cfg.Tax.FilingStatus
	}
	stateRate := flagTaxStateRate
	if stateRate < 0 {
		stateRate = cfg.Tax.StateRate
	}

	est, err := tax.Estimate(flagTaxIncome, year, status, stateRate)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(est)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TAX ESTIMATE  %d %s", est.Year, est.FilingStatus)))
	fmt.Println()

	rows := [][]string{
		{"Gross income", cli.FormatMoney(est.GrossIncome)},
		{"Standard deduction", cli.FormatMoney(est.StandardDeduction)},
		{"Taxable income", cli.FormatMoney(est.TaxableIncome)},
		{"---"},
		{"Federal tax", cli.FormatMoney(est.FederalTax)},
		{"Social Security", cli.FormatMoney(est.SocialSecurity)},
		{"Medicare", cli.FormatMoney(est.Medicare)},
	}
	if est.StateTax > 0 {
		rows = append(rows, []string{"State tax", cli.FormatMoney(est.StateTax)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total tax", cli.FormatMoney(est.TotalTax)},
		[]string{"Take-home", cli.FormatMoney(est.TakeHome)},
		[]string{"Monthly take-home", cli.FormatMoney(est.MonthlyTakeHome)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Line", "Amount"},
		Rows:    rows,
	}))

	fmt.Printf("  Effective rate: %s   Marginal rate: %s\n\n",
		cli.FormatPercent(est.EffectiveRate), cli.FormatPercent(est.MarginalRate))
	return nil
}
