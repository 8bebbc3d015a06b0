package tax

import (
	"fmt"
	"math"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

// Estimate computes federal tax, FICA, and take-home for one year of
// gross W-2 income using the standard deduction. stateRate is a flat
// state income tax rate as a percentage (0 to skip).
func Estimate(grossIncome float64, year int, status string, stateRate float64) (model.TaxEstimate, error) {
	table, ok := yearTables[year]
	if !ok {
		return model.TaxEstimate{}, fmt.Errorf("unsupported tax year %d", year)
	}
	bands, ok := table.brackets[status]
	if !ok {
		return model.TaxEstimate{}, fmt.Errorf("unknown filing status %q", status)
	}

	est := model.TaxEstimate{
		Year:              year,
		FilingStatus:      status,
		GrossIncome:       grossIncome,
		StandardDeduction: table.deduction[status],
	}

	est.TaxableIncome = math.Max(0, grossIncome-est.StandardDeduction)
	est.FederalTax, est.MarginalRate = taxOnIncome(est.TaxableIncome, bands)

	// FICA applies to gross wages, not taxable income.
	est.SocialSecurity = ssRate * math.Min(math.Max(0, grossIncome), table.ssWageBase)
	est.Medicare = medicareRate * math.Max(0, grossIncome)
	if over := grossIncome - table.medicareThreshold[status]; over > 0 {
		est.Medicare += additionalMedicareRate * over
	}

	if stateRate > 0 {
		est.StateTax = est.TaxableIncome * stateRate / 100
	}

	est.TotalTax = est.FederalTax + est.SocialSecurity + est.Medicare + est.StateTax
	if grossIncome > 0 {
		est.EffectiveRate = est.TotalTax / grossIncome
	}
	est.TakeHome = grossIncome - est.TotalTax
	est.MonthlyTakeHome = est.TakeHome / 12

	return est, nil
}

// taxOnIncome walks the progressive bands, returning the total tax and
// the marginal rate of the top band reached.
func taxOnIncome(income float64, bands []Bracket) (tax, marginal float64) {
	if income <= 0 {
		return 0, 0
	}
	for _, band := range bands {
		if income <= band.Lower {
			break
		}
		taxable := math.Min(income, band.Upper) - band.Lower
		if taxable > 0 {
			tax += taxable * band.Rate
			marginal = band.Rate
		}
	}
	return tax, marginal
}
