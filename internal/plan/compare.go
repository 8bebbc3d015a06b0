package plan

import "github.com/nwrenn27-sketch/finplan/internal/model"

// Compare runs both strategies over the same debts and reports which one
// pays less interest. Ties go to avalanche.
func Compare(debts []model.Debt, extra float64) model.StrategyComparison {
	av := Simulate(debts, extra, Avalanche)
	sn := Simulate(debts, extra, Snowball)

	cmp := model.StrategyComparison{
		Avalanche: av,
		Snowball:  sn,
	}
	if sn.TotalInterest < av.TotalInterest {
		cmp.Best = string(Snowball)
		cmp.InterestSaved = av.TotalInterest - sn.TotalInterest
		cmp.MonthsSaved = av.TotalMonths - sn.TotalMonths
	} else {
		cmp.Best = string(Avalanche)
		cmp.InterestSaved = sn.TotalInterest - av.TotalInterest
		cmp.MonthsSaved = sn.TotalMonths - av.TotalMonths
	}
	return cmp
}
