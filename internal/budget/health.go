package budget

import (
	"math"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

// Score weights and targets. Savings rate earns full credit at 20%,
// debt-to-income at or below 0% and zero credit at 36%+, essentials at
// or below 50% of income with zero credit at 100%.
const (
	savingsWeight    = 40.0
	debtWeight       = 30.0
	essentialsWeight = 30.0

	targetSavingsRate = 0.20
	maxHealthyDTI     = 0.36
	targetNeedsRatio  = 0.50
)

// HealthScore computes the weighted 0-100 financial health score from a
// budget summary and the stored debts' minimum payments.
func HealthScore(summary model.BudgetSummary, debts []model.Debt) model.HealthReport {
	var minPayments float64
	for _, d := range debts {
		minPayments += d.MinPayment
	}

	r := model.HealthReport{SavingsRate: summary.SavingsRate}
	if summary.TotalIncome > 0 {
		r.DebtToIncome = minPayments / summary.TotalIncome
		r.EssentialsRatio = summary.Needs / summary.TotalIncome
	} else if minPayments > 0 {
		r.DebtToIncome = 1
	}

	r.SavingsRateScore = clamp01(r.SavingsRate/targetSavingsRate) * savingsWeight
	r.DebtScore = (1 - clamp01(r.DebtToIncome/maxHealthyDTI)) * debtWeight
	r.EssentialsScore = (1 - clamp01((r.EssentialsRatio-targetNeedsRatio)/(1-targetNeedsRatio))) * essentialsWeight

	r.Score = int(math.Round(r.SavingsRateScore + r.DebtScore + r.EssentialsScore))
	r.Grade = grade(r.Score)
	return r
}

func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
