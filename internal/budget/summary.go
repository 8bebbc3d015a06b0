// Package budget aggregates monthly budget entries and scores financial health.
package budget

import "github.com/nwrenn27-sketch/finplan/internal/model"

// Summarize aggregates entries into monthly totals and the actual
// needs/wants/savings split versus the 50/30/20 rule. Income left over
// after all expenses counts toward savings.
func Summarize(entries []model.BudgetEntry) model.BudgetSummary {
	var s model.BudgetSummary

	for _, e := range entries {
		switch e.Kind {
		case model.KindIncome:
			s.TotalIncome += e.Amount
		case model.KindExpense:
			s.TotalExpenses += e.Amount
			switch e.Necessity {
			case model.NecessitySavings:
				s.Savings += e.Amount
			case model.NecessityWant:
				s.Wants += e.Amount
			default:
				s.Needs += e.Amount
			}
		}
	}

	s.Net = s.TotalIncome - s.TotalExpenses
	if s.Net > 0 {
		s.Savings += s.Net
	}
	if s.TotalIncome > 0 {
		s.SavingsRate = s.Savings / s.TotalIncome
	}

	s.TargetNeeds = s.TotalIncome * 0.50
	s.TargetWants = s.TotalIncome * 0.30
	s.TargetSavings = s.TotalIncome * 0.20

	return s
}
