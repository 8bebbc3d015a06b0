// Package plan implements the debt payoff simulator.
package plan

import (
	"sort"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

// Strategy selects how the extra payment is prioritized.
type Strategy string

const (
	// Avalanche pays the highest interest rate first.
	Avalanche Strategy = "avalanche"
	// Snowball pays the smallest balance first.
	Snowball Strategy = "snowball"
)

// MaxMonths caps the simulation at 50 years. It is a non-convergence
// guard, not a financial rule: a minimum payment below monthly interest
// never amortizes.
const MaxMonths = 600

// Simulate runs a month-by-month amortization of debts under the given
// strategy. The input slice is never mutated; the simulation works on a
// copy. The extra payment is applied whole to the single highest-priority
// remaining debt each month, never split and never rolled over. Values
// accumulate as float64 with no mid-simulation rounding.
//
// Simulate performs no input validation: callers are responsible for
// non-negative amounts and non-empty names.
func Simulate(debts []model.Debt, extra float64, strategy Strategy) model.PayoffPlan {
	working := make([]model.Debt, len(debts))
	copy(working, debts)

	// Priority order is fixed up front from the initial balances/rates;
	// paid-off debts drop out but survivors keep their relative rank.
	switch strategy {
	case Snowball:
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].Balance < working[j].Balance
		})
	default:
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].AnnualRate > working[j].AnnualRate
		})
	}

	result := model.PayoffPlan{
		Strategy:  string(strategy),
		Converged: true,
	}
	if extra > 0 {
		result.MonthlySavings = extra
	}

	month := 0
	for len(working) > 0 && month < MaxMonths {
		month++

		remaining := working[:0]
		for i := range working {
			d := working[i]

			interest := d.MonthlyInterest()
			result.TotalInterest += interest

			// Minimums are paid on every debt; the extra goes only to
			// the current top-priority debt.
			payment := d.MinPayment
			if i == 0 {
				payment += extra
			}
			// Never pay past the balance plus this month's interest.
			if max := d.Balance + interest; payment > max {
				payment = max
			}

			result.TotalPaid += payment
			d.Balance -= payment - interest
			if d.Balance <= 0 {
				result.Timeline = append(result.Timeline, model.PayoffEvent{
					Month: month,
					Debt:  d.Name,
				})
				continue
			}
			remaining = append(remaining, d)
		}
		working = working[:len(remaining)]

		var total float64
		for _, d := range working {
			total += d.Balance
		}
		result.Balances = append(result.Balances, total)
	}

	result.TotalMonths = month
	if len(working) > 0 {
		result.Converged = false
		result.Remaining = append([]model.Debt(nil), working...)
	}
	return result
}
