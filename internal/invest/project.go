// Package invest projects investment growth with monthly compounding.
package invest

import (
	"math"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

// Project simulates years of monthly-compounded growth starting from
// initial, with a fixed contribution added at the end of each month.
// annualReturn and inflation are percentages; RealBalance discounts each
// year-end balance by cumulative inflation.
func Project(initial, monthly, annualReturn, inflation float64, years int) model.Projection {
	p := model.Projection{
		Initial:       initial,
		Monthly:       monthly,
		AnnualReturn:  annualReturn,
		InflationRate: inflation,
	}
	if years <= 0 {
		p.FinalBalance = initial
		p.TotalContributed = initial
		return p
	}

	monthlyRate := annualReturn / 100 / 12
	balance := initial
	contributed := initial
	p.Years = make([]model.ProjectionYear, 0, years)

	for year := 1; year <= years; year++ {
		for m := 0; m < 12; m++ {
			balance *= 1 + monthlyRate
			balance += monthly
			contributed += monthly
		}

		deflator := math.Pow(1+inflation/100, float64(year))
		p.Years = append(p.Years, model.ProjectionYear{
			Year:        year,
			Balance:     balance,
			Contributed: contributed,
			Growth:      balance - contributed,
			RealBalance: balance / deflator,
		})
	}

	last := p.Years[len(p.Years)-1]
	p.FinalBalance = last.Balance
	p.TotalContributed = last.Contributed
	p.TotalGrowth = last.Growth
	return p
}
