// Package model defines domain types for finplan calculators.
package model

// Debt is one liability as entered by the user.
type Debt struct {
	Name       string
	Balance    float64 // current balance in dollars
	AnnualRate float64 // APR as a percentage, e.g. 24 for 24%
	MinPayment float64 // required monthly payment in dollars
}

// MonthlyInterest returns one month of interest accrual at the current balance.
func (d Debt) MonthlyInterest() float64 {
	return d.Balance * (d.AnnualRate / 100) / 12
}

// PayoffEvent records the month a debt reached zero.
type PayoffEvent struct {
	Month int    `json:"month"`
	Debt  string `json:"debt"`
}

// PayoffPlan is the result of one payoff simulation.
type PayoffPlan struct {
	Strategy       string        `json:"strategy"`
	TotalMonths    int           `json:"total_months"`
	TotalPaid      float64       `json:"total_paid"`
	TotalInterest  float64       `json:"total_interest"`
	MonthlySavings float64       `json:"monthly_savings"` // the extra payment when > 0, informational
	Timeline       []PayoffEvent `json:"timeline"`

	// Balances holds the total remaining balance at the end of each
	// simulated month, for charting.
	Balances []float64 `json:"balances,omitempty"`

	// Converged is false when the 600-month cap was hit with debts still
	// open; Remaining holds those debts at their capped balances.
	Converged bool   `json:"converged"`
	Remaining []Debt `json:"remaining,omitempty"`
}

// StrategyComparison holds both plans plus what the cheaper one saves.
type StrategyComparison struct {
	Avalanche     PayoffPlan `json:"avalanche"`
	Snowball      PayoffPlan `json:"snowball"`
	Best          string     `json:"best"`
	InterestSaved float64    `json:"interest_saved"`
	MonthsSaved   int        `json:"months_saved"`
}
