package model

// Entry kinds.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Expense necessity classes for the 50/30/20 split.
const (
	NecessityNeed    = "need"
	NecessitySavings = "savings"
	NecessityWant    = "want"
)

// BudgetEntry is one monthly income or expense line.
type BudgetEntry struct {
	ID        int64
	Name      string
	Category  string
	Kind      string // KindIncome or KindExpense
	Necessity string // need/want/savings; empty for income
	Amount    float64
}

// BudgetSummary aggregates one month of budget entries.
type BudgetSummary struct {
	TotalIncome   float64
	TotalExpenses float64
	Net           float64 // income - expenses
	SavingsRate   float64 // 0-1; (net + savings entries) / income

	// Actual monthly spend per necessity class. Leftover income counts
	// toward Savings for the rule comparison.
	Needs   float64
	Wants   float64
	Savings float64

	// 50/30/20 targets derived from TotalIncome.
	TargetNeeds   float64
	TargetWants   float64
	TargetSavings float64
}

// HealthReport is the weighted financial health score.
type HealthReport struct {
	Score int // 0-100
	Grade string

	SavingsRateScore float64 // out of 40
	DebtScore        float64 // out of 30
	EssentialsScore  float64 // out of 30

	SavingsRate     float64 // 0-1
	DebtToIncome    float64 // monthly minimum payments / monthly income
	EssentialsRatio float64 // needs / income
}
