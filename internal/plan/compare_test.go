package plan

import (
	"testing"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

func TestCompare_AvalancheWinsOnInterest(t *testing.T) {
	debts := []model.Debt{
		{Name: "Card", Balance: 6000, AnnualRate: 26, MinPayment: 150},
		{Name: "Loan", Balance: 1000, AnnualRate: 5, MinPayment: 50},
	}

	cmp := Compare(debts, 250)

	if cmp.Best != string(Avalanche) {
		t.Errorf("Best = %q, want avalanche (high-rate debt dominates)", cmp.Best)
	}
	if cmp.InterestSaved < 0 {
		t.Errorf("InterestSaved = %.2f, want >= 0", cmp.InterestSaved)
	}
	if cmp.Snowball.TotalInterest < cmp.Avalanche.TotalInterest {
		t.Errorf("snowball interest %.2f < avalanche %.2f contradicts Best",
			cmp.Snowball.TotalInterest, cmp.Avalanche.TotalInterest)
	}
}

func TestCompare_IdenticalDebtsTieToAvalanche(t *testing.T) {
	debts := []model.Debt{{Name: "Only", Balance: 2000, AnnualRate: 10, MinPayment: 100}}

	cmp := Compare(debts, 0)
	if cmp.Best != string(Avalanche) {
		t.Errorf("Best = %q, want avalanche on tie", cmp.Best)
	}
	if cmp.InterestSaved != 0 || cmp.MonthsSaved != 0 {
		t.Errorf("savings = (%.2f, %d), want (0, 0) for a single debt",
			cmp.InterestSaved, cmp.MonthsSaved)
	}
}
