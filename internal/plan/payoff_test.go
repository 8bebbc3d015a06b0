package plan

import (
	"math"
	"testing"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

func card() model.Debt {
	return model.Debt{Name: "Card", Balance: 1200, AnnualRate: 24, MinPayment: 100}
}

// closedFormMonths is the standard amortization month count for a single
// debt: n = -ln(1 - rB/P) / ln(1+r), rounded up.
func closedFormMonths(balance, annualRate, payment float64) int {
	r := annualRate / 100 / 12
	return int(math.Ceil(-math.Log(1-r*balance/payment) / math.Log(1+r)))
}

func TestSimulate_SingleDebtMatchesClosedForm(t *testing.T) {
	result := Simulate([]model.Debt{card()}, 0, Avalanche)

	want := closedFormMonths(1200, 24, 100) // 14
	if diff := result.TotalMonths - want; diff < -1 || diff > 1 {
		t.Errorf("TotalMonths = %d, want %d ±1", result.TotalMonths, want)
	}
	if !result.Converged {
		t.Error("Converged = false, want true")
	}
	if len(result.Timeline) != 1 || result.Timeline[0].Debt != "Card" {
		t.Fatalf("Timeline = %+v, want single Card event", result.Timeline)
	}
	if result.Timeline[0].Month != result.TotalMonths {
		t.Errorf("payoff month = %d, want %d", result.Timeline[0].Month, result.TotalMonths)
	}

	// Month-by-month accrual at 2%/month: ≈185.98 of interest.
	if math.Abs(result.TotalInterest-185.98) > 0.05 {
		t.Errorf("TotalInterest = %.2f, want ≈185.98", result.TotalInterest)
	}
}

func TestSimulate_PaidEqualsInterestPlusPrincipal(t *testing.T) {
	debts := []model.Debt{
		{Name: "Card", Balance: 4200, AnnualRate: 22.9, MinPayment: 120},
		{Name: "Car", Balance: 11500, AnnualRate: 6.4, MinPayment: 310},
		{Name: "Personal", Balance: 2600, AnnualRate: 11.5, MinPayment: 85},
	}

	for _, strategy := range []Strategy{Avalanche, Snowball} {
		result := Simulate(debts, 150, strategy)
		if !result.Converged {
			t.Fatalf("%s: did not converge in %d months", strategy, result.TotalMonths)
		}

		principal := 4200.0 + 11500 + 2600
		want := result.TotalInterest + principal
		if math.Abs(result.TotalPaid-want) > 1e-6 {
			t.Errorf("%s: TotalPaid = %.6f, want TotalInterest+principal = %.6f",
				strategy, result.TotalPaid, want)
		}
		if len(result.Timeline) != 3 {
			t.Errorf("%s: Timeline has %d events, want 3", strategy, len(result.Timeline))
		}
	}
}

func TestSimulate_AvalanchePrioritizesHighestRate(t *testing.T) {
	debts := []model.Debt{
		{Name: "LowRate", Balance: 1000, AnnualRate: 12, MinPayment: 25},
		{Name: "HighRate", Balance: 1000, AnnualRate: 24, MinPayment: 25},
	}

	result := Simulate(debts, 300, Avalanche)
	if len(result.Timeline) == 0 {
		t.Fatal("empty timeline")
	}
	if result.Timeline[0].Debt != "HighRate" {
		t.Errorf("first payoff = %q, want HighRate", result.Timeline[0].Debt)
	}
}

func TestSimulate_SnowballPrioritizesSmallestBalance(t *testing.T) {
	debts := []model.Debt{
		{Name: "Big", Balance: 5000, AnnualRate: 24, MinPayment: 100},
		{Name: "Small", Balance: 600, AnnualRate: 6, MinPayment: 20},
	}

	result := Simulate(debts, 300, Snowball)
	if len(result.Timeline) == 0 {
		t.Fatal("empty timeline")
	}
	if result.Timeline[0].Debt != "Small" {
		t.Errorf("first payoff = %q, want Small", result.Timeline[0].Debt)
	}
}

func TestSimulate_LargeExtraPaysOffInOneMonth(t *testing.T) {
	result := Simulate([]model.Debt{card()}, 5000, Avalanche)
	if result.TotalMonths != 1 {
		t.Errorf("TotalMonths = %d, want 1", result.TotalMonths)
	}
	// Payment is clamped to balance + first month's interest.
	if math.Abs(result.TotalPaid-1224) > 1e-9 {
		t.Errorf("TotalPaid = %.2f, want 1224.00", result.TotalPaid)
	}

	// Multi-debt: extra retires the top debt, minimums retire the rest.
	debts := []model.Debt{
		{Name: "A", Balance: 900, AnnualRate: 20, MinPayment: 10},
		{Name: "B", Balance: 40, AnnualRate: 10, MinPayment: 50},
	}
	result = Simulate(debts, 2000, Avalanche)
	if result.TotalMonths != 1 {
		t.Errorf("multi-debt TotalMonths = %d, want 1", result.TotalMonths)
	}
}

func TestSimulate_NonConvergenceHitsCap(t *testing.T) {
	// 30% APR on 10k accrues 250/month; a 50 minimum never amortizes.
	debts := []model.Debt{{Name: "Anchor", Balance: 10000, AnnualRate: 30, MinPayment: 50}}

	result := Simulate(debts, 0, Snowball)
	if result.TotalMonths != MaxMonths {
		t.Errorf("TotalMonths = %d, want %d", result.TotalMonths, MaxMonths)
	}
	if result.Converged {
		t.Error("Converged = true, want false")
	}
	if len(result.Timeline) != 0 {
		t.Errorf("Timeline = %+v, want empty", result.Timeline)
	}
	if len(result.Remaining) != 1 || result.Remaining[0].Name != "Anchor" {
		t.Fatalf("Remaining = %+v, want Anchor", result.Remaining)
	}
	if result.Remaining[0].Balance <= 10000 {
		t.Errorf("capped balance = %.2f, want > 10000 (interest outpaces payment)",
			result.Remaining[0].Balance)
	}
}

func TestSimulate_DoesNotMutateInput(t *testing.T) {
	debts := []model.Debt{
		{Name: "A", Balance: 3000, AnnualRate: 18, MinPayment: 90},
		{Name: "B", Balance: 1500, AnnualRate: 9, MinPayment: 45},
	}

	Simulate(debts, 200, Snowball)

	if debts[0].Name != "A" || debts[0].Balance != 3000 {
		t.Errorf("input mutated: %+v", debts[0])
	}
	if debts[1].Name != "B" || debts[1].Balance != 1500 {
		t.Errorf("input mutated: %+v", debts[1])
	}
}

func TestSimulate_MonthlySavings(t *testing.T) {
	if got := Simulate([]model.Debt{card()}, 0, Avalanche).MonthlySavings; got != 0 {
		t.Errorf("MonthlySavings = %.2f with no extra, want 0", got)
	}
	if got := Simulate([]model.Debt{card()}, 75, Avalanche).MonthlySavings; got != 75 {
		t.Errorf("MonthlySavings = %.2f, want 75", got)
	}
}

func TestSimulate_EmptyDebts(t *testing.T) {
	result := Simulate(nil, 100, Avalanche)
	if result.TotalMonths != 0 || result.TotalPaid != 0 || !result.Converged {
		t.Errorf("empty input: %+v, want zero-month converged plan", result)
	}
}

func TestSimulate_StableTieOrder(t *testing.T) {
	// Equal rates: avalanche must keep input order for ties.
	debts := []model.Debt{
		{Name: "First", Balance: 800, AnnualRate: 15, MinPayment: 40},
		{Name: "Second", Balance: 800, AnnualRate: 15, MinPayment: 40},
	}

	result := Simulate(debts, 500, Avalanche)
	if result.Timeline[0].Debt != "First" {
		t.Errorf("first payoff = %q, want First (stable tie)", result.Timeline[0].Debt)
	}
}
