package budget

import (
	"math"
	"testing"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

func sampleEntries() []model.BudgetEntry {
	return []model.BudgetEntry{
		{Name: "Salary", Kind: model.KindIncome, Amount: 5000},
		{Name: "Rent", Kind: model.KindExpense, Necessity: model.NecessityNeed, Amount: 1500},
		{Name: "Groceries", Kind: model.KindExpense, Necessity: model.NecessityNeed, Amount: 500},
		{Name: "Streaming", Kind: model.KindExpense, Necessity: model.NecessityWant, Amount: 100},
		{Name: "401k", Kind: model.KindExpense, Necessity: model.NecessitySavings, Amount: 400},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEntries())

	if s.TotalIncome != 5000 {
		t.Errorf("TotalIncome = %.2f, want 5000", s.TotalIncome)
	}
	if s.TotalExpenses != 2500 {
		t.Errorf("TotalExpenses = %.2f, want 2500", s.TotalExpenses)
	}
	if s.Net != 2500 {
		t.Errorf("Net = %.2f, want 2500", s.Net)
	}
	if s.Needs != 2000 || s.Wants != 100 {
		t.Errorf("Needs/Wants = %.2f/%.2f, want 2000/100", s.Needs, s.Wants)
	}
	// 400 explicit + 2500 leftover.
	if s.Savings != 2900 {
		t.Errorf("Savings = %.2f, want 2900", s.Savings)
	}
	if math.Abs(s.SavingsRate-0.58) > 1e-9 {
		t.Errorf("SavingsRate = %.4f, want 0.58", s.SavingsRate)
	}
	if s.TargetNeeds != 2500 || s.TargetWants != 1500 || s.TargetSavings != 1000 {
		t.Errorf("targets = %.0f/%.0f/%.0f, want 2500/1500/1000",
			s.TargetNeeds, s.TargetWants, s.TargetSavings)
	}
}

func TestSummarize_Overspent(t *testing.T) {
	entries := []model.BudgetEntry{
		{Name: "Salary", Kind: model.KindIncome, Amount: 3000},
		{Name: "Rent", Kind: model.KindExpense, Necessity: model.NecessityNeed, Amount: 3500},
	}
	s := Summarize(entries)
	if s.Net != -500 {
		t.Errorf("Net = %.2f, want -500", s.Net)
	}
	// A deficit adds nothing to savings.
	if s.Savings != 0 || s.SavingsRate != 0 {
		t.Errorf("Savings/rate = %.2f/%.4f, want 0/0", s.Savings, s.SavingsRate)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome != 0 || s.SavingsRate != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func TestHealthScore_Healthy(t *testing.T) {
	s := Summarize(sampleEntries())
	r := HealthScore(s, nil)

	// 58% savings rate (capped), no debt, 40% essentials: full marks.
	if r.Score != 100 {
		t.Errorf("Score = %d, want 100", r.Score)
	}
	if r.Grade != "A" {
		t.Errorf("Grade = %q, want A", r.Grade)
	}
}

func TestHealthScore_DebtLaden(t *testing.T) {
	s := Summarize(sampleEntries())
	debts := []model.Debt{
		{Name: "Card", Balance: 9000, AnnualRate: 24, MinPayment: 1000},
		{Name: "Car", Balance: 15000, AnnualRate: 7, MinPayment: 800},
	}
	r := HealthScore(s, debts)

	// DTI = 1800/5000 = 0.36, zero debt credit.
	if math.Abs(r.DebtToIncome-0.36) > 1e-9 {
		t.Errorf("DebtToIncome = %.4f, want 0.36", r.DebtToIncome)
	}
	if r.DebtScore != 0 {
		t.Errorf("DebtScore = %.2f, want 0 at max DTI", r.DebtScore)
	}
	if r.Score != 70 {
		t.Errorf("Score = %d, want 70 (40 savings + 0 debt + 30 essentials)", r.Score)
	}
	if r.Grade != "C" {
		t.Errorf("Grade = %q, want C", r.Grade)
	}
}

func TestHealthScore_NoIncome(t *testing.T) {
	r := HealthScore(model.BudgetSummary{}, []model.Debt{{Name: "Card", MinPayment: 50}})
	if r.DebtToIncome != 1 {
		t.Errorf("DebtToIncome = %.2f, want 1 when debts exist with no income", r.DebtToIncome)
	}
	if r.Grade != "F" && r.Grade != "D" {
		t.Errorf("Grade = %q, want failing grade with no income", r.Grade)
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"}, {90, "A"}, {89, "B"}, {75, "B"},
		{74, "C"}, {60, "C"}, {59, "D"}, {40, "D"}, {39, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := grade(tt.score); got != tt.want {
			t.Errorf("grade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
