package store

import (
	"path/filepath"
	"testing"

	"github.com/nwrenn27-sketch/finplan/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "finplan.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDebtRoundTrip(t *testing.T) {
	s := openTestStore(t)

	debts := []model.Debt{
		{Name: "Card", Balance: 1200, AnnualRate: 24, MinPayment: 100},
		{Name: "Car", Balance: 9500, AnnualRate: 6.5, MinPayment: 275},
	}
	for _, d := range debts {
		if err := s.SaveDebt(d); err != nil {
			t.Fatalf("SaveDebt(%q): %v", d.Name, err)
		}
	}

	got, err := s.ListDebts()
	if err != nil {
		t.Fatalf("ListDebts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != debts[0] || got[1] != debts[1] {
		t.Errorf("ListDebts = %+v, want %+v", got, debts)
	}
}

func TestSaveDebt_UpsertsByName(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveDebt(model.Debt{Name: "Card", Balance: 1200, AnnualRate: 24, MinPayment: 100}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDebt(model.Debt{Name: "Card", Balance: 800, AnnualRate: 22, MinPayment: 90}); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListDebts()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 after upsert", len(got))
	}
	if got[0].Balance != 800 || got[0].AnnualRate != 22 {
		t.Errorf("upserted debt = %+v", got[0])
	}
}

func TestDeleteDebt(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveDebt(model.Debt{Name: "Card", Balance: 100, AnnualRate: 10, MinPayment: 10}); err != nil {
		t.Fatal(err)
	}

	ok, err := s.DeleteDebt("Card")
	if err != nil || !ok {
		t.Fatalf("DeleteDebt = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = s.DeleteDebt("Card")
	if err != nil || ok {
		t.Fatalf("second DeleteDebt = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestBudgetEntryRoundTrip(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveEntry(model.BudgetEntry{
		Name: "Salary", Category: "work", Kind: model.KindIncome, Amount: 5000,
	})
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}
	if _, err := s.SaveEntry(model.BudgetEntry{
		Name: "Rent", Category: "housing", Kind: model.KindExpense,
		Necessity: model.NecessityNeed, Amount: 1500,
	}); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	entries, err := s.ListEntries()
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Name != "Salary" || entries[0].Kind != model.KindIncome {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Necessity != model.NecessityNeed || entries[1].Amount != 1500 {
		t.Errorf("entries[1] = %+v", entries[1])
	}

	ok, err := s.DeleteEntry(entries[0].ID)
	if err != nil || !ok {
		t.Fatalf("DeleteEntry = (%v, %v), want (true, nil)", ok, err)
	}
	remaining, err := s.ListEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].Name != "Rent" {
		t.Errorf("remaining = %+v, want only Rent", remaining)
	}
}

func TestSaveEntry_RejectsBadKind(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveEntry(model.BudgetEntry{Name: "X", Kind: "windfall", Amount: 1}); err == nil {
		t.Error("want CHECK constraint error for unknown kind")
	}
}
