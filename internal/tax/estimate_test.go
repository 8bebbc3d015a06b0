package tax

import (
	"math"
	"testing"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.2f, want %.2f", name, got, want)
	}
}

func TestEstimate_Single2025(t *testing.T) {
	est, err := Estimate(85000, 2025, StatusSingle, 0)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	approx(t, "TaxableIncome", est.TaxableIncome, 70000, 0.01)
	// 11,925 @ 10% + 36,550 @ 12% + 21,525 @ 22%
	approx(t, "FederalTax", est.FederalTax, 10314.00, 0.01)
	if est.MarginalRate != 0.22 {
		t.Errorf("MarginalRate = %.2f, want 0.22", est.MarginalRate)
	}
	approx(t, "SocialSecurity", est.SocialSecurity, 5270.00, 0.01)
	approx(t, "Medicare", est.Medicare, 1232.50, 0.01)
	approx(t, "TakeHome", est.TakeHome, 85000-10314-5270-1232.50, 0.01)
	if est.EffectiveRate <= 0 || est.EffectiveRate >= est.MarginalRate+0.10 {
		t.Errorf("EffectiveRate = %.4f out of plausible range", est.EffectiveRate)
	}
}

func TestEstimate_IncomeBelowDeduction(t *testing.T) {
	est, err := Estimate(9000, 2025, StatusSingle, 0)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.TaxableIncome != 0 || est.FederalTax != 0 {
		t.Errorf("taxable=%.2f federal=%.2f, want both 0 below the standard deduction",
			est.TaxableIncome, est.FederalTax)
	}
	// FICA still applies from the first dollar.
	approx(t, "SocialSecurity", est.SocialSecurity, 9000*0.062, 0.01)
}

func TestEstimate_SocialSecurityWageBaseCap(t *testing.T) {
	est, err := Estimate(300000, 2025, StatusSingle, 0)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	approx(t, "SocialSecurity", est.SocialSecurity, 176100*0.062, 0.01)
	// Additional Medicare on the 100k over 200k.
	approx(t, "Medicare", est.Medicare, 300000*0.0145+100000*0.009, 0.01)
}

func TestEstimate_MarriedBracketsWider(t *testing.T) {
	single, err := Estimate(120000, 2025, StatusSingle, 0)
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	married, err := Estimate(120000, 2025, StatusMarriedJoint, 0)
	if err != nil {
		t.Fatalf("married: %v", err)
	}
	if married.FederalTax >= single.FederalTax {
		t.Errorf("married federal %.2f >= single %.2f, want lower", married.FederalTax, single.FederalTax)
	}
}

func TestEstimate_StateFlatRate(t *testing.T) {
	est, err := Estimate(85000, 2025, StatusSingle, 5)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	approx(t, "StateTax", est.StateTax, 70000*0.05, 0.01)
}

func TestEstimate_Errors(t *testing.T) {
	if _, err := Estimate(50000, 1999, StatusSingle, 0); err == nil {
		t.Error("want error for unsupported year")
	}
	if _, err := Estimate(50000, 2025, "quadruple", 0); err == nil {
		t.Error("want error for unknown filing status")
	}
}

func TestTaxOnIncome_TopBracket(t *testing.T) {
	bands := yearTables[2025].brackets[StatusSingle]
	tax, marginal := taxOnIncome(1_000_000, bands)
	if marginal != 0.37 {
		t.Errorf("marginal = %.2f, want 0.37", marginal)
	}
	if tax <= 0.30*1_000_000 || tax >= 0.37*1_000_000 {
		t.Errorf("tax = %.2f outside progressive bounds", tax)
	}
}
