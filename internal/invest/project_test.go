package invest

import (
	"math"
	"testing"
)

func TestProject_LumpSumCompounds(t *testing.T) {
	p := Project(10000, 0, 7, 0, 10)

	// 10000 * (1 + 0.07/12)^120
	want := 10000 * math.Pow(1+0.07/12, 120)
	if math.Abs(p.FinalBalance-want) > 0.01 {
		t.Errorf("FinalBalance = %.2f, want %.2f", p.FinalBalance, want)
	}
	if p.TotalContributed != 10000 {
		t.Errorf("TotalContributed = %.2f, want 10000", p.TotalContributed)
	}
	if math.Abs(p.TotalGrowth-(want-10000)) > 0.01 {
		t.Errorf("TotalGrowth = %.2f, want %.2f", p.TotalGrowth, want-10000)
	}
	if len(p.Years) != 10 {
		t.Fatalf("len(Years) = %d, want 10", len(p.Years))
	}
}

func TestProject_ContributionsNoReturn(t *testing.T) {
	p := Project(0, 100, 0, 0, 1)
	if math.Abs(p.FinalBalance-1200) > 1e-9 {
		t.Errorf("FinalBalance = %.2f, want 1200 at 0%% return", p.FinalBalance)
	}
	if p.TotalGrowth != 0 {
		t.Errorf("TotalGrowth = %.2f, want 0", p.TotalGrowth)
	}
}

func TestProject_BalancesMonotonic(t *testing.T) {
	p := Project(5000, 250, 6, 0, 30)
	prev := 0.0
	for _, y := range p.Years {
		if y.Balance <= prev {
			t.Fatalf("year %d balance %.2f not increasing past %.2f", y.Year, y.Balance, prev)
		}
		prev = y.Balance
	}
}

func TestProject_InflationDiscountsRealBalance(t *testing.T) {
	p := Project(10000, 0, 7, 3, 10)
	last := p.Years[len(p.Years)-1]

	want := last.Balance / math.Pow(1.03, 10)
	if math.Abs(last.RealBalance-want) > 0.01 {
		t.Errorf("RealBalance = %.2f, want %.2f", last.RealBalance, want)
	}
	if last.RealBalance >= last.Balance {
		t.Errorf("RealBalance %.2f >= nominal %.2f with positive inflation", last.RealBalance, last.Balance)
	}
}

func TestProject_ZeroYears(t *testing.T) {
	p := Project(1234, 100, 7, 3, 0)
	if p.FinalBalance != 1234 || len(p.Years) != 0 {
		t.Errorf("zero-year projection = %+v, want initial only", p)
	}
}
