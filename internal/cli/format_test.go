package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{42.5, "$42.50"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-20, "-$20.00"},
		{0.005, "$0.01"}, // rounds half up at the cent
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42.5, "$42.50"},
		{9999.99, "$9,999.99"},
		{10000, "$10,000"},
		{1234567.89, "$1,234,568"},
	}
	for _, tt := range tests {
		if got := FormatMoneyCompact(tt.in); got != tt.want {
			t.Errorf("FormatMoneyCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0mo"},
		{7, "7mo"},
		{12, "1y"},
		{14, "1y 2m"},
		{600, "50y"},
	}
	for _, tt := range tests {
		if got := FormatMonths(tt.in); got != tt.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100); got != "+$50.00" {
		t.Errorf("FormatDelta = %q, want +$50.00", got)
	}
	if got := FormatDelta(100, 150); got != "-$50.00" {
		t.Errorf("FormatDelta = %q, want -$50.00", got)
	}
}
