// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount with comma grouping and cents.
// e.g., 1234.5 -> "$1,234.50", -20 -> "-$20.00"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}

	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("$%s.%02d", FormatNumber(cents/100), cents%100)
}

// FormatMoneyCompact drops the cents for large amounts.
// e.g., 1234567.89 -> "$1,234,568", 42.5 -> "$42.50"
func FormatMoneyCompact(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyCompact(-amount)
	}
	if amount >= 10_000 {
		return "$" + FormatNumber(int64(math.Round(amount)))
	}
	return FormatMoney(amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an annual percentage rate (already in percent units).
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// FormatMonths formats a month count as years and months.
// e.g., 14 -> "1y 2m", 7 -> "7mo", 24 -> "2y"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0mo"
	}
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%dmo", rem)
	case rem == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rem)
	}
}

// FormatDelta formats a signed money delta.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}
