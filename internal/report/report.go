// Package report holds the derived after-tax metrics and display formatting
// shared by the CLI and the HTTP response.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TakeHomeRate is the share of gross income left after the pre-tax 401(k)
// contribution and all taxes. Returns 0 for non-positive income.
func TakeHomeRate(income, contribution, totalTax float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - contribution - totalTax) / income
}

// MonthlyPostTax applies the take-home rate to an annual amount and divides
// into twelve months.
func MonthlyPostTax(annual, rate float64) float64 {
	return annual * rate / 12
}

// Dollars formats an amount as a dollar string with thousands separators,
// rounded to whole dollars: Dollars(2161.5) == "$2,162".
func Dollars(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Percent formats a fractional rate with two decimals: Percent(0.1234) == "12.34%".
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
