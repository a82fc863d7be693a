// Package engine aggregates per-type bracket calculations into a tax summary.
package engine

import (
	"errors"
	"fmt"

	"tax-engine/internal/bracket"
	"tax-engine/internal/schedule"
)

// TotalLabel is the label of the aggregate summary row.
const TotalLabel = "ALL"

// ErrInvalidInput marks input-validation failures. Use errors.Is to detect.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrNegativeIncome    = fmt.Errorf("%w: income cannot be negative", ErrInvalidInput)
	ErrNegativeDeduction = fmt.Errorf("%w: deduction cannot be negative", ErrInvalidInput)
)

// Row is one tax type's result. Tax is truncated to whole currency units
// (fractional cents dropped, not rounded); the rate fields stay fractional.
type Row struct {
	Tax           int64
	NominalRate   float64
	MarginalRate  float64
	EffectiveRate float64
}

// Summary maps tax-type labels (plus the aggregate TotalLabel row) to their
// results, preserving the schedule set's order. Produced fresh per call and
// never mutated afterward.
type Summary struct {
	Labels []string
	Rows   map[string]Row
}

// Summarize computes the tax breakdown for a single taxpayer.
//
// Taxable income is max(income - deduction, 0), computed once and shared by
// every schedule so all tax types see the same deduction effect. The
// TotalLabel row holds column-wise sums; its tax is the truncation of the
// untruncated per-type sum (summed rates have no tax-law meaning beyond
// being the sum of the individual rates).
func Summarize(income, deduction float64, set schedule.Set) (Summary, error) {
	if income < 0 {
		return Summary{}, ErrNegativeIncome
	}
	if deduction < 0 {
		return Summary{}, ErrNegativeDeduction
	}

	taxable := income - deduction
	if taxable < 0 {
		taxable = 0
	}

	summary := Summary{
		Labels: make([]string, 0, set.Len()+1),
		Rows:   make(map[string]Row, set.Len()+1),
	}

	var totalTax, totalNominal, totalMarginal, totalEffective float64
	for _, label := range set.Labels() {
		sched, _ := set.Get(label)
		tax, marginalRate := bracket.Compute(taxable, sched)

		var nominalRate float64
		if taxable > 0 {
			nominalRate = tax / taxable
		}
		var effectiveRate float64
		if income > 0 {
			effectiveRate = tax / income
		}

		summary.Labels = append(summary.Labels, label)
		summary.Rows[label] = Row{
			Tax:           int64(tax),
			NominalRate:   nominalRate,
			MarginalRate:  marginalRate,
			EffectiveRate: effectiveRate,
		}

		totalTax += tax
		totalNominal += nominalRate
		totalMarginal += marginalRate
		totalEffective += effectiveRate
	}

	summary.Labels = append(summary.Labels, TotalLabel)
	summary.Rows[TotalLabel] = Row{
		Tax:           int64(totalTax),
		NominalRate:   totalNominal,
		MarginalRate:  totalMarginal,
		EffectiveRate: totalEffective,
	}
	return summary, nil
}
