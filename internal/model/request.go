package model

// DefaultStandardDeduction is the 2025 standard deduction for a single filer,
// applied when a request does not override it.
const DefaultStandardDeduction = 15000

// CalculationRequest carries the taxpayer figures for one calculation.
// Gross income is given either directly (income) or as base + bonus; the
// deduction inputs are summed into a single deduction for the tax core.
type CalculationRequest struct {
	Income            *float64 `json:"income,omitempty"`
	Base              float64  `json:"base,omitempty"`
	Bonus             float64  `json:"bonus,omitempty"`
	Contribution401K  float64  `json:"contribution_401k,omitempty"`
	StandardDeduction *float64 `json:"standard_deduction,omitempty"`
	OtherDeduction    float64  `json:"other_deduction,omitempty"`
}

// GrossIncome resolves the single gross income figure: income when given,
// otherwise base + bonus.
func (r *CalculationRequest) GrossIncome() float64 {
	if r.Income != nil {
		return *r.Income
	}
	return r.Base + r.Bonus
}

// TotalDeduction sums the standard deduction, the pre-tax 401(k)
// contribution, and other deductions.
func (r *CalculationRequest) TotalDeduction() float64 {
	standard := float64(DefaultStandardDeduction)
	if r.StandardDeduction != nil {
		standard = *r.StandardDeduction
	}
	return standard + r.Contribution401K + r.OtherDeduction
}
