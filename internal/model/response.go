package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages []CalculationMessage `json:"messages"`
	Summary  []SummaryRow         `json:"summary"`
	TakeHome *TakeHome            `json:"take_home,omitempty"`
}

// SummaryRow is one tax type's line in the breakdown, plus the aggregate
// "ALL" row. Tax is in whole currency units (fractional cents dropped);
// rates stay fractional.
type SummaryRow struct {
	TaxType       string  `json:"tax_type"`
	Tax           int64   `json:"tax"`
	NominalRate   float64 `json:"nominal_rate"`
	MarginalRate  float64 `json:"marginal_rate"`
	EffectiveRate float64 `json:"effective_rate"`
}

// TakeHome carries the derived after-tax figures: the take-home rate after
// 401(k) contribution and all taxes, and monthly post-tax amounts.
type TakeHome struct {
	Rate                float64  `json:"rate"`
	MonthlyPostTaxBase  *float64 `json:"monthly_post_tax_base,omitempty"`
	MonthlyPostTaxTotal float64  `json:"monthly_post_tax_total"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
