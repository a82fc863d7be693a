package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tax-engine/internal/model"
	"tax-engine/internal/report"
	"tax-engine/internal/schedule"
)

// Process runs one calculation request end to end: resolves income and
// deduction, summarizes, and wraps the result in the calculation envelope
// with metadata. Input-validation failures become CRITICAL messages and a
// FAILURE outcome rather than an error.
func Process(req *model.CalculationRequest, set schedule.Set) *model.CalculationResponse {
	start := time.Now()

	income := req.GrossIncome()
	deduction := req.TotalDeduction()

	messages := []model.CalculationMessage{}
	rows := []model.SummaryRow{}
	var takeHome *model.TakeHome
	outcome := model.OutcomeSuccess

	summary, err := Summarize(income, deduction, set)
	if err != nil {
		outcome = model.OutcomeFailure
		messages = append(messages, model.CalculationMessage{
			ID:      0,
			Level:   model.LevelCritical,
			Code:    messageCode(err),
			Message: err.Error(),
		})
	} else {
		for _, label := range summary.Labels {
			row := summary.Rows[label]
			rows = append(rows, model.SummaryRow{
				TaxType:       label,
				Tax:           row.Tax,
				NominalRate:   row.NominalRate,
				MarginalRate:  row.MarginalRate,
				EffectiveRate: row.EffectiveRate,
			})
		}

		totalTax := float64(summary.Rows[TotalLabel].Tax)
		rate := report.TakeHomeRate(income, req.Contribution401K, totalTax)
		takeHome = &model.TakeHome{
			Rate:                rate,
			MonthlyPostTaxTotal: report.MonthlyPostTax(income, rate),
		}
		if req.Base > 0 {
			monthlyBase := report.MonthlyPostTax(req.Base, rate)
			takeHome.MonthlyPostTaxBase = &monthlyBase
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: messages,
			Summary:  rows,
			TakeHome: takeHome,
		},
	}
}

func messageCode(err error) string {
	switch {
	case errors.Is(err, ErrNegativeIncome):
		return model.CodeNegativeIncome
	case errors.Is(err, ErrNegativeDeduction):
		return model.CodeNegativeDeduction
	default:
		return "INVALID_INPUT"
	}
}
