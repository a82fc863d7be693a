package engine

import (
	"testing"

	"tax-engine/internal/model"
	"tax-engine/internal/schedule"
)

func float64Ptr(v float64) *float64 { return &v }

func TestProcessSuccess(t *testing.T) {
	req := &model.CalculationRequest{Income: float64Ptr(60000)}

	resp := Process(req, schedule.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation ID")
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}
	if len(resp.CalculationResult.Summary) != 6 {
		t.Fatalf("expected 6 summary rows, got %d", len(resp.CalculationResult.Summary))
	}
	last := resp.CalculationResult.Summary[5]
	if last.TaxType != TotalLabel {
		t.Fatalf("expected last row %q, got %q", TotalLabel, last.TaxType)
	}

	th := resp.CalculationResult.TakeHome
	if th == nil {
		t.Fatal("expected take-home figures")
	}
	if th.Rate <= 0 || th.Rate >= 1 {
		t.Fatalf("expected take-home rate in (0, 1), got %v", th.Rate)
	}
	// No base salary given, so no monthly base figure.
	if th.MonthlyPostTaxBase != nil {
		t.Fatal("expected no monthly post-tax base without a base salary")
	}
}

func TestProcessBaseAndBonus(t *testing.T) {
	req := &model.CalculationRequest{
		Base:             50000,
		Bonus:            10000,
		Contribution401K: 23500,
	}

	resp := Process(req, schedule.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	th := resp.CalculationResult.TakeHome
	if th == nil {
		t.Fatal("expected take-home figures")
	}
	if th.MonthlyPostTaxBase == nil {
		t.Fatal("expected monthly post-tax base when base salary is given")
	}
	if *th.MonthlyPostTaxBase >= th.MonthlyPostTaxTotal {
		t.Fatalf("expected monthly base %v below monthly total %v", *th.MonthlyPostTaxBase, th.MonthlyPostTaxTotal)
	}
}

func TestProcessNegativeIncome(t *testing.T) {
	req := &model.CalculationRequest{Income: float64Ptr(-1000)}

	resp := Process(req, schedule.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}
	msg := resp.CalculationResult.Messages[0]
	if msg.Level != model.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", msg.Level)
	}
	if msg.Code != model.CodeNegativeIncome {
		t.Fatalf("expected %s, got %s", model.CodeNegativeIncome, msg.Code)
	}
	if len(resp.CalculationResult.Summary) != 0 {
		t.Fatalf("expected no summary rows, got %d", len(resp.CalculationResult.Summary))
	}
	if resp.CalculationResult.TakeHome != nil {
		t.Fatal("expected no take-home figures on failure")
	}
}

func TestProcessNegativeDeduction(t *testing.T) {
	req := &model.CalculationRequest{
		Income:            float64Ptr(60000),
		StandardDeduction: float64Ptr(-15000),
	}

	resp := Process(req, schedule.Default())

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if got := resp.CalculationResult.Messages[0].Code; got != model.CodeNegativeDeduction {
		t.Fatalf("expected %s, got %s", model.CodeNegativeDeduction, got)
	}
}
