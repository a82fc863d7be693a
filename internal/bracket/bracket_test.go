package bracket

import (
	"math"
	"testing"
)

var fed = Schedule{
	{Rate: 0.10, Upper: 11925},
	{Rate: 0.12, Upper: 48475},
	{Rate: 0.22, Upper: 103350},
	{Rate: 0.24, Upper: 197300},
	{Rate: 0.32, Upper: 250525},
	{Rate: 0.35, Upper: 626350},
	{Rate: 0.37, Upper: math.Inf(1)},
}

var socSec = Schedule{
	{Rate: 0.062, Upper: 176100},
	{Rate: 0.0, Upper: math.Inf(1)},
}

func TestComputeZeroIncome(t *testing.T) {
	tax, rate := Compute(0, fed)
	if tax != 0 {
		t.Fatalf("expected zero tax, got %v", tax)
	}
	if rate != 0.10 {
		t.Fatalf("expected bottom tier rate 0.10, got %v", rate)
	}
}

func TestComputeNegativeIncome(t *testing.T) {
	tax, rate := Compute(-1000, fed)
	if tax != 0 {
		t.Fatalf("expected zero tax, got %v", tax)
	}
	if rate != 0.10 {
		t.Fatalf("expected bottom tier rate 0.10, got %v", rate)
	}
}

func TestComputeFirstBracketOnly(t *testing.T) {
	tax, rate := Compute(10000, fed)
	if tax != 1000 {
		t.Fatalf("expected tax 1000, got %v", tax)
	}
	if rate != 0.10 {
		t.Fatalf("expected marginal rate 0.10, got %v", rate)
	}
}

func TestComputeBoundaryStaysInLowerTier(t *testing.T) {
	// Income exactly at a tier's upper bound is taxed entirely within that
	// tier, not pushed into the next one.
	tax, rate := Compute(11925, fed)
	if want := 11925 * 0.10; math.Abs(tax-want) > 1e-9 {
		t.Fatalf("expected tax %v, got %v", want, tax)
	}
	if rate != 0.10 {
		t.Fatalf("expected marginal rate 0.10, got %v", rate)
	}
}

func TestComputeSecondBracket(t *testing.T) {
	tax, rate := Compute(20000, fed)
	want := 11925*0.10 + (20000-11925)*0.12
	if math.Abs(tax-want) > 0.01 {
		t.Fatalf("expected tax %v, got %v", want, tax)
	}
	if rate != 0.12 {
		t.Fatalf("expected marginal rate 0.12, got %v", rate)
	}
}

func TestComputeHighIncome(t *testing.T) {
	tax, rate := Compute(200000, fed)
	if tax <= 0 {
		t.Fatalf("expected positive tax, got %v", tax)
	}
	if rate != 0.32 {
		t.Fatalf("expected marginal rate 0.32, got %v", rate)
	}
}

func TestComputeWageBaseCap(t *testing.T) {
	taxAtCap, _ := Compute(176100, socSec)
	taxAboveCap, _ := Compute(250000, socSec)
	if math.Abs(taxAtCap-taxAboveCap) > 0.01 {
		t.Fatalf("expected capped tax, got %v at cap and %v above", taxAtCap, taxAboveCap)
	}
	if want := 176100 * 0.062; math.Abs(taxAtCap-want) > 0.01 {
		t.Fatalf("expected tax %v, got %v", want, taxAtCap)
	}
}

func TestComputeMonotonic(t *testing.T) {
	// More income never yields less tax.
	prev := 0.0
	for income := 0.0; income <= 1e6; income += 997 {
		tax, _ := Compute(income, fed)
		if tax < prev {
			t.Fatalf("tax decreased from %v to %v at income %v", prev, tax, income)
		}
		prev = tax
	}
}

func TestComputeBoundedFinalTierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for schedule without unbounded final tier")
		}
	}()
	Compute(100000, Schedule{{Rate: 0.10, Upper: 50000}})
}

func TestValidate(t *testing.T) {
	if err := Validate(fed); err != nil {
		t.Fatalf("expected valid schedule, got %v", err)
	}
	if err := Validate(Schedule{}); err == nil {
		t.Fatal("expected error for empty schedule")
	}
	if err := Validate(Schedule{{Rate: 0.10, Upper: 50000}}); err == nil {
		t.Fatal("expected error for bounded final tier")
	}
	if err := Validate(Schedule{
		{Rate: 0.10, Upper: 50000},
		{Rate: 0.12, Upper: 50000},
		{Rate: 0.22, Upper: math.Inf(1)},
	}); err == nil {
		t.Fatal("expected error for non-increasing upper bounds")
	}
	if err := Validate(Schedule{{Rate: 1.5, Upper: math.Inf(1)}}); err == nil {
		t.Fatal("expected error for rate above 1")
	}
	if err := Validate(Schedule{{Rate: -0.1, Upper: math.Inf(1)}}); err == nil {
		t.Fatal("expected error for negative rate")
	}
}
