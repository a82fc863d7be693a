// Package bracket implements progressive tax bracket schedules and the
// marginal-rate accumulation over them.
package bracket

import (
	"fmt"
	"math"
)

// Tier is one contiguous income range taxed at a single marginal rate.
// Upper is the cumulative upper bound of the range; math.Inf(1) marks the
// open-ended top tier.
type Tier struct {
	Rate  float64
	Upper float64
}

// Schedule is an ordered sequence of tiers with strictly increasing upper
// bounds, ending in an unbounded tier. Use Validate before computing against
// externally sourced schedules.
type Schedule []Tier

// Compute returns the total tax on taxableIncome under the schedule, together
// with the marginal rate applied to the top dollar of income.
//
// For taxableIncome <= 0 no tax is owed and the bottom tier's rate is reported,
// so a caller can still display the rate that would apply next. The schedule
// must be non-empty and end in an unbounded tier (see Validate); a bounded
// final tier is a configuration bug and panics.
func Compute(taxableIncome float64, s Schedule) (tax, marginalRate float64) {
	if taxableIncome <= 0 {
		return 0, s[0].Rate
	}

	var lower float64
	for _, t := range s {
		if taxableIncome > t.Upper {
			tax += t.Rate * (t.Upper - lower)
			lower = t.Upper
			continue
		}
		// Income exactly at a tier boundary is taxed within this tier.
		return tax + t.Rate*(taxableIncome-lower), t.Rate
	}
	panic("bracket: schedule has no unbounded final tier")
}

// Validate checks the structural invariants of a schedule: at least one tier,
// rates within [0, 1], strictly increasing upper bounds, and an unbounded
// final tier. Monotonically increasing rates are a domain convention, not a
// structural requirement, and are not checked here.
func Validate(s Schedule) error {
	if len(s) == 0 {
		return fmt.Errorf("schedule has no tiers")
	}

	prev := math.Inf(-1)
	for i, t := range s {
		if t.Rate < 0 || t.Rate > 1 {
			return fmt.Errorf("tier %d: rate %v outside [0, 1]", i, t.Rate)
		}
		if t.Upper < 0 {
			return fmt.Errorf("tier %d: negative upper bound %v", i, t.Upper)
		}
		if t.Upper <= prev {
			return fmt.Errorf("tier %d: upper bound %v not above previous bound %v", i, t.Upper, prev)
		}
		prev = t.Upper
	}

	if !math.IsInf(s[len(s)-1].Upper, 1) {
		return fmt.Errorf("final tier upper bound %v is not unbounded", s[len(s)-1].Upper)
	}
	return nil
}
