// Package schedule holds the named bracket schedule sets: the compiled-in
// 2025 US tables and optional TOML file overrides.
package schedule

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"tax-engine/internal/bracket"
)

// Entry pairs a tax-type label with its bracket schedule.
type Entry struct {
	Label    string
	Schedule bracket.Schedule
}

// Set is an ordered, read-only collection of named bracket schedules.
// Construct once at startup and share freely; nothing mutates a Set after
// NewSet returns.
type Set struct {
	labels    []string
	schedules map[string]bracket.Schedule
}

// NewSet builds a Set preserving the order of the given entries.
func NewSet(entries ...Entry) Set {
	s := Set{
		labels:    make([]string, 0, len(entries)),
		schedules: make(map[string]bracket.Schedule, len(entries)),
	}
	for _, e := range entries {
		s.labels = append(s.labels, e.Label)
		s.schedules[e.Label] = e.Schedule
	}
	return s
}

// Labels returns the tax-type labels in their defined order.
func (s Set) Labels() []string {
	return s.labels
}

// Get returns the schedule for the given label.
func (s Set) Get(label string) (bracket.Schedule, bool) {
	sched, ok := s.schedules[label]
	return sched, ok
}

// Len returns the number of schedules in the set.
func (s Set) Len() int {
	return len(s.labels)
}

// Validate checks every schedule in the set. A failure here means the static
// bracket data itself is malformed and the process should not serve.
func (s Set) Validate() error {
	for _, label := range s.labels {
		if err := bracket.Validate(s.schedules[label]); err != nil {
			return fmt.Errorf("schedule %q: %w", label, err)
		}
	}
	return nil
}

// Default returns the 2025 US tax brackets: federal, New York state, New York
// City, Social Security, and Medicare. Bracket figures are externally sourced
// facts; the NY top rate is 0.109 (an earlier transcription had 0.0109).
func Default() Set {
	inf := math.Inf(1)
	return NewSet(
		Entry{Label: "FED", Schedule: bracket.Schedule{
			{Rate: 0.10, Upper: 11925},
			{Rate: 0.12, Upper: 48475},
			{Rate: 0.22, Upper: 103350},
			{Rate: 0.24, Upper: 197300},
			{Rate: 0.32, Upper: 250525},
			{Rate: 0.35, Upper: 626350},
			{Rate: 0.37, Upper: inf},
		}},
		Entry{Label: "NY", Schedule: bracket.Schedule{
			{Rate: 0.04, Upper: 8500},
			{Rate: 0.045, Upper: 11700},
			{Rate: 0.0525, Upper: 13900},
			{Rate: 0.055, Upper: 80650},
			{Rate: 0.06, Upper: 215400},
			{Rate: 0.0685, Upper: 1077550},
			{Rate: 0.0965, Upper: 5e6},
			{Rate: 0.103, Upper: 2.5e7},
			{Rate: 0.109, Upper: inf},
		}},
		Entry{Label: "NYC", Schedule: bracket.Schedule{
			{Rate: 0.03078, Upper: 12000},
			{Rate: 0.03762, Upper: 25000},
			{Rate: 0.03819, Upper: 50000},
			{Rate: 0.03876, Upper: inf},
		}},
		Entry{Label: "Soc Sec", Schedule: bracket.Schedule{
			{Rate: 0.062, Upper: 176100},
			{Rate: 0.0, Upper: inf},
		}},
		Entry{Label: "Med", Schedule: bracket.Schedule{
			{Rate: 0.0145, Upper: inf},
		}},
	)
}

type scheduleFile struct {
	Schedules []scheduleSection `toml:"schedule"`
}

type scheduleSection struct {
	Label string        `toml:"label"`
	Tiers []tierSection `toml:"tier"`
}

type tierSection struct {
	Rate  float64  `toml:"rate"`
	Upper *float64 `toml:"upper"`
}

// LoadFile reads a schedule set from a TOML file. An omitted tier upper bound
// means unbounded. The loaded set is validated; any malformed schedule is
// returned as an error so startup can fail loudly instead of serving bad
// bracket data.
func LoadFile(path string) (Set, error) {
	var file scheduleFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Set{}, fmt.Errorf("parse schedule file: %w", err)
	}
	if len(file.Schedules) == 0 {
		return Set{}, fmt.Errorf("schedule file %s defines no schedules", path)
	}

	entries := make([]Entry, 0, len(file.Schedules))
	for _, sec := range file.Schedules {
		if sec.Label == "" {
			return Set{}, fmt.Errorf("schedule file %s: schedule without a label", path)
		}
		sched := make(bracket.Schedule, 0, len(sec.Tiers))
		for _, t := range sec.Tiers {
			upper := math.Inf(1)
			if t.Upper != nil {
				upper = *t.Upper
			}
			sched = append(sched, bracket.Tier{Rate: t.Rate, Upper: upper})
		}
		entries = append(entries, Entry{Label: sec.Label, Schedule: sched})
	}

	set := NewSet(entries...)
	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("schedule file %s: %w", path, err)
	}
	return set, nil
}
