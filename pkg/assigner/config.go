// Package assigner contains the duty-day classifier and the randomized
// multi-trial greedy optimizer that produces assignments.
package assigner

import (
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// DayType classifies a day for assignment purposes.
type DayType int

const (
	// DayRegular is a potential duty day that must be assigned.
	DayRegular DayType = iota
	// DayVacation falls inside a configured vacation period.
	DayVacation
	// DayHoliday is a configured single holiday.
	DayHoliday
)

// String names the day type for reporting.
func (t DayType) String() string {
	switch t {
	case DayVacation:
		return "VACATION"
	case DayHoliday:
		return "HOLIDAY"
	default:
		return "REGULAR"
	}
}

// Config parameterizes the assigner.
type Config struct {
	// ActiveWeekdays flags the weekdays that carry duty at all, indexed by
	// calendar.Weekday.
	ActiveWeekdays [7]bool

	// VacationPeriods and Holidays mark days that are skipped entirely; they
	// are neither assigned nor counted as failures.
	VacationPeriods []roster.Period
	Holidays        []calendar.DayIndex

	// Seed drives the per-trial permutations; identical seeds reproduce
	// identical assignments.
	Seed int64

	// Cycles is the number of randomized trials to run.
	Cycles int
}

// DefaultConfig returns the assigner defaults: duty on Monday through
// Friday, seed 12345, 128 trials.
func DefaultConfig() Config {
	return Config{
		ActiveWeekdays: [7]bool{true, true, true, true, true, false, false},
		Seed:           12345,
		Cycles:         128,
	}
}

// Classify tags a day as regular, vacation or holiday. Vacation periods take
// precedence over holidays.
func (c *Config) Classify(day calendar.DayIndex) DayType {
	for _, p := range c.VacationPeriods {
		if p.Inside(day) {
			return DayVacation
		}
	}
	for _, h := range c.Holidays {
		if h == day {
			return DayHoliday
		}
	}
	return DayRegular
}
