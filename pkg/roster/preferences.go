package roster

import "github.com/crossguard/crossguard/pkg/calendar"

// WeekdayAvailability describes a recurring weekly availability pattern.
// A day matches when its weekday flag is set and the day's week number is in
// phase with the recurrence interval.
type WeekdayAvailability struct {
	// Weekdays flags the admissible weekdays, indexed by calendar.Weekday
	// (Monday = 0 .. Sunday = 6).
	Weekdays [7]bool

	// WeeklyPeriod is the recurrence interval in weeks: 1 means every week,
	// 2 every other week, and so on.
	WeeklyPeriod int

	// AnchorWeek is a week number considered in phase with the recurrence.
	AnchorWeek int
}

// Matches reports whether the day is admitted by the availability pattern.
func (a WeekdayAvailability) Matches(day calendar.DayIndex, weekNumber int) bool {
	if !a.Weekdays[calendar.WeekdayOf(day)] {
		return false
	}
	if a.WeeklyPeriod <= 1 {
		return true
	}
	diff := weekNumber - a.AnchorWeek
	if diff < 0 {
		diff = -diff
	}
	return diff%a.WeeklyPeriod == 0
}

// Preferences captures a person's scheduling preferences.
type Preferences struct {
	// Weight scales the person's score; 0 makes the person never win a day.
	Weight float64

	Availability WeekdayAvailability

	// AlwaysSameWorkday pins the person to the weekday of their first
	// assignment.
	AlwaysSameWorkday bool

	// IncludedDates admit specific days outside the recurring availability.
	IncludedDates []calendar.DayIndex

	// ExcludedDates and ExcludedPeriods veto days unconditionally; exclusions
	// supersede inclusions and the recurring availability.
	ExcludedDates   []calendar.DayIndex
	ExcludedPeriods []Period
}

// MatchWeight returns the preference weight when the day is admissible for
// these preferences, and 0 otherwise. Exclusions are checked first and always
// dominate.
func (p Preferences) MatchWeight(day calendar.DayIndex, weekNumber int) float64 {
	if anyDateMatches(p.ExcludedDates, day) {
		return 0
	}
	if anyPeriodContains(p.ExcludedPeriods, day) {
		return 0
	}
	if p.Availability.Matches(day, weekNumber) {
		return p.Weight
	}
	if anyDateMatches(p.IncludedDates, day) {
		return p.Weight
	}
	return 0
}
