// Package roster defines the scheduling data model: periods, per-person
// availability preferences, persons with their assignment histories, and the
// ordered roster the assigner operates on. It also implements preference
// matching and person scoring, the two pure functions driving candidate
// selection.
package roster

import "github.com/crossguard/crossguard/pkg/calendar"

// Period is an inclusive range of day indexes.
type Period struct {
	First calendar.DayIndex
	Last  calendar.DayIndex
}

// Inside reports whether the day falls within the period.
func (p Period) Inside(day calendar.DayIndex) bool {
	return day >= p.First && day <= p.Last
}

// String formats the period as "dd.mm.yyyy - dd.mm.yyyy".
func (p Period) String() string {
	return calendar.FormatDayIndex(p.First) + " - " + calendar.FormatDayIndex(p.Last)
}

func anyDateMatches(dates []calendar.DayIndex, day calendar.DayIndex) bool {
	for _, d := range dates {
		if d == day {
			return true
		}
	}
	return false
}

func anyPeriodContains(periods []Period, day calendar.DayIndex) bool {
	for _, p := range periods {
		if p.Inside(day) {
			return true
		}
	}
	return false
}
