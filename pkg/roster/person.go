package roster

import "github.com/crossguard/crossguard/pkg/calendar"

// Person is a guard together with their preferences and the days they have
// been assigned so far. AssignedDays is strictly increasing; the assigner
// only ever appends days in walking order.
type Person struct {
	Name        string
	Preferences Preferences

	// PinnedWeekday restricts the person to a single weekday once set;
	// calendar.AnyWeekday means unrestricted. The assigner sets the pin on
	// the first assignment when AlwaysSameWorkday is requested.
	PinnedWeekday calendar.Weekday

	AssignedDays []calendar.DayIndex
}

// NewPerson returns an unpinned person with the given name and preferences.
func NewPerson(name string, prefs Preferences) *Person {
	return &Person{Name: name, Preferences: prefs, PinnedWeekday: calendar.AnyWeekday}
}

// LastAssigned returns the most recent assigned day, or false when the
// person has no assignment history.
func (p *Person) LastAssigned() (calendar.DayIndex, bool) {
	if len(p.AssignedDays) == 0 {
		return 0, false
	}
	return p.AssignedDays[len(p.AssignedDays)-1], true
}

// Assigned reports whether the person holds the given day.
func (p *Person) Assigned(day calendar.DayIndex) bool {
	return anyDateMatches(p.AssignedDays, day)
}

// Score rates how well the person fits the given duty day. 0 means the
// person is inadmissible; positive scores saturate toward 1 as the distance
// to the last assignment grows, scaled by the preference weight. A person
// with an empty assignment history but a positive match weight scores a full
// 1.0, giving everyone a fair first assignment.
func (p *Person) Score(day calendar.DayIndex, weekNumber int) float64 {
	if p.PinnedWeekday.Valid() && p.PinnedWeekday != calendar.WeekdayOf(day) {
		return 0
	}

	w := p.Preferences.MatchWeight(day, weekNumber)
	if w == 0 {
		// excluded or unavailable days never win, not even before the first
		// assignment
		return 0
	}

	last, ok := p.LastAssigned()
	if !ok {
		return 1.0
	}

	gap := 0.0
	if day > last {
		gap = float64(day - last)
	}
	gap *= w
	return (gap * gap) / (gap*gap + 1)
}

// Clone returns a deep copy of the person.
func (p *Person) Clone() *Person {
	c := *p
	c.AssignedDays = append([]calendar.DayIndex(nil), p.AssignedDays...)
	c.Preferences.IncludedDates = append([]calendar.DayIndex(nil), p.Preferences.IncludedDates...)
	c.Preferences.ExcludedDates = append([]calendar.DayIndex(nil), p.Preferences.ExcludedDates...)
	c.Preferences.ExcludedPeriods = append([]Period(nil), p.Preferences.ExcludedPeriods...)
	return &c
}
