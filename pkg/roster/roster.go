package roster

import (
	"sort"

	"github.com/crossguard/crossguard/pkg/calendar"
)

// Roster is an ordered collection of persons. The order carries no meaning of
// its own; it only breaks score ties during assignment.
type Roster []*Person

// Clone returns a deep copy of the roster. Trial runs of the assigner mutate
// clones only; the caller's roster is never touched.
func (r Roster) Clone() Roster {
	c := make(Roster, len(r))
	for i, p := range r {
		c[i] = p.Clone()
	}
	return c
}

// AssignmentIndex returns the position of the person holding the given day,
// or -1 when the day is unassigned.
func (r Roster) AssignmentIndex(day calendar.DayIndex) int {
	for i, p := range r {
		if p.Assigned(day) {
			return i
		}
	}
	return -1
}

// SortedByName returns a copy of the roster ordered by person name. The
// persons themselves are shared, not copied.
func (r Roster) SortedByName() Roster {
	c := append(Roster(nil), r...)
	sort.Slice(c, func(i, j int) bool { return c[i].Name < c[j].Name })
	return c
}
