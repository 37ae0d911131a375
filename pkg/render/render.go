// Package render formats assignment results for people to read: a per-day
// listing, a per-person listing, a fixed-width calendar chart and an HTML
// table. All renderers are read-only consumers of the core model.
package render

import (
	"fmt"
	"strings"

	"github.com/crossguard/crossguard/pkg/assigner"
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// Days renders one line per duty day in the period: week number, weekday,
// date and the assignee, or a marker for failures and duty-free days.
func Days(cfg assigner.Config, r roster.Roster, period roster.Period) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Period %s\n", period)

	for day := period.First; day <= period.Last; day++ {
		wday := calendar.WeekdayOf(day)
		if wday == calendar.Monday {
			b.WriteString("\n")
		}
		if !cfg.ActiveWeekdays[wday] {
			continue
		}
		fmt.Fprintf(&b, "    (W%02d) %s %s: ", calendar.WeekNumberOfDay(day), wday, calendar.FormatDayIndex(day))

		if idx := r.AssignmentIndex(day); idx >= 0 {
			fmt.Fprintf(&b, "%s\n", r[idx].Name)
			continue
		}
		switch cfg.Classify(day) {
		case assigner.DayVacation:
			b.WriteString("VACATION\n")
		case assigner.DayHoliday:
			b.WriteString("HOLIDAY\n")
		default:
			b.WriteString("#### FAILURE ####\n")
		}
	}
	return b.String()
}

// Persons renders each person with their pinned weekday and assigned dates,
// ordered by name.
func Persons(r roster.Roster) string {
	var b strings.Builder
	for _, p := range r.SortedByName() {
		b.WriteString(p.Name)
		if p.PinnedWeekday.Valid() {
			fmt.Fprintf(&b, " (%s)", p.PinnedWeekday)
		}
		b.WriteString(":")
		for i, day := range p.AssignedDays {
			if i > 0 {
				b.WriteString(", ")
			}
			if i%4 == 0 {
				b.WriteString("\n    ")
			}
			b.WriteString(calendar.FormatDayIndex(day))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// weekdayMarks labels the seven columns of a calendar week.
const weekdayMarks = "MTWTFSS"

// Calendar renders a fixed-width chart of the period: header rows with week
// numbers, dates and weekday marks, then one row per person where '!' marks
// an assignment, '-' an open duty day and '#' an unfilled one.
func Calendar(cfg assigner.Config, r roster.Roster, period roster.Period) string {
	nameSpace := 0
	for _, p := range r {
		if len(p.Name) > nameSpace {
			nameSpace = len(p.Name)
		}
	}

	const gapWidth = 7
	calStart := nameSpace + gapWidth

	pad := strings.Repeat(" ", calStart)
	dateRow := []byte(pad)
	weekRow := []byte(pad)
	dayRow := []byte(pad)

	personRows := make([][]byte, len(r))
	for i, p := range r {
		pin := "(**)"
		if p.PinnedWeekday.Valid() {
			pin = fmt.Sprintf("(%s)", p.PinnedWeekday)
		}
		row := fmt.Sprintf("%-*s %s:", nameSpace, p.Name, pin)
		if len(row) < calStart {
			row += strings.Repeat(" ", calStart-len(row))
		}
		personRows[i] = []byte(row)
	}

	failCount := 0
	for day := period.First; day <= period.Last; day++ {
		wday := calendar.WeekdayOf(day)
		activeWeekday := cfg.ActiveWeekdays[wday]
		dayType := cfg.Classify(day)
		unassigned := r.AssignmentIndex(day) < 0
		failure := activeWeekday && dayType == assigner.DayRegular && unassigned
		if failure {
			failCount++
		}

		if wday == calendar.Monday {
			dayRow = append(dayRow, '|')
			weekRow = append(weekRow, fmt.Sprintf("|W%d", calendar.WeekNumberOfDay(day))...)
			dateRow = append(dateRow, ("|" + calendar.FormatDayIndex(day)[:6])...)
			for i := range personRows {
				personRows[i] = append(personRows[i], '|')
			}
		}

		dayRow = append(dayRow, weekdayMarks[wday])

		for i, p := range r {
			var c byte
			switch {
			case p.Assigned(day):
				c = '!'
			case dayType != assigner.DayRegular:
				c = ' '
			case !activeWeekday:
				c = ' '
			case failure:
				c = '#'
			default:
				c = '-'
			}
			personRows[i] = append(personRows[i], c)
		}

		// keep all rows aligned with the weekday row
		for len(weekRow) < len(dayRow) {
			weekRow = append(weekRow, ' ')
		}
		for len(dateRow) < len(dayRow) {
			dateRow = append(dateRow, ' ')
		}
		for i := range personRows {
			for len(personRows[i]) < len(dayRow) {
				personRows[i] = append(personRows[i], ' ')
			}
		}
	}

	separator := strings.Repeat("-", len(dateRow)+1)

	var b strings.Builder
	fmt.Fprintf(&b, "Period: %s\n", period)
	fmt.Fprintf(&b, "%s\n%s\n%s\n%s\n%s\n", separator, weekRow, dateRow, dayRow, separator)
	for _, row := range personRows {
		b.Write(row)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s\n%d missing assignments\n", separator, failCount)
	return b.String()
}
