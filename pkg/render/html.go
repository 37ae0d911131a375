package render

import (
	"fmt"
	"strings"

	"github.com/crossguard/crossguard/pkg/assigner"
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

var weekdayHeaders = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// HTMLTable renders the period as a self-contained HTML page with one table
// row per week. Cells are shaded by state: outside the period, vacation,
// holiday or missing assignment; the trailing column names month and year.
func HTMLTable(cfg assigner.Config, r roster.Roster, period roster.Period) string {
	var b strings.Builder

	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("<title>Crossing Guard Table</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("table { border-collapse: separate; border-spacing: 0.2em; background-color: #c0c0c0; }\n")
	b.WriteString("td { text-align: center; background-color: #ffffff; padding: 0.2em; }\n")
	b.WriteString("th { text-align: center; background-color: #f0f0f0; padding: 0.5em; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h2>%s - %s</h2>\n", calendar.FormatDayIndex(period.First), calendar.FormatDayIndex(period.Last))

	// chart full weeks: Monday of the first week through Sunday of the last
	start := period.First - calendar.DayIndex(calendar.WeekdayOf(period.First))
	end := period.Last - calendar.DayIndex(calendar.WeekdayOf(period.Last)) + 6

	b.WriteString("<table>\n<thead>\n<tr>")
	b.WriteString("<th> Week </th>")
	for wday := calendar.Monday; wday <= calendar.Sunday; wday++ {
		if cfg.ActiveWeekdays[wday] {
			fmt.Fprintf(&b, "<th> %s </th>", weekdayHeaders[wday])
		}
	}
	b.WriteString("<th></th>")
	b.WriteString("</tr>\n</thead>\n")

	b.WriteString("<tbody>\n")
	firstMonth, secondMonth := 0, 0
	for day := start; day <= end; day++ {
		wday := calendar.WeekdayOf(day)
		date := calendar.DateOf(day)
		wnum := calendar.WeekNumberOfDay(day)

		if wday == calendar.Monday {
			rowColor := "#f8f8f8"
			if wnum%2 == 1 {
				rowColor = "#ffffff"
			}
			fmt.Fprintf(&b, "<tr style=\"background-color: %s;\">", rowColor)
			fmt.Fprintf(&b, "<td style=\"background-color: #f0f0f0;\">%d</td>", wnum)
			firstMonth, secondMonth = 0, 0
		}

		if cfg.ActiveWeekdays[wday] {
			if firstMonth == 0 {
				firstMonth = date.Month
			} else if firstMonth != date.Month {
				secondMonth = date.Month
			}

			idx := r.AssignmentIndex(day)
			dayType := assigner.DayRegular
			if idx < 0 {
				dayType = cfg.Classify(day)
			}

			outside := !period.Inside(day)
			assigned := idx >= 0
			failure := !outside && !assigned && dayType == assigner.DayRegular

			switch {
			case outside:
				b.WriteString("<td style=\"background-color: #f0f080;\">")
			case assigned:
				b.WriteString("<td>")
			case failure:
				b.WriteString("<td style=\"background-color: #f08080;\">")
			default: // vacation or holiday
				b.WriteString("<td style=\"background-color: #f0f0ff;\">")
			}

			fmt.Fprintf(&b, "%d", date.Day)

			if assigned {
				fmt.Fprintf(&b, "<div><b>%s</b></div>", r[idx].Name)
			} else if !outside {
				switch dayType {
				case assigner.DayVacation:
					b.WriteString("<div>Vacation</div>")
				case assigner.DayHoliday:
					b.WriteString("<div>Holiday</div>")
				default:
					b.WriteString("<div style=\"color: #00ffff; background-color: #ff0000;\"><b>Missing</b></div>")
				}
			}
			b.WriteString("</td>")
		}

		if wday == calendar.Sunday {
			b.WriteString("<td style=\"background-color: #f0f0f0;\">")
			switch {
			case firstMonth > 0 && secondMonth == 0:
				fmt.Fprintf(&b, "<div>%s</div><div>%d</div>", monthNames[firstMonth-1], date.Year)
			case secondMonth == 1:
				// week straddles the year boundary
				fmt.Fprintf(&b, "<div>%s %d/</div><div>%s %d</div>",
					monthNames[firstMonth-1], date.Year-1, monthNames[secondMonth-1], date.Year)
			case firstMonth > 0:
				fmt.Fprintf(&b, "<div>%s/%s</div><div>%d</div>",
					monthNames[firstMonth-1], monthNames[secondMonth-1], date.Year)
			}
			b.WriteString("</td></tr>\n")
		}
	}
	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")

	return b.String()
}
