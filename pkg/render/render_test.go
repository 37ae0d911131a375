package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossguard/crossguard/pkg/assigner"
	"github.com/crossguard/crossguard/pkg/calendar"
	"github.com/crossguard/crossguard/pkg/roster"
)

// 1 June 2026 is a Monday in ISO week 23.
const monday calendar.DayIndex = 46113

// fixture: ada holds Monday and Wednesday of the first week, Tuesday is an
// unfilled duty day, Thursday is a holiday, Friday vacation.
func fixture() (assigner.Config, roster.Roster, roster.Period) {
	cfg := assigner.DefaultConfig()
	cfg.Holidays = []calendar.DayIndex{monday + 3}
	cfg.VacationPeriods = []roster.Period{{First: monday + 4, Last: monday + 6}}

	ada := roster.NewPerson("ada", roster.Preferences{Weight: 1})
	ada.AssignedDays = []calendar.DayIndex{monday, monday + 2}
	bob := roster.NewPerson("bob", roster.Preferences{Weight: 1})

	return cfg, roster.Roster{ada, bob}, roster.Period{First: monday, Last: monday + 6}
}

func TestDays(t *testing.T) {
	cfg, r, period := fixture()
	out := Days(cfg, r, period)

	assert.Contains(t, out, "Period 01.06.2026 - 07.06.2026")
	assert.Contains(t, out, "(W23) mo 01.06.2026: ada")
	assert.Contains(t, out, "(W23) tu 02.06.2026: #### FAILURE ####")
	assert.Contains(t, out, "(W23) we 03.06.2026: ada")
	assert.Contains(t, out, "(W23) th 04.06.2026: HOLIDAY")
	assert.Contains(t, out, "(W23) fr 05.06.2026: VACATION")
	// Saturday is not a duty day and does not appear
	assert.NotContains(t, out, "06.06.2026")
}

func TestPersons(t *testing.T) {
	_, r, _ := fixture()
	r[1].PinnedWeekday = calendar.Thursday
	out := Persons(r)

	assert.Contains(t, out, "ada:")
	assert.Contains(t, out, "01.06.2026, 03.06.2026")
	assert.Contains(t, out, "bob (th):")

	// sorted by name regardless of roster order
	assert.Less(t, strings.Index(out, "ada"), strings.Index(out, "bob"))
}

func TestPersons_WrapsDates(t *testing.T) {
	p := roster.NewPerson("ada", roster.Preferences{Weight: 1})
	for i := 0; i < 5; i++ {
		p.AssignedDays = append(p.AssignedDays, monday+calendar.DayIndex(i))
	}
	out := Persons(roster.Roster{p})

	// four dates per line, the fifth wraps
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, 4, strings.Count(lines[1], "2026"))
	assert.Equal(t, 1, strings.Count(lines[2], "2026"))
}

func TestCalendar(t *testing.T) {
	cfg, r, period := fixture()
	out := Calendar(cfg, r, period)

	assert.Contains(t, out, "Period: 01.06.2026 - 07.06.2026")
	assert.Contains(t, out, "|W23")
	assert.Contains(t, out, "|01.06.")
	assert.Contains(t, out, "|MTWTFSS")
	assert.Contains(t, out, "1 missing assignments")

	// ada holds Monday and Wednesday, Tuesday is the unfilled day
	var adaRow, bobRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "ada") {
			adaRow = line
		}
		if strings.HasPrefix(line, "bob") {
			bobRow = line
		}
	}
	require.NotEmpty(t, adaRow)
	require.NotEmpty(t, bobRow)
	assert.Contains(t, adaRow, "(**)")
	assert.Contains(t, adaRow, "|!#!")
	assert.Contains(t, bobRow, "|-#-")
}

func TestCalendar_NoFailures(t *testing.T) {
	cfg, r, period := fixture()
	r[1].AssignedDays = []calendar.DayIndex{monday + 1}
	out := Calendar(cfg, r, period)

	assert.Contains(t, out, "0 missing assignments")
	assert.NotContains(t, out, "#")
}
