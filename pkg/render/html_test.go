package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crossguard/crossguard/pkg/roster"
)

func TestHTMLTable(t *testing.T) {
	cfg, r, period := fixture()
	out := HTMLTable(cfg, r, period)

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<h2>01.06.2026 - 07.06.2026</h2>")

	// only the active weekdays get a column
	assert.Contains(t, out, "<th> Monday </th>")
	assert.Contains(t, out, "<th> Friday </th>")
	assert.NotContains(t, out, "Saturday")
	assert.NotContains(t, out, "Sunday")

	assert.Contains(t, out, "<div><b>ada</b></div>")
	assert.Contains(t, out, "<b>Missing</b>")
	assert.Contains(t, out, "<div>Holiday</div>")
	assert.Contains(t, out, "<div>Vacation</div>")

	// month column for a single-month week
	assert.Contains(t, out, "<div>Jun</div><div>2026</div>")
}

func TestHTMLTable_PadsToFullWeeks(t *testing.T) {
	cfg, r, _ := fixture()
	// start mid-week: Wednesday through next Tuesday
	period := roster.Period{First: monday + 2, Last: monday + 8}
	out := HTMLTable(cfg, r, period)

	// the Monday before the period start is charted as outside
	assert.Contains(t, out, "background-color: #f0f080;")
	// two charted weeks, so two week-number cells
	assert.Equal(t, 2, strings.Count(out, "<tr style="))
}

func TestHTMLTable_MonthStraddle(t *testing.T) {
	cfg, r, _ := fixture()
	// 29 June 2026 (Monday) through 5 July 2026 (Sunday)
	period := roster.Period{First: monday + 28, Last: monday + 34}
	out := HTMLTable(cfg, r, period)

	assert.Contains(t, out, "<div>Jun/Jul</div><div>2026</div>")
}
