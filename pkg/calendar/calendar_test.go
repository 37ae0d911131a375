package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndexRoundTrip(t *testing.T) {
	// every representable index maps back to itself through a civil date
	for cd := DayIndex(0); cd < 60000; cd++ {
		d := DateOf(cd)
		cd2, err := DayIndexOf(d)
		require.NoError(t, err, "date %s", d)
		require.Equal(t, cd, cd2, "date %s", d)
	}
}

func TestDateOf_Epoch(t *testing.T) {
	assert.Equal(t, Date{Day: 1, Month: 3, Year: 1900}, DateOf(0))
	assert.Equal(t, Thursday, WeekdayOf(0))
}

func TestDayIndexOf_LeapDay(t *testing.T) {
	cd, err := ParseDayIndex("29.02.2012")
	require.NoError(t, err)
	assert.Equal(t, "29.02.2012", FormatDayIndex(cd))
}

func TestDayIndexOf_InvalidDates(t *testing.T) {
	invalid := []Date{
		{Day: 1, Month: 1, Year: 1899},  // year below range
		{Day: 1, Month: 1, Year: 2100},  // year above range
		{Day: 1, Month: 0, Year: 2000},  // month below range
		{Day: 1, Month: 13, Year: 2000}, // month above range
		{Day: 0, Month: 1, Year: 2000},  // day below range
		{Day: 32, Month: 1, Year: 2000}, // day above month limit
		{Day: 30, Month: 2, Year: 2000}, // February never has 30 days
		{Day: 31, Month: 4, Year: 2000}, // April has 30 days
	}
	for _, d := range invalid {
		_, err := DayIndexOf(d)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %v", d)
	}

	// February 29 passes validation regardless of leap status; whether the
	// year actually has the day is not a plausibility concern
	_, err := DayIndexOf(Date{Day: 29, Month: 2, Year: 2011})
	assert.NoError(t, err)
}

func TestDayIndexOf_BeforeEpoch(t *testing.T) {
	_, err := DayIndexOf(Date{Day: 15, Month: 1, Year: 1900})
	assert.ErrorIs(t, err, ErrBeforeEpoch)

	_, err = DayIndexOf(Date{Day: 28, Month: 2, Year: 1900})
	assert.ErrorIs(t, err, ErrBeforeEpoch)

	// the epoch itself is fine
	cd, err := DayIndexOf(Date{Day: 1, Month: 3, Year: 1900})
	require.NoError(t, err)
	assert.Equal(t, DayIndex(0), cd)
}

func TestWeekdayOf_Periodicity(t *testing.T) {
	for cd := DayIndex(0); cd < 1000; cd++ {
		assert.Equal(t, WeekdayOf(cd), WeekdayOf(cd+7))
	}
}

func TestWeekNumberOf_SpotChecks(t *testing.T) {
	tests := []struct {
		date string
		week int
	}{
		{"11.06.1969", 24},
		{"01.01.2012", 52}, // Sunday, still in the last week of 2011
		{"31.12.2012", 1},  // Monday, already in week 1 of 2013
		{"31.12.2020", 53}, // 2020 began on a Wednesday in a leap year
		{"09.01.2027", 1},  // 2027 begins on a Friday, week 1 starts late
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		require.NoError(t, err)
		wnum, err := WeekNumberOf(d)
		require.NoError(t, err)
		assert.Equal(t, tt.week, wnum, "date %s", tt.date)
	}
}

func TestWeekNumberOf_FirstSupportedYear(t *testing.T) {
	// 1 January 1900 lies before the epoch, but week numbers for the months
	// from March 1900 on must still come out right
	wnum, err := WeekNumberOf(DateOf(0))
	require.NoError(t, err)
	assert.Equal(t, 9, wnum, "1 March 1900")
	assert.Equal(t, 9, WeekNumberOfDay(0))

	// 31 December 1900 is a Monday and already belongs to week 1 of 1901
	assert.Equal(t, Date{Day: 31, Month: 12, Year: 1900}, DateOf(305))
	assert.Equal(t, 1, WeekNumberOfDay(305))

	prev := 9
	for cd := DayIndex(0); cd <= 305; cd++ {
		wnum := WeekNumberOfDay(cd)
		require.GreaterOrEqual(t, wnum, 1, "index %d", cd)
		require.LessOrEqual(t, wnum, 53, "index %d", cd)
		if WeekdayOf(cd) != Monday {
			// the week number only changes at a Monday
			require.Equal(t, prev, wnum, "index %d", cd)
		}
		prev = wnum
	}
}

func TestWeekNumberOfDay_MatchesDateForm(t *testing.T) {
	for cd := DayIndex(0); cd < 400; cd++ {
		wnum, err := WeekNumberOf(DateOf(cd))
		require.NoError(t, err)
		assert.Equal(t, wnum, WeekNumberOfDay(cd))
	}
	for cd := DayIndex(40000); cd < 40400; cd++ {
		wnum, err := WeekNumberOf(DateOf(cd))
		require.NoError(t, err)
		assert.Equal(t, wnum, WeekNumberOfDay(cd))
	}
}

func TestWeekCountOf(t *testing.T) {
	// the epoch was a Thursday; week 1 begins with the following Monday
	assert.Equal(t, 0, WeekCountOf(0))
	assert.Equal(t, 0, WeekCountOf(3)) // Sunday 4 March 1900
	assert.Equal(t, 1, WeekCountOf(4)) // Monday 5 March 1900
	assert.Equal(t, 2, WeekCountOf(11))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("24.05.2018")
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 24, Month: 5, Year: 2018}, d)
	assert.Equal(t, "24.05.2018", d.String())

	_, err = ParseDate("not a date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("32.01.2018")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseWeekday(t *testing.T) {
	tokens := []string{"mo", "tu", "we", "th", "fr", "sa", "su"}
	for i, token := range tokens {
		wday, err := ParseWeekday(token)
		require.NoError(t, err)
		assert.Equal(t, Weekday(i), wday)
		assert.Equal(t, token, wday.String())
	}

	_, err := ParseWeekday("xx")
	assert.ErrorIs(t, err, ErrBadWeekday)
	_, err = ParseWeekday("monday")
	assert.ErrorIs(t, err, ErrBadWeekday)

	assert.False(t, AnyWeekday.Valid())
	assert.True(t, Friday.Valid())
}
