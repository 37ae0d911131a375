// Package calendar implements the civil-calendar arithmetic the scheduler is
// built on: conversion between day/month/year dates and a linear day index,
// weekday lookup and ISO-8601-style week numbers.
//
// Day index 0 is 1 March 1900. The leap-year handling uses a plain 4-year
// cycle without the Gregorian 100/400-year corrections, which is exact inside
// the supported year range [1900, 2100) because no such correction falls
// inside it. Date validation enforces that range, so the simplified
// arithmetic never runs on a date where it would be wrong.
package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate reports a date that fails plausibility checks
	ErrInvalidDate = errors.New("invalid date")

	// ErrBeforeEpoch reports a date earlier than 1 March 1900
	ErrBeforeEpoch = errors.New("date before epoch (01.03.1900)")

	// ErrBadWeekday reports an unrecognized weekday token
	ErrBadWeekday = errors.New("unknown weekday")
)

// DayIndex is a linear day count with day 0 = 1 March 1900.
type DayIndex int

// Date is a civil calendar date.
type Date struct {
	Day   int
	Month int
	Year  int
}

// maxMonthDay caps the day of month for validation. February allows 29
// unconditionally; whether a given year actually has a leap day is settled
// by the index arithmetic, not here.
var maxMonthDay = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Validate checks the date for plausibility: year in [1900, 2100), month in
// [1, 12] and day within the fixed per-month limit.
func (d Date) Validate() error {
	if d.Year < 1900 || d.Year >= 2100 {
		return fmt.Errorf("%w: year %d outside [1900, 2100)", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > maxMonthDay[d.Month] {
		return fmt.Errorf("%w: day %d in month %d", ErrInvalidDate, d.Day, d.Month)
	}
	return nil
}

// String formats the date as "dd.mm.yyyy".
func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// ParseDate parses a "dd.mm.yyyy" date and validates it.
func ParseDate(s string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(s, "%d.%d.%d", &d.Day, &d.Month, &d.Year); err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// daysBeforeMonth is the cumulative day count of the months preceding each
// month in a non-leap year (February counted as 28).
var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// rawDayIndexOf converts without the epoch check. The result is negative for
// January and February 1900, which the week-number arithmetic relies on.
func rawDayIndexOf(d Date) DayIndex {
	yr := d.Year - 1900
	leapDays := 1 + yr/4
	if d.Month < 3 && yr%4 == 0 {
		// the leap day of this cycle has not been passed yet
		leapDays--
	}
	return DayIndex(yr*365 + leapDays + daysBeforeMonth[d.Month] + d.Day - 1 - 60)
}

// DayIndexOf converts a date to its day index. The date is validated first;
// dates before 1 March 1900 are rejected with ErrBeforeEpoch.
func DayIndexOf(d Date) (DayIndex, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	cd := rawDayIndexOf(d)
	if cd < 0 {
		return 0, fmt.Errorf("%w: %s", ErrBeforeEpoch, d)
	}
	return cd, nil
}

// ParseDayIndex parses a "dd.mm.yyyy" string directly to a day index.
func ParseDayIndex(s string) (DayIndex, error) {
	d, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return DayIndexOf(d)
}

// monthLengths holds the lengths of the eleven months March..January. With
// the epoch at 1 March, the leap day is always the last day of a 4-year
// cycle, so February never needs to appear in the table.
var monthLengths = [11]int{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31}

// DateOf converts a day index back to a civil date. It is the exact inverse
// of DayIndexOf for every index DayIndexOf can produce.
func DateOf(cd DayIndex) Date {
	const cycleDays = 365*4 + 1

	cycle := int(cd) / cycleDays
	dy := int(cd) - cycle*cycleDays

	yearInCycle := dy / 365
	if yearInCycle > 3 {
		// day 1460 is the trailing leap day of the cycle
		yearInCycle = 3
	}
	yr := cycle*4 + yearInCycle
	dy -= yearInCycle * 365

	month := 3
	for _, n := range monthLengths {
		if n > dy {
			break
		}
		dy -= n
		month++
	}

	d := Date{Day: dy + 1, Month: month, Year: 1900 + yr}
	if month > 12 {
		// overflow into January of the following year
		d.Month = month - 12
		d.Year++
	}
	return d
}

// FormatDayIndex renders a day index as "dd.mm.yyyy".
func FormatDayIndex(cd DayIndex) string {
	return DateOf(cd).String()
}

// WeekdayOf returns the weekday of a day index. Day 0 (1 March 1900) was a
// Thursday, hence the +3 offset. Negative indexes (the weeks of January 1900
// inside the week-number arithmetic) are handled correctly.
func WeekdayOf(cd DayIndex) Weekday {
	return Weekday(((int(cd)+3)%7 + 7) % 7)
}

// WeekCountOf returns a linear week counter where week 1 begins with the
// first Monday at or after the epoch.
func WeekCountOf(cd DayIndex) int {
	return (int(cd) + 3) / 7
}

// WeekNumberOf returns the ISO-8601-style week number of the date. Dates in
// the final days of December may belong to week 1 of the next year, and dates
// in early January may belong to week 52 or 53 of the previous year.
func WeekNumberOf(d Date) (int, error) {
	// the raw index keeps 1 January 1900 representable (it lies before the
	// epoch), so every date from March 1900 on gets a proper week number
	jan1Index := rawDayIndexOf(Date{Day: 1, Month: 1, Year: d.Year})
	jan1Weekday := WeekdayOf(jan1Index)

	// Monday starting week 1: the week containing 1 January when that week
	// has four or more days in the new year, otherwise one week later.
	week1Monday := jan1Index - DayIndex(jan1Weekday)
	if jan1Weekday > Thursday {
		week1Monday += 7
	}

	cd, err := DayIndexOf(d)
	if err != nil {
		return 0, err
	}

	if cd < week1Monday {
		// last week of the previous year; that year has 53 weeks when its
		// 1 January pushes this year's 1 January onto a Friday, or onto a
		// Saturday after a leap year
		switch {
		case jan1Weekday == Friday:
			return 53, nil
		case jan1Weekday == Saturday && (d.Year-1)%4 == 0:
			return 53, nil
		default:
			return 52, nil
		}
	}

	wnum := 1 + int(cd-week1Monday)/7
	if wnum == 53 {
		// week 53 only exists when 1 January fell on a Thursday, or on a
		// Wednesday in a leap year; otherwise the date is week 1 of next year
		if jan1Weekday == Thursday || (d.Year%4 == 0 && jan1Weekday == Wednesday) {
			return 53, nil
		}
		return 1, nil
	}
	return wnum, nil
}

// WeekNumberOfDay returns the ISO-8601-style week number of a day index.
func WeekNumberOfDay(cd DayIndex) int {
	// DateOf output always round-trips, so the error path is unreachable
	wnum, _ := WeekNumberOf(DateOf(cd))
	return wnum
}
