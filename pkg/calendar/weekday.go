package calendar

import "fmt"

// Weekday is a day of the week, Monday = 0 through Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// AnyWeekday is the sentinel for "no specific weekday".
	AnyWeekday Weekday = 7
)

var weekdayTokens = [7]string{"mo", "tu", "we", "th", "fr", "sa", "su"}

// String returns the two-letter token of the weekday ("mo".."su").
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "**"
	}
	return weekdayTokens[w]
}

// Valid reports whether w is one of the seven weekdays.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// ParseWeekday maps a two-letter token to its weekday.
func ParseWeekday(s string) (Weekday, error) {
	for i, token := range weekdayTokens {
		if s == token {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadWeekday, s)
}
