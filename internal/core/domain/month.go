package domain

import (
	"fmt"
	"time"
)

// frenchMonths holds the display names used in export titles.
var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years. Day zero of the following month normalizes to the last day.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last date of the month in DateLayout
// format, both inclusive.
func MonthBounds(year int, month time.Month) (first, last string) {
	f := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	l := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return f.Format(DateLayout), l.Format(DateLayout)
}

// DayDate returns the DateLayout string for a given day of the month.
func DayDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// AddMonths moves a (year, month) pair by delta months, rolling over year
// boundaries in either direction.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// IsWeekend reports whether the date falls on a Saturday or Sunday. Used for
// display styling only, never as a business rule on assignable statuses.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

// MonthLabel renders the French "month year" title used by the exports,
// e.g. "janvier 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", frenchMonths[month], year)
}

// ParseDate validates a DateLayout string and returns its time value.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
