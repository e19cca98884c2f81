// Package units provides the value types the NOTAM parser is built on:
// calendar dates, weekdays, times of day (including sunrise/sunset events),
// altitudes, geographic points and distances. All types are immutable values.
package units

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the given calendar date, normalizing out-of-range values
// the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of the given instant in UTC.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.toTime().After(other.toTime())
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.toTime().AddDate(0, 0, n))
}

// Next returns the following day.
func (d Date) Next() Date { return d.AddDays(1) }

// Prev returns the preceding day.
func (d Date) Prev() Date { return d.AddDays(-1) }

// DaysUntil returns the number of days from d to other (negative if other is
// earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.toTime().Sub(d.toTime()) / (24 * time.Hour))
}

// Weekday returns the day of the week.
func (d Date) Weekday() Day {
	return dayOfWeekday(d.toTime().Weekday())
}

// WithDay returns the date with the day of month replaced.
func (d Date) WithDay(day int) Date {
	return NewDate(d.Year, d.Month, day)
}

// WithMonth returns the date with the month replaced. With wrap set, a month
// earlier than the current one is taken to mean the next occurrence of that
// month and rolls the year forward.
func (d Date) WithMonth(month time.Month, wrap bool) Date {
	year := d.Year
	if wrap && month < d.Month {
		year++
	}
	return NewDate(year, month, d.Day)
}

// UTC constructs a UTC timestamp from its parts.
func UTC(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// ExpandYear expands a two digit year to four digits assuming the current
// century. This is an approximation with no pivot: behavior near a century
// boundary is undefined.
func ExpandYear(yy int) int {
	return time.Now().Year()/100*100 + yy
}
