package schedule

import (
	"strings"

	"notam_parser/internal/units"
)

// DateRange is a calendar date or an inclusive range of dates. A single date
// has From equal to To.
type DateRange struct {
	From, To units.Date
}

// SingleDate returns the range covering exactly one date.
func SingleDate(d units.Date) DateRange {
	return DateRange{From: d, To: d}
}

func (r DateRange) single() bool { return r.From == r.To }

func (r DateRange) String() string {
	if r.single() {
		return r.From.String()
	}
	return r.From.String() + ".." + r.To.String()
}

// Dates is an ordered collection of dates and date ranges.
type Dates []DateRange

// Cover reports whether any entry equals or contains the given date.
func (ds Dates) Cover(d units.Date) bool {
	for _, r := range ds {
		if !d.Before(r.From) && !d.After(r.To) {
			return true
		}
	}
	return false
}

// Next shifts every entry forward by one day.
func (ds Dates) Next() Dates {
	next := make(Dates, len(ds))
	for i, r := range ds {
		next[i] = DateRange{From: r.From.Next(), To: r.To.Next()}
	}
	return next
}

// Cluster collapses runs of consecutive single dates into ranges. Entries
// must be single dates in ascending order, as produced by Schedule.Slice.
func (ds Dates) Cluster() Dates {
	var clustered Dates
	for _, r := range ds {
		n := len(clustered)
		if n > 0 && clustered[n-1].To.Next() == r.From {
			clustered[n-1].To = r.To
		} else {
			clustered = append(clustered, r)
		}
	}
	return clustered
}

// DayRange is a weekday or an inclusive range of weekdays. A range may wrap
// past the end of the week (SAT-MON).
type DayRange struct {
	From, To units.Day
}

// SingleDay returns the range covering exactly one weekday.
func SingleDay(d units.Day) DayRange {
	return DayRange{From: d, To: d}
}

func (r DayRange) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + ".." + r.To.String()
}

// Days is an ordered collection of weekdays and weekday ranges.
type Days []DayRange

// Cover reports whether any entry equals or contains the given weekday.
func (ds Days) Cover(d units.Day) bool {
	for _, r := range ds {
		if r.From == units.AnyDay || r.To == units.AnyDay {
			return true
		}
		if r.From <= r.To {
			if r.From <= d && d <= r.To {
				return true
			}
		} else if d >= r.From || d <= r.To {
			return true
		}
	}
	return false
}

// Next shifts every entry forward by one weekday.
func (ds Days) Next() Days {
	next := make(Days, len(ds))
	for i, r := range ds {
		next[i] = DayRange{From: r.From.Next(), To: r.To.Next()}
	}
	return next
}

// Times is an ordered collection of time of day ranges.
type Times []units.TimeRange

// Cover reports whether any range contains the given clock time.
func (ts Times) Cover(t units.Time) bool {
	for _, r := range ts {
		if r.Cover(t) {
			return true
		}
	}
	return false
}

func joinStrings[T any](entries []T, format func(T) string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = format(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (ds Dates) String() string {
	return joinStrings(ds, DateRange.String)
}

func (ds Days) String() string {
	return joinStrings(ds, DayRange.String)
}

func (ts Times) String() string {
	return joinStrings(ts, units.TimeRange.String)
}
