// Package schedule parses and evaluates the recurring activity timesheets
// found on NOTAM D items. A D item clause like "MON-FRI 0700-1100 1300-1700
// EXC 15" yields one or more Schedule values which can then be sliced to a
// date window, resolved against a location and queried for activity.
package schedule

import (
	"fmt"
	"time"

	"notam_parser/internal/units"
)

// Schedule is one piece of a timesheet: a set of active dates or weekdays
// (never both), the active time ranges, and exception carve-outs of the
// opposite kind. Time ranges never cross midnight; clauses that do are split
// into two schedules during parsing.
type Schedule struct {
	// ActiveDates and ActiveDays are mutually exclusive: exactly one of
	// them is populated.
	ActiveDates Dates
	ActiveDays  Days

	Times Times

	// InactiveDates holds exceptions when actives are weekdays,
	// InactiveDays when actives are dates.
	InactiveDates Dates
	InactiveDays  Days

	base units.Date
}

func (s Schedule) String() string {
	actives, inactives := "[]", "[]"
	if len(s.ActiveDates) > 0 {
		actives = s.ActiveDates.String()
	} else if len(s.ActiveDays) > 0 {
		actives = s.ActiveDays.String()
	}
	if len(s.InactiveDates) > 0 {
		inactives = s.InactiveDates.String()
	} else if len(s.InactiveDays) > 0 {
		inactives = s.InactiveDays.String()
	}
	return fmt.Sprintf("actives: %s, times: %s, inactives: %s", actives, s.Times, inactives)
}

// Empty reports whether the schedule has no active dates or days.
func (s Schedule) Empty() bool {
	return len(s.ActiveDates) == 0 && len(s.ActiveDays) == 0
}

func (s Schedule) activeOn(d units.Date) bool {
	if len(s.ActiveDates) > 0 {
		return s.ActiveDates.Cover(d)
	}
	return s.ActiveDays.Cover(d.Weekday())
}

func (s Schedule) inactiveOn(d units.Date) bool {
	return s.InactiveDates.Cover(d) || s.InactiveDays.Cover(d.Weekday())
}

// Slice extracts the sub-schedule for the date window [from, to]. The result
// always has date-typed actives (consecutive dates merged into ranges) and no
// inactives: exceptions are already applied to the kept dates.
func (s Schedule) Slice(from, to units.Date) Schedule {
	var kept Dates
	for d := from; !d.After(to); d = d.Next() {
		if s.activeOn(d) && !s.inactiveOn(d) {
			kept = append(kept, SingleDate(d))
		}
	}
	return Schedule{ActiveDates: kept.Cluster(), Times: s.Times, base: s.base}
}

// Resolve computes concrete clock times for all sunrise/sunset based time
// ranges for the given date and location. Resolved sunrise times are rounded
// up and sunset times down to the nearest 5 minutes.
func (s Schedule) Resolve(on units.Date, at units.Point) Schedule {
	resolved := make(Times, len(s.Times))
	for i, r := range s.Times {
		resolved[i] = units.TimeRange{
			From: r.From.Resolve(on, at, 5),
			To:   r.To.Resolve(on, at, 5),
		}
	}
	s.Times = resolved
	return s
}

// Active reports whether the schedule is active at the given instant for the
// given location.
func (s Schedule) Active(at time.Time, location units.Point) bool {
	date := units.DateOf(at)
	day := s.Resolve(date, location).Slice(date, date)
	if day.Empty() {
		return false
	}
	return day.Times.Cover(units.ClockOf(at))
}

// LastDate returns the latest active date. The second return value is false
// for weekday-typed schedules which have no last date.
func (s Schedule) LastDate() (units.Date, bool) {
	if len(s.ActiveDates) == 0 {
		return units.Date{}, false
	}
	return s.ActiveDates[len(s.ActiveDates)-1].To, true
}
