package units

import (
	"fmt"
	"time"
)

// Event is a symbolic solar event a time of day can be anchored to.
type Event int

const (
	NoEvent Event = iota
	Sunrise
	Sunset
)

// Nominal clock approximations used to decide whether a time range crosses
// midnight before the event is resolved for a concrete date and location.
const (
	nominalSunrise = 6 * 60
	nominalSunset  = 18 * 60
)

// Time is a time of day in UTC: either a clock time (including the 24:00 end
// of day marker) or a sunrise/sunset event with a signed minute offset.
type Time struct {
	Minutes int   // minutes since midnight when Event is NoEvent
	Event   Event // solar event, NoEvent for clock times
	Delta   int   // signed minute offset from the event
}

// Clock returns the clock time for the given hour and minute.
func Clock(hour, minute int) Time {
	return Time{Minutes: hour*60 + minute}
}

// EventTime returns a symbolic time anchored to a solar event shifted by
// delta minutes.
func EventTime(event Event, delta int) Time {
	return Time{Event: event, Delta: delta}
}

// ClockOf returns the clock time of the given instant in UTC.
func ClockOf(t time.Time) Time {
	u := t.UTC()
	return Clock(u.Hour(), u.Minute())
}

// BeginningOfDay and EndOfDay delimit a full day. The end of day is the
// 24:00 marker, distinct from 00:00.
var (
	BeginningOfDay = Clock(0, 0)
	EndOfDay       = Clock(24, 0)
)

func (t Time) String() string {
	switch t.Event {
	case NoEvent:
		return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
	case Sunrise:
		return eventString("sunrise", t.Delta)
	default:
		return eventString("sunset", t.Delta)
	}
}

func eventString(name string, delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("%s+%dmin", name, delta)
	case delta < 0:
		return fmt.Sprintf("%s-%dmin", name, -delta)
	default:
		return name
	}
}

// NominalMinutes returns the clock minutes of t, substituting the nominal
// hour (06:00 or 18:00, offsets ignored) for unresolved solar events.
func (t Time) NominalMinutes() int {
	switch t.Event {
	case Sunrise:
		return nominalSunrise
	case Sunset:
		return nominalSunset
	default:
		return t.Minutes
	}
}

// Resolve computes the concrete clock time of a solar event time for the
// given date and location, rounding sunrise up and sunset down to the nearest
// multiple of round minutes. Clock times are returned unchanged. Polar days
// and nights fall back to the nominal event hours.
func (t Time) Resolve(on Date, at Point, round int) Time {
	if t.Event == NoEvent {
		return t
	}
	minutes, ok := SolarMinutes(t.Event, on, at)
	if !ok {
		minutes = t.NominalMinutes() - t.Delta
	}
	minutes += t.Delta
	if round > 1 {
		if t.Event == Sunrise {
			minutes += round - 1
		}
		minutes = minutes / round * round
	}
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 24*60 {
		minutes = 24 * 60
	}
	return Time{Minutes: minutes}
}

// TimeRange is a time of day range. After midnight splitting, From never
// exceeds To.
type TimeRange struct {
	From, To Time
}

func (r TimeRange) String() string {
	return r.From.String() + ".." + r.To.String()
}

// Cover reports whether the given clock time falls within the range,
// boundaries included. Both endpoints must be resolved clock times.
func (r TimeRange) Cover(t Time) bool {
	if r.From.Event != NoEvent || r.To.Event != NoEvent || t.Event != NoEvent {
		return false
	}
	return r.From.Minutes <= t.Minutes && t.Minutes <= r.To.Minutes
}

// CrossesMidnight reports whether the range wraps past the end of day, using
// nominal hours for unresolved solar events.
func (r TimeRange) CrossesMidnight() bool {
	return r.From.NominalMinutes() > r.To.NominalMinutes()
}
