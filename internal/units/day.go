package units

import "time"

// Day is a day of the week. The ordering follows the aeronautical convention
// of weeks starting on Monday. AnyDay is the wildcard used by DAILY schedules.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	AnyDay
)

var dayNames = [...]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "any",
}

func (d Day) String() string {
	if d < Monday || d > AnyDay {
		return "invalid"
	}
	return dayNames[d]
}

// Next returns the following day of the week. AnyDay remains AnyDay.
func (d Day) Next() Day {
	if d == AnyDay {
		return AnyDay
	}
	return (d + 1) % 7
}

func dayOfWeekday(wd time.Weekday) Day {
	if wd == time.Sunday {
		return Sunday
	}
	return Day(wd - time.Monday)
}
