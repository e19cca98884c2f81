package schedule

import (
	"testing"
	"time"

	"notam_parser/internal/units"
)

var paris = units.Point{Lat: 49.01614, Lon: 2.54423}

func TestSlice(t *testing.T) {
	s := mustParse(t, "MON-FRI 0700-1100")[0]
	sliced := s.Slice(units.NewDate(2000, time.February, 1), units.NewDate(2000, time.February, 13))

	// 2000-02-01 was a Tuesday; weekends drop out and consecutive
	// weekdays cluster into ranges.
	want := "[2000-02-01..2000-02-04, 2000-02-07..2000-02-11]"
	if got := sliced.ActiveDates.String(); got != want {
		t.Errorf("dates = %s, want %s", got, want)
	}
	if len(sliced.InactiveDates) != 0 || len(sliced.InactiveDays) != 0 {
		t.Error("slice must not keep inactives")
	}
	if got := sliced.Times.String(); got != "[07:00..11:00]" {
		t.Errorf("times = %s", got)
	}
}

func TestSliceAppliesExceptions(t *testing.T) {
	s := mustParse(t, "01-28 0700-1700 EXC SAT SUN")[0]
	sliced := s.Slice(units.NewDate(2000, time.February, 1), units.NewDate(2000, time.February, 7))
	want := "[2000-02-01..2000-02-04, 2000-02-07]"
	if got := sliced.ActiveDates.String(); got != want {
		t.Errorf("dates = %s, want %s", got, want)
	}
}

func TestSliceEmpty(t *testing.T) {
	s := mustParse(t, "15 0700-1700")[0]
	sliced := s.Slice(units.NewDate(2000, time.February, 1), units.NewDate(2000, time.February, 5))
	if !sliced.Empty() {
		t.Errorf("expected empty slice, got %s", sliced)
	}
}

func TestResolve(t *testing.T) {
	s := mustParse(t, "HJ")[0]
	resolved := s.Resolve(units.NewDate(2025, time.July, 1), paris)
	if got := resolved.Times.String(); got != "[03:50..19:55]" {
		t.Errorf("times = %s", got)
	}

	// Clock times survive resolution untouched.
	s = mustParse(t, "0900-1700")[0]
	resolved = s.Resolve(units.NewDate(2025, time.July, 1), paris)
	if got := resolved.Times.String(); got != "[09:00..17:00]" {
		t.Errorf("times = %s", got)
	}
}

func TestActive(t *testing.T) {
	s := mustParse(t, "MON-FRI 0700-1100")[0]
	cases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2000, time.February, 1, 8, 0, 0, 0, time.UTC), true},   // Tuesday in range
		{time.Date(2000, time.February, 1, 7, 0, 0, 0, time.UTC), true},   // boundary
		{time.Date(2000, time.February, 1, 11, 0, 0, 0, time.UTC), true},  // boundary
		{time.Date(2000, time.February, 1, 12, 0, 0, 0, time.UTC), false}, // after hours
		{time.Date(2000, time.February, 5, 8, 0, 0, 0, time.UTC), false},  // Saturday
	}
	for _, c := range cases {
		if got := s.Active(c.at, paris); got != c.want {
			t.Errorf("Active(%s) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestActiveResolvesEvents(t *testing.T) {
	s := mustParse(t, "HJ")[0]
	if !s.Active(time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC), paris) {
		t.Error("midday must be between sunrise and sunset")
	}
	if s.Active(time.Date(2025, time.July, 1, 3, 0, 0, 0, time.UTC), paris) {
		t.Error("03:00 is before sunrise")
	}
}

func TestActiveAcrossMidnightSplit(t *testing.T) {
	schedules := mustParse(t, "FRI 2200-0500")
	at := time.Date(2000, time.February, 5, 2, 0, 0, 0, time.UTC) // Saturday 02:00
	active := false
	for _, s := range schedules {
		if s.Active(at, paris) {
			active = true
		}
	}
	if !active {
		t.Error("Saturday 02:00 falls in the Friday night window")
	}
}

func TestLastDate(t *testing.T) {
	s := mustParse(t, "27-MAR 02 06-APR 10 0430-1800")[0]
	last, ok := s.LastDate()
	if !ok || last != units.NewDate(2000, time.April, 10) {
		t.Errorf("LastDate = %s ok=%v", last, ok)
	}

	if _, ok := mustParse(t, "MON-FRI 0700-1100")[0].LastDate(); ok {
		t.Error("weekday schedules have no last date")
	}
}

func TestDaysCoverWrap(t *testing.T) {
	ds := Days{{From: units.Saturday, To: units.Monday}}
	for _, d := range []units.Day{units.Saturday, units.Sunday, units.Monday} {
		if !ds.Cover(d) {
			t.Errorf("Cover(%s) = false", d)
		}
	}
	if ds.Cover(units.Wednesday) {
		t.Error("Cover(wednesday) = true")
	}
}

func TestDatesCluster(t *testing.T) {
	ds := Dates{
		SingleDate(units.NewDate(2000, time.February, 1)),
		SingleDate(units.NewDate(2000, time.February, 2)),
		SingleDate(units.NewDate(2000, time.February, 4)),
	}
	if got := ds.Cluster().String(); got != "[2000-02-01..2000-02-02, 2000-02-04]" {
		t.Errorf("Cluster = %s", got)
	}
}
