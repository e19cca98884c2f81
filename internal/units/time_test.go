package units

import (
	"testing"
	"time"
)

func TestTimeString(t *testing.T) {
	cases := []struct {
		tim  Time
		want string
	}{
		{Clock(7, 0), "07:00"},
		{Clock(0, 5), "00:05"},
		{EndOfDay, "24:00"},
		{EventTime(Sunrise, 0), "sunrise"},
		{EventTime(Sunrise, 30), "sunrise+30min"},
		{EventTime(Sunset, -25), "sunset-25min"},
	}
	for _, c := range cases {
		if got := c.tim.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestTimeRangeCover(t *testing.T) {
	r := TimeRange{From: Clock(9, 0), To: Clock(17, 0)}
	for _, tim := range []Time{Clock(9, 0), Clock(12, 30), Clock(17, 0)} {
		if !r.Cover(tim) {
			t.Errorf("Cover(%s) = false", tim)
		}
	}
	for _, tim := range []Time{Clock(8, 59), Clock(17, 1)} {
		if r.Cover(tim) {
			t.Errorf("Cover(%s) = true", tim)
		}
	}
	unresolved := TimeRange{From: EventTime(Sunrise, 0), To: Clock(17, 0)}
	if unresolved.Cover(Clock(12, 0)) {
		t.Error("unresolved range must not cover")
	}
}

func TestCrossesMidnight(t *testing.T) {
	cases := []struct {
		r    TimeRange
		want bool
	}{
		{TimeRange{From: Clock(22, 0), To: Clock(5, 0)}, true},
		{TimeRange{From: Clock(7, 0), To: Clock(11, 0)}, false},
		// Nominal hours: sunset 18:00 to sunrise 06:00 crosses, the
		// reverse does not. Offsets are ignored.
		{TimeRange{From: EventTime(Sunset, 0), To: EventTime(Sunrise, 0)}, true},
		{TimeRange{From: EventTime(Sunrise, 0), To: EventTime(Sunset, 0)}, false},
		{TimeRange{From: EventTime(Sunrise, -30), To: Clock(5, 0)}, true},
	}
	for _, c := range cases {
		if got := c.r.CrossesMidnight(); got != c.want {
			t.Errorf("%s CrossesMidnight = %v, want %v", c.r, got, c.want)
		}
	}
}

// Paris area, the same location the resolution rounding expectations below
// are calibrated against.
var lfpg = Point{Lat: 49.01614, Lon: 2.54423}

func TestSolarMinutes(t *testing.T) {
	rise, ok := SolarMinutes(Sunrise, NewDate(2025, time.July, 1), lfpg)
	if !ok || rise != 3*60+49 {
		t.Errorf("sunrise = %d ok=%v, want 229", rise, ok)
	}
	set, ok := SolarMinutes(Sunset, NewDate(2025, time.July, 1), lfpg)
	if !ok || set != 19*60+58 {
		t.Errorf("sunset = %d ok=%v, want 1198", set, ok)
	}

	// Polar day: no sunrise at 78N around the June solstice.
	if _, ok := SolarMinutes(Sunrise, NewDate(2025, time.June, 21), Point{Lat: 78.22, Lon: 15.65}); ok {
		t.Error("expected no sunrise during polar day")
	}
}

func TestTimeResolve(t *testing.T) {
	on := NewDate(2025, time.July, 1)

	// Sunrise rounds up, sunset down, both to 5 minutes.
	if got := EventTime(Sunrise, 0).Resolve(on, lfpg, 5); got != Clock(3, 50) {
		t.Errorf("sunrise resolved to %s, want 03:50", got)
	}
	if got := EventTime(Sunset, 0).Resolve(on, lfpg, 5); got != Clock(19, 55) {
		t.Errorf("sunset resolved to %s, want 19:55", got)
	}

	// The offset applies before rounding.
	if got := EventTime(Sunset, -30).Resolve(on, lfpg, 5); got != Clock(19, 25) {
		t.Errorf("sunset-30min resolved to %s, want 19:25", got)
	}

	// Clock times pass through untouched.
	if got := Clock(12, 34).Resolve(on, lfpg, 5); got != Clock(12, 34) {
		t.Errorf("clock time resolved to %s", got)
	}

	// Polar day falls back to the nominal hour.
	if got := EventTime(Sunrise, 0).Resolve(NewDate(2025, time.June, 21), Point{Lat: 78.22, Lon: 15.65}, 5); got != Clock(6, 0) {
		t.Errorf("polar sunrise resolved to %s, want 06:00", got)
	}
}
