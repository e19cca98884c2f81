package units

import (
	"testing"
	"time"
)

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2022, time.February, 27)
	if got := d.Next(); got != NewDate(2022, time.February, 28) {
		t.Errorf("Next() = %s", got)
	}
	if got := d.AddDays(2); got != NewDate(2022, time.March, 1) {
		t.Errorf("AddDays(2) = %s", got)
	}
	if got := NewDate(2022, time.March, 1).Prev(); got != NewDate(2022, time.February, 28) {
		t.Errorf("Prev() = %s", got)
	}
	if got := d.DaysUntil(NewDate(2022, time.March, 4)); got != 5 {
		t.Errorf("DaysUntil = %d, want 5", got)
	}
	if !d.Before(NewDate(2022, time.March, 1)) {
		t.Error("Before = false")
	}
	if !NewDate(2023, time.January, 1).After(d) {
		t.Error("After = false")
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2022, time.February, 3).String(); got != "2022-02-03" {
		t.Errorf("String() = %q", got)
	}
}

func TestDateWithMonth(t *testing.T) {
	base := NewDate(2022, time.February, 1)
	if got := base.WithMonth(time.March, true); got.Year != 2022 {
		t.Errorf("later month wrapped: %s", got)
	}
	if got := base.WithMonth(time.January, true); got.Year != 2023 {
		t.Errorf("earlier month did not wrap: %s", got)
	}
	if got := base.WithMonth(time.January, false); got.Year != 2022 {
		t.Errorf("non-wrapping replace changed year: %s", got)
	}
}

func TestDateWeekday(t *testing.T) {
	cases := []struct {
		date Date
		want Day
	}{
		{NewDate(2022, time.January, 1), Saturday},
		{NewDate(2022, time.January, 2), Sunday},
		{NewDate(2022, time.January, 3), Monday},
	}
	for _, c := range cases {
		if got := c.date.Weekday(); got != c.want {
			t.Errorf("%s Weekday = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestDayNext(t *testing.T) {
	if got := Sunday.Next(); got != Monday {
		t.Errorf("Sunday.Next() = %s", got)
	}
	if got := AnyDay.Next(); got != AnyDay {
		t.Errorf("AnyDay.Next() = %s", got)
	}
}

func TestExpandYear(t *testing.T) {
	century := time.Now().Year() / 100 * 100
	if got := ExpandYear(22); got != century+22 {
		t.Errorf("ExpandYear(22) = %d", got)
	}
}
