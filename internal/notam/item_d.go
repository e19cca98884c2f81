package notam

import (
	"regexp"
	"strings"
	"time"

	"notam_parser/internal/schedule"
	"notam_parser/internal/units"
)

var (
	dPrefixRE = regexp.MustCompile(`^D\) ?`)
	dSpaceRE  = regexp.MustCompile(`\s+`)
	dDashRE   = regexp.MustCompile(` ?- ?`)
	dCommaRE  = regexp.MustCompile(` ?, ?`)
)

// D is the schedule item: one or more activity schedules relative to the
// validity period, comma separated.
type D struct {
	text        string
	Schedules   []schedule.Schedule
	center      units.Point
	effectiveAt time.Time
}

func parseD(text string, data Data) (*D, error) {
	effectiveAt, ok := data["effective_at"].(time.Time)
	if !ok {
		return nil, parseErr("D item requires effective_at from B item", TypeD, text)
	}
	center, _ := data["center_point"].(units.Point)
	cleaned := dSpaceRE.ReplaceAllString(text, " ")
	cleaned = dDashRE.ReplaceAllString(cleaned, "-")
	cleaned = dCommaRE.ReplaceAllString(cleaned, ",")
	cleaned = strings.TrimSpace(dPrefixRE.ReplaceAllString(cleaned, ""))
	d := &D{text: text, center: center, effectiveAt: effectiveAt}
	base := units.DateOf(effectiveAt)
	for _, clause := range strings.Split(cleaned, ",") {
		schedules, err := schedule.Parse(clause, base)
		if err != nil {
			return nil, &ParseError{Msg: "invalid D item", ItemType: TypeD, Text: text, Err: err}
		}
		d.Schedules = append(d.Schedules, schedules...)
	}
	return d, nil
}

func (d *D) Type() ItemType { return TypeD }
func (d *D) Text() string   { return d.text }

// Active reports whether any schedule covers the given instant.
func (d *D) Active(at time.Time) bool {
	for _, s := range d.Schedules {
		if s.Active(at, d.center) {
			return true
		}
	}
	return false
}

// FiveDaySchedules resolves the schedules against actual sunrise and sunset
// times over a five day window starting at now or the start of validity,
// whichever is later. Event times are resolved once, for the first day of
// the window; within five days they drift by at most a few minutes.
func (d *D) FiveDaySchedules(now time.Time) []schedule.Schedule {
	base := now
	if d.effectiveAt.After(base) {
		base = d.effectiveAt
	}
	from := units.DateOf(base)
	to := from.AddDays(4)
	var out []schedule.Schedule
	for _, s := range d.Schedules {
		sliced := s.Slice(from, to).Resolve(from, d.center)
		if !sliced.Empty() {
			out = append(out, sliced)
		}
	}
	return out
}

func (d *D) Merge(data Data) Data {
	return data.With("schedules", d.Schedules)
}
