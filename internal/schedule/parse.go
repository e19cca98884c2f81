package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"notam_parser/internal/units"
)

// Pattern fragments of the D item timesheet grammar. Dates are two digit
// days of month, times either four digit clock times or sunrise/sunset
// events with an optional minute offset.
const (
	dateP  = `(?:[0-2]\d|3[01])`
	dayP   = `(?:MON|TUE|WED|THU|FRI|SAT|SUN|DAILY|DLY)`
	monthP = `(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)`
	hcodeP = `(?:H24|HJ|HN)`
	hourP  = `(?:[01]\d|2[0-4])[0-5]\d`
	opP    = `(?:PLUS|MINUS)`
	eventP = `(?:SR|SS)(?: ` + opP + `\d+)?`
	timeP  = `(?:` + hourP + `|` + eventP + `)`
	rangeP = `(?:` + timeP + `-` + timeP + `|` + hcodeP + `)`
)

var (
	datetimeRangeRE = regexp.MustCompile(
		`^(?:(` + monthP + `) )?(` + dateP + `) (` + timeP + `)-(?:(` + monthP + `) )?(` + dateP + `) (` + timeP + `)$`)
	dayLeadRE  = regexp.MustCompile(`^(?:` + dayP + `|` + rangeP + `)`)
	dateLeadRE = regexp.MustCompile(`^(?:` + dateP + `|` + monthP + `)`)

	timesSeqRE = regexp.MustCompile(`(?: ?` + rangeP + `)+`)

	dateRangeTokRE  = regexp.MustCompile(`^(` + dateP + `)-(?:(` + monthP + `) )?(` + dateP + `)`)
	singleDateTokRE = regexp.MustCompile(`^` + dateP)
	monthTokRE      = regexp.MustCompile(`^` + monthP)

	hourRE  = regexp.MustCompile(`^([01]\d|2[0-4])([0-5]\d)$`)
	eventRE = regexp.MustCompile(`^(SR|SS)(?: (PLUS|MINUS)(\d+))?$`)
)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var days = map[string]units.Day{
	"MON": units.Monday, "TUE": units.Tuesday, "WED": units.Wednesday,
	"THU": units.Thursday, "FRI": units.Friday, "SAT": units.Saturday,
	"SUN": units.Sunday, "DAILY": units.AnyDay, "DLY": units.AnyDay,
}

// Hour code time ranges. HN crosses midnight and is split like any other
// crossing range.
var (
	h24 = units.TimeRange{From: units.BeginningOfDay, To: units.EndOfDay}
	hj  = units.TimeRange{From: units.EventTime(units.Sunrise, 0), To: units.EventTime(units.Sunset, 0)}
	hn  = units.TimeRange{From: units.EventTime(units.Sunset, 0), To: units.EventTime(units.Sunrise, 0)}
)

var collapseWS = regexp.MustCompile(`\s+`)
var dashWS = regexp.MustCompile(` *- *`)

// Parse parses one timesheet clause of a D item into an ordered, non-empty
// list of schedules. The base date supplies the month and year assumed when
// the clause omits them; its day is ignored.
func Parse(clause string, base units.Date) ([]Schedule, error) {
	p := parser{base: base.WithDay(1)}

	cleaned := collapseWS.ReplaceAllString(clause, " ")
	cleaned = strings.TrimSpace(dashWS.ReplaceAllString(cleaned, "-"))
	rules, exceptions, _ := strings.Cut(cleaned, " EXC ")

	switch {
	case datetimeRangeRE.MatchString(rules):
		return p.parseDatetimes(rules, exceptions)
	case dayLeadRE.MatchString(rules):
		return p.parseUnits(rules, exceptions, true)
	case dateLeadRE.MatchString(rules):
		return p.parseUnits(rules, exceptions, false)
	default:
		return nil, fmt.Errorf("unrecognized schedule %q", rules)
	}
}

type parser struct {
	base units.Date
}

// parseDatetimes handles the explicit day-and-time-on-both-ends family such
// as "08 0800-12 2000". The span is cut at day boundaries so that no single
// schedule covers more than one day unless it is a full H24 day.
func (p *parser) parseDatetimes(rules, exceptions string) ([]Schedule, error) {
	m := datetimeRangeRE.FindStringSubmatch(rules)
	from, err := p.datetime(m[1], m[2], m[3])
	if err != nil {
		return nil, err
	}
	to, err := p.datetime(m[4], m[5], m[6])
	if err != nil {
		return nil, err
	}
	delta := from.date.DaysUntil(to.date)
	if delta < 1 {
		return nil, fmt.Errorf("invalid datetime range %q", rules)
	}
	inactives, err := p.daysFrom(exceptions, false)
	if err != nil {
		return nil, err
	}

	schedules := []Schedule{{
		ActiveDates:  Dates{SingleDate(from.date)},
		Times:        Times{{From: from.time, To: units.EndOfDay}},
		InactiveDays: inactives,
		base:         p.base,
	}}
	if delta > 1 {
		schedules = append(schedules, Schedule{
			ActiveDates:  Dates{{From: from.date.Next(), To: to.date.Prev()}},
			Times:        Times{h24},
			InactiveDays: inactives,
			base:         p.base,
		})
	}
	return append(schedules, Schedule{
		ActiveDates:  Dates{SingleDate(to.date)},
		Times:        Times{{From: units.BeginningOfDay, To: to.time}},
		InactiveDays: inactives,
		base:         p.base,
	}), nil
}

type datetime struct {
	date units.Date
	time units.Time
}

func (p *parser) datetime(month, day, tim string) (datetime, error) {
	d := p.base
	if month != "" {
		d = d.WithMonth(months[month], false)
	}
	num, _ := strconv.Atoi(day)
	t, err := timeFrom(tim)
	if err != nil {
		return datetime{}, err
	}
	return datetime{date: d.WithDay(num), time: t}, nil
}

// parseUnits handles the day-leading family (actives are weekdays, date
// exceptions) and the date-leading family (actives are dates, weekday
// exceptions). Time ranges crossing midnight split the schedule in two, with
// the second half's actives shifted forward by one day.
func (p *parser) parseUnits(rules, exceptions string, dayLeading bool) ([]Schedule, error) {
	loc := timesSeqRE.FindStringIndex(rules)
	if loc == nil {
		return nil, fmt.Errorf("no time ranges in %q", rules)
	}
	if loc[1] != len(rules) {
		return nil, fmt.Errorf("unrecognized part after times %q", rules[loc[1]:])
	}
	unitPart := strings.TrimSpace(rules[:loc[0]])
	times, err := timesFrom(strings.TrimSpace(rules[loc[0]:]))
	if err != nil {
		return nil, err
	}

	proto := Schedule{base: p.base}
	if dayLeading {
		if proto.ActiveDays, err = p.daysFrom(unitPart, true); err != nil {
			return nil, err
		}
		if proto.InactiveDates, err = p.datesFrom(exceptions); err != nil {
			return nil, err
		}
	} else {
		if proto.ActiveDates, err = p.datesFrom(unitPart); err != nil {
			return nil, err
		}
		if proto.InactiveDays, err = p.daysFrom(exceptions, false); err != nil {
			return nil, err
		}
	}

	crossing := false
	for _, tr := range times {
		if tr.CrossesMidnight() {
			crossing = true
			break
		}
	}
	if !crossing {
		proto.Times = times
		return []Schedule{proto}, nil
	}

	var schedules []Schedule
	for _, tr := range times {
		if !tr.CrossesMidnight() {
			one := proto
			one.Times = Times{tr}
			schedules = append(schedules, one)
			continue
		}
		first := proto
		first.Times = Times{{From: tr.From, To: units.EndOfDay}}
		second := proto
		if len(proto.ActiveDates) > 0 {
			second.ActiveDates = proto.ActiveDates.Next()
		}
		if len(proto.ActiveDays) > 0 {
			second.ActiveDays = proto.ActiveDays.Next()
		}
		second.Times = Times{{From: units.BeginningOfDay, To: tr.To}}
		schedules = append(schedules, first, second)
	}
	return schedules, nil
}

// datesFrom scans a date list such as "27-MAR 02 06-APR 10". A month token
// updates the running base month; a range crossing a month boundary wraps
// into the next occurrence of the end month.
func (p *parser) datesFrom(s string) (Dates, error) {
	if s == "" {
		return nil, nil
	}
	dates := Dates{}
	base := p.base
	for idx := 0; idx < len(s); {
		rest := s[idx:]
		if m := dateRangeTokRE.FindStringSubmatch(rest); m != nil {
			month := base.Month
			if m[2] != "" {
				month = months[m[2]]
			}
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[3])
			toBase := base.WithMonth(month, true)
			dates = append(dates, DateRange{From: base.WithDay(from), To: toBase.WithDay(to)})
			base = toBase
			idx += len(m[0]) + 1
		} else if m := monthTokRE.FindString(rest); m != "" {
			base = base.WithMonth(months[m], false)
			idx += len(m) + 1
		} else if m := singleDateTokRE.FindString(rest); m != "" {
			day, _ := strconv.Atoi(m)
			dates = append(dates, SingleDate(base.WithDay(day)))
			idx += len(m) + 1
		} else {
			return nil, fmt.Errorf("unrecognized date %q", rest)
		}
	}
	return dates, nil
}

// daysFrom parses a weekday list such as "MON WED-FRI SUN". An empty string
// means the wildcard any day when implicitAny is set (a time range with no
// preceding day token applies daily), or no days at all otherwise.
func (p *parser) daysFrom(s string, implicitAny bool) (Days, error) {
	if s == "" {
		if implicitAny {
			return Days{SingleDay(units.AnyDay)}, nil
		}
		return nil, nil
	}
	result := Days{}
	for _, token := range strings.Split(s, " ") {
		from, to, isRange := strings.Cut(token, "-")
		fromDay, ok := days[from]
		if !ok {
			return nil, fmt.Errorf("unrecognized day %q", token)
		}
		if !isRange {
			result = append(result, SingleDay(fromDay))
			continue
		}
		toDay, ok := days[to]
		if !ok {
			return nil, fmt.Errorf("unrecognized day %q", token)
		}
		result = append(result, DayRange{From: fromDay, To: toDay})
	}
	return result, nil
}

// timesFrom parses a space separated list of time range tokens. PLUS and
// MINUS continuations belong to the preceding event token ("SR PLUS15-1130"
// is one token).
func timesFrom(s string) (Times, error) {
	var tokens []string
	for _, tok := range strings.Split(s, " ") {
		if len(tokens) > 0 && (strings.HasPrefix(tok, "PLUS") || strings.HasPrefix(tok, "MINUS")) {
			tokens[len(tokens)-1] += " " + tok
		} else {
			tokens = append(tokens, tok)
		}
	}
	times := make(Times, 0, len(tokens))
	for _, tok := range tokens {
		tr, err := timeRangeFrom(tok)
		if err != nil {
			return nil, err
		}
		times = append(times, tr)
	}
	return times, nil
}

func timeRangeFrom(s string) (units.TimeRange, error) {
	switch s {
	case "H24":
		return h24, nil
	case "HJ":
		return hj, nil
	case "HN":
		return hn, nil
	}
	rawFrom, rawTo, found := cutTimeRange(s)
	if !found {
		return units.TimeRange{}, fmt.Errorf("unrecognized time range %q", s)
	}
	from, err := timeFrom(rawFrom)
	if err != nil {
		return units.TimeRange{}, err
	}
	to, err := timeFrom(rawTo)
	if err != nil {
		return units.TimeRange{}, err
	}
	return units.TimeRange{From: from, To: to}, nil
}

// cutTimeRange splits a time range token at the dash separating its two time
// tokens. Neither clock nor event times contain dashes.
func cutTimeRange(s string) (from, to string, found bool) {
	return strings.Cut(s, "-")
}

func timeFrom(s string) (units.Time, error) {
	if m := hourRE.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return units.Clock(hour, minute), nil
	}
	if m := eventRE.FindStringSubmatch(s); m != nil {
		event := units.Sunrise
		if m[1] == "SS" {
			event = units.Sunset
		}
		delta := 0
		if m[2] != "" {
			delta, _ = strconv.Atoi(m[3])
			if m[2] == "MINUS" {
				delta = -delta
			}
		}
		return units.EventTime(event, delta), nil
	}
	return units.Time{}, fmt.Errorf("unrecognized time %q", s)
}
