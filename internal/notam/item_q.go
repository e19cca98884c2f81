package notam

import (
	"regexp"
	"strconv"
	"strings"

	"notam_parser/internal/lookup"
	"notam_parser/internal/units"
)

// The Q item grammar. Traffic, purpose and scope fields may carry trailing
// padding spaces in real-world messages.
var qRE = regexp.MustCompile(
	`^Q\) ?(?P<fir>` + icaoP + `)/` +
		`Q(?P<subject>[A-Z]{2})(?P<condition>[A-Z]{2})/` +
		`(?P<traffic>IV|[IVK] ?)/` +
		`(?P<purpose>NBO|BO ?|[BMK] {0,2})/` +
		`(?P<scope>A[EW]|[AEWK] ?)/` +
		`(?P<lower>\d{3})/` +
		`(?P<upper>\d{3})/` +
		`(?P<lat_deg>\d{2})(?P<lat_min>\d{2})(?P<lat_dir>[NS])` +
		`(?P<lon_deg>\d{3})(?P<lon_min>\d{2})(?P<lon_dir>[EW])` +
		`(?P<radius>\d{3})$`)

// Q is the context item: affected FIR, subject and condition Q codes,
// traffic, purpose and scope, the vertical extent and the affected area.
type Q struct {
	text           string
	FIR            string
	SubjectGroup   string
	Subject        string
	ConditionGroup string
	Condition      string
	Traffic        string
	Purpose        []string
	Scope          []string
	LowerLimit     units.Altitude
	UpperLimit     units.Altitude
	CenterPoint    units.Point
	Radius         units.Distance
}

func parseQ(text string) (*Q, error) {
	m := qRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match Q item", TypeQ, text)
	}
	group := captures(qRE, m)
	q := &Q{text: text, FIR: group["fir"]}

	var err error
	if q.SubjectGroup, err = lookup.SubjectGroup(group["subject"][:1]); err != nil {
		return nil, err
	}
	if q.Subject, err = lookup.Subject(group["subject"]); err != nil {
		return nil, err
	}
	if q.ConditionGroup, err = lookup.ConditionGroup(group["condition"][:1]); err != nil {
		return nil, err
	}
	if q.Condition, err = lookup.Condition(group["condition"]); err != nil {
		return nil, err
	}
	if q.Traffic, err = lookup.Traffic(strings.TrimSpace(group["traffic"])); err != nil {
		return nil, err
	}
	for _, code := range strings.TrimSpace(group["purpose"]) {
		purpose, err := lookup.Purpose(string(code))
		if err != nil {
			return nil, err
		}
		q.Purpose = append(q.Purpose, purpose)
	}
	for _, code := range strings.TrimSpace(group["scope"]) {
		scope, err := lookup.Scope(string(code))
		if err != nil {
			return nil, err
		}
		q.Scope = append(q.Scope, scope)
	}

	q.LowerLimit = flightLevelLimit(group["lower"])
	q.UpperLimit = flightLevelLimit(group["upper"])
	q.CenterPoint = centerPoint(group)
	radius, _ := strconv.Atoi(group["radius"])
	q.Radius = units.Distance{NM: radius}
	return q, nil
}

// flightLevelLimit maps a three digit flight level to an altitude: 000 is
// the ground, 999 unlimited.
func flightLevelLimit(raw string) units.Altitude {
	switch n, _ := strconv.Atoi(raw); n {
	case 0:
		return units.Ground
	case 999:
		return units.Unlimited
	default:
		return units.Altitude{Value: n, Datum: units.QNE}
	}
}

func centerPoint(group map[string]string) units.Point {
	lat := coordinate(group["lat_deg"], group["lat_min"])
	if group["lat_dir"] == "S" {
		lat = -lat
	}
	lon := coordinate(group["lon_deg"], group["lon_min"])
	if group["lon_dir"] == "W" {
		lon = -lon
	}
	return units.Point{Lat: lat, Lon: lon}
}

func coordinate(deg, min string) float64 {
	d, _ := strconv.Atoi(deg)
	m, _ := strconv.Atoi(min)
	return float64(d) + float64(m)/60
}

func (q *Q) Type() ItemType { return TypeQ }
func (q *Q) Text() string   { return q.text }

func (q *Q) Merge(data Data) Data {
	return data.With("fir", q.FIR).
		With("subject_group", q.SubjectGroup).
		With("subject", q.Subject).
		With("condition_group", q.ConditionGroup).
		With("condition", q.Condition).
		With("traffic", q.Traffic).
		With("purpose", q.Purpose).
		With("scope", q.Scope).
		With("lower_limit", q.LowerLimit).
		With("upper_limit", q.UpperLimit).
		With("center_point", q.CenterPoint).
		With("radius", q.Radius)
}
