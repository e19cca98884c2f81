package notam

import (
	"regexp"
	"strconv"
	"strings"
)

var aRE = regexp.MustCompile(
	`^A\) ?(?P<locations>(?:` + icaoP + ` ?)+)` +
		`(?:(?P<part_index>\d+) OF (?P<part_index_max>\d+))?$`)

// A is the locations item: the ICAO codes affected by the NOTAM, plus the
// part marker of oversized multi-part messages.
type A struct {
	text         string
	Locations    []string
	PartIndex    int
	PartIndexMax int
}

func parseA(text string) (*A, error) {
	m := aRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match A item", TypeA, text)
	}
	group := captures(aRE, m)
	a := &A{
		text:         text,
		Locations:    strings.Fields(group["locations"]),
		PartIndex:    1,
		PartIndexMax: 1,
	}
	if group["part_index"] != "" {
		a.PartIndex, _ = strconv.Atoi(group["part_index"])
		a.PartIndexMax, _ = strconv.Atoi(group["part_index_max"])
	}
	return a, nil
}

func (a *A) Type() ItemType { return TypeA }
func (a *A) Text() string   { return a.text }

func (a *A) Merge(data Data) Data {
	return data.With("locations", a.Locations).
		With("part_index", a.PartIndex).
		With("part_index_max", a.PartIndexMax)
}
