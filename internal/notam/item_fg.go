package notam

import (
	"regexp"

	"notam_parser/internal/units"
)

const limitP = `(?:(?P<sentinel>SFC|GND|UNL)|(?P<value>\d+) ?(?P<unit>FT|M) ?(?P<base>AMSL|AGL)|FL ?(?P<fl>\d{1,3}))`

var (
	fRE = regexp.MustCompile(`^F\) ?` + limitP + `$`)
	gRE = regexp.MustCompile(`^G\) ?` + limitP + `$`)
)

// F is the lower limit item.
type F struct {
	text       string
	LowerLimit units.Altitude
}

func parseF(text string) (*F, error) {
	m := fRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match F item", TypeF, text)
	}
	return &F{text: text, LowerLimit: limitFrom(captures(fRE, m))}, nil
}

func (f *F) Type() ItemType { return TypeF }
func (f *F) Text() string   { return f.text }

func (f *F) Merge(data Data) Data {
	return data.With("lower_limit", f.LowerLimit)
}

// G is the upper limit item.
type G struct {
	text       string
	UpperLimit units.Altitude
}

func parseG(text string) (*G, error) {
	m := gRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match G item", TypeG, text)
	}
	return &G{text: text, UpperLimit: limitFrom(captures(gRE, m))}, nil
}

func (g *G) Type() ItemType { return TypeG }
func (g *G) Text() string   { return g.text }

func (g *G) Merge(data Data) Data {
	return data.With("upper_limit", g.UpperLimit)
}

func limitFrom(group map[string]string) units.Altitude {
	switch group["sentinel"] {
	case "UNL":
		return units.Unlimited
	case "SFC", "GND":
		return units.Ground
	}
	if fl := group["fl"]; fl != "" {
		return limit(fl, "", "")
	}
	return limit(group["value"], group["unit"], group["base"])
}
