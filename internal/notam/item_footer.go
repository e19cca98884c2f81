package notam

import (
	"regexp"
	"strings"
	"time"
)

var footerRE = regexp.MustCompile(`(?s)^(?P<key>CREATED|SOURCE): ?(?P<value>.+)$`)

// Footer is a trailing metadata line such as "CREATED: 01 Jan 2022 10:06:00"
// or "SOURCE: EUECYIYN".
type Footer struct {
	text  string
	Key   string
	Value any
}

func parseFooter(text string) (*Footer, error) {
	m := footerRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match Footer item", TypeFooter, text)
	}
	group := captures(footerRE, m)
	f := &Footer{
		text:  text,
		Key:   strings.ToLower(group["key"]),
		Value: strings.TrimSpace(group["value"]),
	}
	if f.Key == "created" {
		at, err := time.Parse("2 Jan 2006 15:04:05", f.Value.(string))
		if err != nil {
			return nil, parseErr("invalid CREATED timestamp", TypeFooter, text)
		}
		f.Value = at.UTC()
	}
	return f, nil
}

func (f *Footer) Type() ItemType { return TypeFooter }
func (f *Footer) Text() string   { return f.text }

func (f *Footer) Merge(data Data) Data {
	return data.With(f.Key, f.Value)
}
