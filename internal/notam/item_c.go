package notam

import (
	"regexp"
	"time"
)

var cRE = regexp.MustCompile(
	`^C\) ?(?:(?P<permanent>PERM)|(?P<expiration_at>` + timestampP + `) ?(?P<estimated>EST)?)$`)

// C is the expiration item: the UTC instant the NOTAM expires, possibly
// estimated, or PERM for no expiration.
type C struct {
	text                string
	ExpirationAt        time.Time // zero when NoExpiration
	EstimatedExpiration bool
	NoExpiration        bool
}

func parseC(text string) (*C, error) {
	m := cRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match C item", TypeC, text)
	}
	group := captures(cRE, m)
	c := &C{text: text}
	if group["permanent"] != "" {
		c.NoExpiration = true
		return c, nil
	}
	c.ExpirationAt = timestamp(group["expiration_at"])
	c.EstimatedExpiration = group["estimated"] != ""
	return c, nil
}

func (c *C) Type() ItemType { return TypeC }
func (c *C) Text() string   { return c.text }

func (c *C) Merge(data Data) Data {
	if !c.NoExpiration {
		data = data.With("expiration_at", c.ExpirationAt)
	}
	return data.With("estimated_expiration", c.EstimatedExpiration).
		With("no_expiration", c.NoExpiration)
}
