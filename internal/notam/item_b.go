package notam

import (
	"regexp"
	"time"
)

var bRE = regexp.MustCompile(`^B\) ?(?P<effective_at>` + timestampP + `)$`)

// B is the effective-from item: the UTC instant the NOTAM comes into force.
type B struct {
	text        string
	EffectiveAt time.Time
}

func parseB(text string) (*B, error) {
	m := bRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match B item", TypeB, text)
	}
	return &B{text: text, EffectiveAt: timestamp(captures(bRE, m)["effective_at"])}, nil
}

func (b *B) Type() ItemType { return TypeB }
func (b *B) Text() string   { return b.text }

func (b *B) Merge(data Data) Data {
	return data.With("effective_at", b.EffectiveAt)
}
