// Package notam parses ICAO NOTAM messages: classification and parsing of
// the labelled items (header, Q, A through G, footers) and assembly of raw
// message text into a merged, typed payload.
package notam

import (
	"regexp"
	"strconv"
	"time"

	"notam_parser/internal/units"
)

// ItemType identifies one of the canonical NOTAM items. The constants are
// ordered the way the items appear in a message.
type ItemType int

const (
	TypeNone ItemType = iota
	TypeHeader
	TypeQ
	TypeA
	TypeB
	TypeC
	TypeD
	TypeE
	TypeF
	TypeG
	TypeFooter
)

var itemTypeNames = map[ItemType]string{
	TypeNone: "none", TypeHeader: "Header", TypeQ: "Q", TypeA: "A",
	TypeB: "B", TypeC: "C", TypeD: "D", TypeE: "E", TypeF: "F", TypeG: "G",
	TypeFooter: "Footer",
}

func (t ItemType) String() string {
	return itemTypeNames[t]
}

// Item is one parsed NOTAM item. Implementations are immutable after
// parsing.
type Item interface {
	// Type returns the item's tag.
	Type() ItemType

	// Text returns the raw item text.
	Text() string

	// Merge copies the item's parsed fields into the message payload and
	// returns the updated payload.
	Merge(data Data) Data
}

// Shared pattern fragments. The ten digit timestamp is YYMMDDHHmm with
// strict digit classes for month, day, hour and minute.
const (
	idP        = `[A-Z]\d{4}/\d{2}`
	icaoP      = `[A-Z]{4}`
	timestampP = `\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])(?:[01]\d|2[0-4])[0-5]\d`
)

var (
	labelRE      = regexp.MustCompile(`^([A-GQ])\)`)
	footerLeadRE = regexp.MustCompile(`^(?:CREATED|SOURCE):`)
)

// Classify detects the item type of the given raw item text.
//
//	Classify("A0135/20 NOTAMN")   // TypeHeader
//	Classify("B) 0208231540")     // TypeB
//	Classify("SOURCE: LFNT")      // TypeFooter
func Classify(text string) (ItemType, error) {
	stripped := stripText(text)
	if m := labelRE.FindStringSubmatch(stripped); m != nil {
		switch m[1][0] {
		case 'Q':
			return TypeQ, nil
		case 'A':
			return TypeA, nil
		case 'B':
			return TypeB, nil
		case 'C':
			return TypeC, nil
		case 'D':
			return TypeD, nil
		case 'E':
			return TypeE, nil
		case 'F':
			return TypeF, nil
		case 'G':
			return TypeG, nil
		}
	}
	if headerRE.MatchString(stripped) {
		return TypeHeader, nil
	}
	if footerLeadRE.MatchString(stripped) {
		return TypeFooter, nil
	}
	return TypeNone, parseErr("item not recognized", TypeNone, stripped)
}

// ParseItem classifies and parses one raw item. The payload accumulated so
// far supplies context to items that need earlier items' fields (the D item
// reads the B item's effective date and the Q item's center point).
func ParseItem(text string, data Data) (Item, error) {
	itemType, err := Classify(text)
	if err != nil {
		return nil, err
	}
	stripped := stripText(text)
	switch itemType {
	case TypeHeader:
		return parseHeader(stripped)
	case TypeQ:
		return parseQ(stripped)
	case TypeA:
		return parseA(stripped)
	case TypeB:
		return parseB(stripped)
	case TypeC:
		return parseC(stripped)
	case TypeD:
		return parseD(stripped, data)
	case TypeE:
		return parseE(stripped)
	case TypeF:
		return parseF(stripped)
	case TypeG:
		return parseG(stripped)
	default:
		return parseFooter(stripped)
	}
}

var stripRE = regexp.MustCompile(`^\s+|\s+$`)

func stripText(text string) string {
	return stripRE.ReplaceAllString(text, "")
}

// timestamp converts a ten digit YYMMDDHHmm group to a UTC instant, the two
// digit year expanded to the current century.
func timestamp(s string) time.Time {
	yy, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[2:4])
	day, _ := strconv.Atoi(s[4:6])
	hour, _ := strconv.Atoi(s[6:8])
	minute, _ := strconv.Atoi(s[8:10])
	return units.UTC(units.ExpandYear(yy), time.Month(month), day, hour, minute)
}

// limit converts a vertical limit capture to an altitude: metres are
// converted to feet, AMSL maps to QNH and AGL to QFE, bare flight levels to
// QNE.
func limit(value, unit, base string) units.Altitude {
	n, _ := strconv.Atoi(value)
	if base == "" {
		return units.Altitude{Value: n, Datum: units.QNE}
	}
	if unit == "M" {
		n = units.FeetFromMetres(n)
	}
	datum := units.QNH
	if base == "AGL" {
		datum = units.QFE
	}
	return units.Altitude{Value: n, Datum: datum}
}
