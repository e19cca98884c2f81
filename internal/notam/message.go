package notam

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Only the checklist marker binds to the start of the text; the other
	// two markers reject wherever they appear.
	unsupportedRE = regexp.MustCompile(
		`(?i)^\s*![A-Z]{3,5}|\w{3}\s\w{3}\s\([OU]\)|\w{3}\s[A-Z]\d{4}/\d{2}\sMILITARY`)
	partitionRE = regexp.MustCompile(`(?is)\s*(?:END\s+)?PART\s+(\d+)\s+OF\s+(\d+)\s*`)
	fingerRE    = regexp.MustCompile(`\s([QA-G]\)\s)`)
	lineLeadRE  = regexp.MustCompile(`^(?:[QA-G]\)|CREATED:|SOURCE:)`)
)

// fingerprintRanks orders the item leads as they appear in a well formed
// message. A line whose lead does not rank strictly higher than the previous
// one is a continuation of the previous item.
var fingerprintRanks = map[string]int{
	"Q)": 1, "A)": 2, "B)": 3, "C)": 4, "D)": 5, "E)": 6, "F)": 7, "G)": 8,
	"CREATED:": 9, "SOURCE:": 10,
}

// Message is one complete NOTAM: the raw text, the parsed items in order
// and the merged payload.
type Message struct {
	Text  string
	Items []Item
	Data  Data
}

// ParseMessage segments raw NOTAM text into items, parses each and merges
// the results into a single payload. Military and other non ICAO formats
// are rejected with an unsupported format error.
func ParseMessage(text string) (*Message, error) {
	if unsupportedRE.MatchString(text) {
		return nil, parseErr("unsupported format", TypeNone, text)
	}
	body, data := departition(text)
	msg := &Message{Text: text, Data: data}
	for _, itemText := range itemize(body) {
		item, err := ParseItem(itemText, msg.Data)
		if err != nil {
			return nil, err
		}
		msg.Items = append(msg.Items, item)
		msg.Data = item.Merge(msg.Data)
	}
	return msg, nil
}

// Item returns the first parsed item of the given type, or nil.
func (m *Message) Item(t ItemType) Item {
	for _, item := range m.Items {
		if item.Type() == t {
			return item
		}
	}
	return nil
}

// Active reports whether the NOTAM is in force at the given instant: within
// the validity period and, if a schedule is present, within an active
// schedule window.
func (m *Message) Active(at time.Time) bool {
	effectiveAt, ok := m.Data["effective_at"].(time.Time)
	if !ok || at.Before(effectiveAt) {
		return false
	}
	if expirationAt, ok := m.Data["expiration_at"].(time.Time); ok && at.After(expirationAt) {
		return false
	}
	if d, ok := m.Item(TypeD).(*D); ok && d != nil {
		return d.Active(at)
	}
	return true
}

// departition records and removes "PART n OF m" and "END PART n OF m"
// markers from multi part messages.
func departition(text string) (string, Data) {
	data := Data{}
	if m := partitionRE.FindStringSubmatch(text); m != nil {
		index, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		data = data.With("part_index", index).With("part_index_max", max)
	}
	return partitionRE.ReplaceAllString(text, " "), data
}

// itemize splits raw message text into one string per item. Item leads
// found mid line start a new item; a line whose lead does not advance the
// running fingerprint rank is glued to the previous item, which keeps free
// text like "23 AUG B) 1300" inside the E item it belongs to.
func itemize(text string) []string {
	marked := fingerRE.ReplaceAllString(text, "\n$1")
	var items []string
	rank := 0
	for _, line := range strings.Split(marked, "\n") {
		stripped := stripText(line)
		if stripped == "" {
			continue
		}
		lead := lineLeadRE.FindString(stripped)
		lineRank := fingerprintRanks[lead]
		if len(items) == 0 || (lead != "" && lineRank > rank) {
			items = append(items, stripped)
			if lead != "" {
				rank = lineRank
			}
			continue
		}
		items[len(items)-1] += "\n" + stripped
	}
	return items
}
