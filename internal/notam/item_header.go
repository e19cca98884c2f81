package notam

import (
	"regexp"
	"strconv"

	"notam_parser/internal/units"
)

var headerRE = regexp.MustCompile(
	`^(?P<id>(?P<series>[A-Z])(?P<number>\d{4})/(?P<year>\d{2}))\s+` +
		`NOTAM(?P<operation>[NRC])\s*` +
		`(?P<old_id>` + idP + `)?$`)

// Header is the first line of a NOTAM: the message ID and whether the
// message is new, replaces or cancels an earlier one.
type Header struct {
	text      string
	ID        string
	Series    string
	Number    int
	Year      int  // century expanded
	Operation byte // 'N', 'R' or 'C'
	OldID     string
}

func parseHeader(text string) (*Header, error) {
	m := headerRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match Header item", TypeHeader, text)
	}
	group := captures(headerRE, m)
	h := &Header{
		text:      text,
		ID:        group["id"],
		Series:    group["series"],
		Operation: group["operation"][0],
		OldID:     group["old_id"],
	}
	h.Number, _ = strconv.Atoi(group["number"])
	yy, _ := strconv.Atoi(group["year"])
	h.Year = units.ExpandYear(yy)

	// A new message must not reference an old one; a replacing or
	// cancelling message must.
	if (h.Operation == 'N') == (h.OldID != "") {
		return nil, parseErr("invalid Header item", TypeHeader, text)
	}
	return h, nil
}

func (h *Header) Type() ItemType { return TypeHeader }
func (h *Header) Text() string   { return h.text }

// New reports whether this is a new message rather than a replacement or
// cancellation.
func (h *Header) New() bool { return h.Operation == 'N' }

// Replaces returns the ID of the message replaced by this one, or "".
func (h *Header) Replaces() string {
	if h.Operation == 'R' {
		return h.OldID
	}
	return ""
}

// Cancels returns the ID of the message cancelled by this one, or "".
func (h *Header) Cancels() string {
	if h.Operation == 'C' {
		return h.OldID
	}
	return ""
}

func (h *Header) Merge(data Data) Data {
	data = data.With("id", h.ID).
		With("id_series", h.Series).
		With("id_number", h.Number).
		With("id_year", h.Year).
		With("new", h.New())
	if r := h.Replaces(); r != "" {
		data = data.With("replaces", r)
	}
	if c := h.Cancels(); c != "" {
		data = data.With("cancels", c)
	}
	return data
}

// captures maps named groups of a match to their values.
func captures(re *regexp.Regexp, match []string) map[string]string {
	group := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			group[name] = match[i]
		}
	}
	return group
}
