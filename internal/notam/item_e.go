package notam

import (
	"regexp"

	"notam_parser/internal/lookup"
)

var eRE = regexp.MustCompile(`(?s)^E\) ?(?P<content>.+)$`)

// E is the free text item describing the subject and condition in plain
// language, heavy with ICAO contractions.
type E struct {
	text    string
	Content string
}

func parseE(text string) (*E, error) {
	m := eRE.FindStringSubmatch(text)
	if m == nil {
		return nil, parseErr("text does not match E item", TypeE, text)
	}
	return &E{text: text, Content: captures(eRE, m)["content"]}, nil
}

func (e *E) Type() ItemType { return TypeE }
func (e *E) Text() string   { return e.text }

// TranslatedContent returns the content with known ICAO contractions
// expanded to full words.
func (e *E) TranslatedContent() string {
	return lookup.ExpandContractions(e.Content)
}

func (e *E) Merge(data Data) Data {
	return data.With("content", e.Content).
		With("translated_content", e.TranslatedContent())
}
