package notam

// ParseError is the single error type surfaced by the parser. It carries a
// human readable message and, when the failure concerns a specific item, the
// item type and the offending raw text.
type ParseError struct {
	Msg      string
	ItemType ItemType // TypeNone for message level failures
	Text     string   // raw text of the offending item or fragment
	Err      error    // underlying cause, if any
}

func (e *ParseError) Error() string {
	if e.Text != "" {
		return e.Msg + ": " + e.Text
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(msg string, itemType ItemType, text string) *ParseError {
	return &ParseError{Msg: msg, ItemType: itemType, Text: text}
}
