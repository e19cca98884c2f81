// Package storage provides persistent storage for parsed NOTAM messages.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notam_parser/internal/notam"
)

// Record is the flattened, storable form of a parsed NOTAM message.
type Record struct {
	NotamID      string
	Series       string
	Number       int
	Year         int
	Operation    string // "new", "replace" or "cancel"
	ReplacedID   string // id replaced or cancelled, empty for new
	FIR          string
	Subject      string
	Condition    string
	Traffic      string
	Locations    string // space separated ICAO codes
	EffectiveAt  time.Time
	ExpirationAt time.Time // zero when permanent
	NoExpiration bool
	RawText      string
	PayloadJSON  string
}

// RecordFrom flattens a parsed message into a Record. The payload is
// serialized as JSON verbatim.
func RecordFrom(msg *notam.Message) (Record, error) {
	payload, err := json.Marshal(msg.Data)
	if err != nil {
		return Record{}, fmt.Errorf("marshal payload: %w", err)
	}
	r := Record{
		RawText:     msg.Text,
		PayloadJSON: string(payload),
	}
	r.NotamID, _ = msg.Data["id"].(string)
	r.Series, _ = msg.Data["id_series"].(string)
	r.Number, _ = msg.Data["id_number"].(int)
	r.Year, _ = msg.Data["id_year"].(int)
	switch {
	case msg.Data["new"] == true:
		r.Operation = "new"
	case msg.Data["replaces"] != nil:
		r.Operation = "replace"
		r.ReplacedID, _ = msg.Data["replaces"].(string)
	case msg.Data["cancels"] != nil:
		r.Operation = "cancel"
		r.ReplacedID, _ = msg.Data["cancels"].(string)
	}
	r.FIR, _ = msg.Data["fir"].(string)
	r.Subject, _ = msg.Data["subject"].(string)
	r.Condition, _ = msg.Data["condition"].(string)
	r.Traffic, _ = msg.Data["traffic"].(string)
	if locations, ok := msg.Data["locations"].([]string); ok {
		r.Locations = strings.Join(locations, " ")
	}
	r.EffectiveAt, _ = msg.Data["effective_at"].(time.Time)
	r.ExpirationAt, _ = msg.Data["expiration_at"].(time.Time)
	r.NoExpiration, _ = msg.Data["no_expiration"].(bool)
	return r, nil
}
