package notam

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"notam_parser/internal/units"
)

const egllNotam = `B0025/22 NOTAMR B0528/21
Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005
A) EGLL
B) 2201010700 C) 2203311500
D) MON-FRI 0700-1100
E) RWY 09R/27L DUE WIP NO CENTRELINE, TDZ OR SALS LIGHTING AVBL
CREATED: 24 Dec 2021 09:04:00
SOURCE: EUECYIYN`

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage(egllNotam)
	if err != nil {
		t.Fatal(err)
	}
	if len(msg.Items) != 9 {
		t.Fatalf("items = %d, want 9", len(msg.Items))
	}

	cases := []struct {
		key  string
		want any
	}{
		{"id", "B0025/22"},
		{"replaces", "B0528/21"},
		{"new", false},
		{"fir", "EGTT"},
		{"subject", "runway"},
		{"condition", "closed"},
		{"locations", []string{"EGLL"}},
		{"part_index", 1},
		{"part_index_max", 1},
		{"effective_at", time.Date(2022, time.January, 1, 7, 0, 0, 0, time.UTC)},
		{"expiration_at", time.Date(2022, time.March, 31, 15, 0, 0, 0, time.UTC)},
		{"content", "RWY 09R/27L DUE WIP NO CENTRELINE, TDZ OR SALS LIGHTING AVBL"},
		{"translated_content", "RUNWAY 09R/27L DUE WORK IN PROGRESS NO CENTRELINE, TOUCHDOWN ZONE OR SALS LIGHTING AVAILABLE"},
		{"created", time.Date(2021, time.December, 24, 9, 4, 0, 0, time.UTC)},
		{"source", "EUECYIYN"},
	}
	for _, c := range cases {
		got, ok := msg.Data[c.key]
		if !ok {
			t.Errorf("missing key %s", c.key)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s = %v, want %v", c.key, got, c.want)
		}
	}

	if msg.Item(TypeD) == nil {
		t.Error("D item not found")
	}
	if msg.Item(TypeF) != nil {
		t.Error("no F item in this message")
	}
}

func TestParseMessageSplitsMidLineItems(t *testing.T) {
	// B and C share a line above; both items must come out separately.
	msg, err := ParseMessage(egllNotam)
	if err != nil {
		t.Fatal(err)
	}
	b := msg.Item(TypeB)
	c := msg.Item(TypeC)
	if b == nil || c == nil {
		t.Fatal("B or C item missing")
	}
	if b.Text() != "B) 2201010700" {
		t.Errorf("B text = %q", b.Text())
	}
	if c.Text() != "C) 2203311500" {
		t.Errorf("C text = %q", c.Text())
	}
}

func TestParseMessageGluesContinuations(t *testing.T) {
	// The second E line starts with "B)" but B ranks below E, so the line
	// belongs to the free text.
	text := `A0135/20 NOTAMN
Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005
A) EGLL
B) 2201010700
C) 2203311500
E) CLOSURE SEE SUPPLEMENT
B) REFERS TO EARLIER TIMES`
	msg, err := ParseMessage(text)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := msg.Item(TypeE).(*E)
	if !ok {
		t.Fatal("E item missing")
	}
	if e.Content != "CLOSURE SEE SUPPLEMENT\nB) REFERS TO EARLIER TIMES" {
		t.Errorf("content = %q", e.Content)
	}
}

func TestParseMessagePreservesNewlines(t *testing.T) {
	// Glued continuation lines keep their line breaks so the free text
	// round trips the published message.
	text := `A0135/20 NOTAMN
Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005
A) EGLL
B) 2201010700
C) 2203311500
E) INFORMATION LINE ONE
C) MAY BE SUBJECT TO PENALTIES`
	msg, err := ParseMessage(text)
	if err != nil {
		t.Fatal(err)
	}
	e, ok := msg.Item(TypeE).(*E)
	if !ok {
		t.Fatal("E item missing")
	}
	if e.Content != "INFORMATION LINE ONE\nC) MAY BE SUBJECT TO PENALTIES" {
		t.Errorf("content = %q", e.Content)
	}
	if msg.Data["content"] != e.Content {
		t.Errorf("merged content = %q", msg.Data["content"])
	}
}

func TestParseMessageDepartition(t *testing.T) {
	text := `A0135/20 NOTAMN
Q) EGTT/QOBCE/IV/M/A/000/999/5129N00028W005
A) EGLL
B) 2201010700
C) 2203311500
E) OBST ERECTED PART 2 OF 2 NEAR THRESHOLD`
	msg, err := ParseMessage(text)
	if err != nil {
		t.Fatal(err)
	}
	// The marker wins over the A item's default part numbering.
	if msg.Data["part_index"] != 2 || msg.Data["part_index_max"] != 2 {
		t.Errorf("part = %v of %v", msg.Data["part_index"], msg.Data["part_index_max"])
	}
	e := msg.Item(TypeE).(*E)
	if e.Content != "OBST ERECTED NEAR THRESHOLD" {
		t.Errorf("content = %q", e.Content)
	}
}

func TestParseMessageUnsupported(t *testing.T) {
	for _, text := range []string{
		"!FDC 2/0682 ZDC VA..AIRSPACE RICHMOND",
		"SVC COM (O) FREQUENCY UNAVAILABLE",
		"GPS A0123/22 MILITARY EXERCISE",
		"CHECKLIST NAV GPS (U) UNRELIABLE",
		"REF GPS A0123/22 MILITARY EXERCISE",
	} {
		_, err := ParseMessage(text)
		if err == nil {
			t.Errorf("%q must be rejected", text)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Msg != "unsupported format" {
			t.Errorf("%q: err = %v", text, err)
		}
	}
}

func TestMessageActive(t *testing.T) {
	msg, err := ParseMessage(egllNotam)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2022, time.January, 3, 8, 0, 0, 0, time.UTC), true},   // Monday in hours
		{time.Date(2022, time.January, 1, 8, 0, 0, 0, time.UTC), false},  // Saturday
		{time.Date(2022, time.January, 3, 12, 0, 0, 0, time.UTC), false}, // after hours
		{time.Date(2021, time.December, 31, 23, 0, 0, 0, time.UTC), false},
		{time.Date(2022, time.April, 1, 8, 0, 0, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := msg.Active(c.at); got != c.want {
			t.Errorf("Active(%s) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestMessageActivePermanent(t *testing.T) {
	text := `A0135/20 NOTAMN
Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005
A) EGLL
B) 2001010700
C) PERM
E) RWY CLSD`
	msg, err := ParseMessage(text)
	if err != nil {
		t.Fatal(err)
	}
	if !msg.Active(time.Date(2099, time.June, 1, 12, 0, 0, 0, time.UTC)) {
		t.Error("permanent message must stay active")
	}
	if msg.Active(time.Date(2019, time.June, 1, 12, 0, 0, 0, time.UTC)) {
		t.Error("not active before start of validity")
	}
}

func TestParseD(t *testing.T) {
	data := Data{
		"effective_at": time.Date(2022, time.January, 1, 7, 0, 0, 0, time.UTC),
		"center_point": units.Point{Lat: 51.5, Lon: -0.5},
	}
	item, err := ParseItem("D) MON-FRI 0700-1100, SAT 0800-1200", data)
	if err != nil {
		t.Fatal(err)
	}
	d := item.(*D)
	if len(d.Schedules) != 2 {
		t.Fatalf("schedules = %d", len(d.Schedules))
	}
	if !d.Active(time.Date(2022, time.January, 1, 9, 0, 0, 0, time.UTC)) {
		t.Error("Saturday 09:00 is in the second clause")
	}
	if d.Active(time.Date(2022, time.January, 2, 9, 0, 0, 0, time.UTC)) {
		t.Error("Sunday is in no clause")
	}
}

func TestParseDErrors(t *testing.T) {
	if _, err := ParseItem("D) 0700-1100", Data{}); err == nil {
		t.Error("D item without effective date must fail")
	}

	data := Data{"effective_at": time.Date(2022, time.January, 1, 7, 0, 0, 0, time.UTC)}
	_, err := ParseItem("D) NONSENSE", data)
	if err == nil {
		t.Fatal("invalid schedule must fail")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Msg != "invalid D item" {
		t.Errorf("err = %v", err)
	}

	// The error carries the raw item text, prefix included.
	_, err = ParseItem("D) 22 0700-1700 23 0430-1800 24 0430-1400", data)
	if err == nil {
		t.Fatal("more than three datetime schedules must fail")
	}
	if err.Error() != "invalid D item: D) 22 0700-1700 23 0430-1800 24 0430-1400" {
		t.Errorf("err = %q", err.Error())
	}
}

func TestFiveDaySchedules(t *testing.T) {
	data := Data{
		"effective_at": time.Date(2022, time.January, 1, 7, 0, 0, 0, time.UTC),
		"center_point": units.Point{Lat: 51.5, Lon: -0.5},
	}
	item, err := ParseItem("D) MON-FRI 0700-1100", data)
	if err != nil {
		t.Fatal(err)
	}
	d := item.(*D)

	// Before the start of validity the window is anchored at the
	// effective date: Jan 1 2022 was a Saturday.
	out := d.FiveDaySchedules(time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC))
	if len(out) != 1 {
		t.Fatalf("schedules = %d", len(out))
	}
	if got := out[0].ActiveDates.String(); got != "[2022-01-03..2022-01-05]" {
		t.Errorf("dates = %s", got)
	}
	if got := out[0].Times.String(); got != "[07:00..11:00]" {
		t.Errorf("times = %s", got)
	}

	// Once in force the window follows the query time.
	out = d.FiveDaySchedules(time.Date(2022, time.February, 1, 12, 0, 0, 0, time.UTC))
	if len(out) != 1 {
		t.Fatalf("schedules = %d", len(out))
	}
	if got := out[0].ActiveDates.String(); got != "[2022-02-01..2022-02-04]" {
		t.Errorf("dates = %s", got)
	}
}
