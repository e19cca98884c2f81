package notam

import (
	"reflect"
	"testing"
	"time"

	"notam_parser/internal/units"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want ItemType
	}{
		{"A0135/20 NOTAMN", TypeHeader},
		{"Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005", TypeQ},
		{"A) LFPG", TypeA},
		{"B) 0208231540", TypeB},
		{"C) PERM", TypeC},
		{"D) MON-FRI 0700-1100", TypeD},
		{"E) RWY CLSD", TypeE},
		{"F) SFC", TypeF},
		{"G) UNL", TypeG},
		{"CREATED: 01 Jan 2022 10:06:00", TypeFooter},
		{"SOURCE: EUECYIYN", TypeFooter},
	}
	for _, c := range cases {
		got, err := Classify(c.text)
		if err != nil {
			t.Errorf("Classify(%q): %v", c.text, err)
			continue
		}
		if got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.text, got, c.want)
		}
	}

	if _, err := Classify("FLUGBESCHRAENKUNG"); err == nil {
		t.Error("free text must not classify")
	}
}

func TestParseHeader(t *testing.T) {
	item, err := ParseItem("A0135/20 NOTAMN", Data{})
	if err != nil {
		t.Fatal(err)
	}
	h := item.(*Header)
	if h.ID != "A0135/20" || h.Series != "A" || h.Number != 135 || h.Year != 2020 {
		t.Errorf("header = %+v", h)
	}
	if !h.New() || h.Replaces() != "" || h.Cancels() != "" {
		t.Error("NOTAMN must be new")
	}

	item, err = ParseItem("A0137/20 NOTAMR A0135/20", Data{})
	if err != nil {
		t.Fatal(err)
	}
	if got := item.(*Header).Replaces(); got != "A0135/20" {
		t.Errorf("Replaces = %s", got)
	}

	item, err = ParseItem("A0139/20 NOTAMC A0137/20", Data{})
	if err != nil {
		t.Fatal(err)
	}
	if got := item.(*Header).Cancels(); got != "A0137/20" {
		t.Errorf("Cancels = %s", got)
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	// A new message must not reference an old ID, a replacement or
	// cancellation must.
	for _, text := range []string{
		"A0135/20 NOTAMN A0125/20",
		"A0135/20 NOTAMR",
		"A0135/20 NOTAMC",
	} {
		if _, err := ParseItem(text, Data{}); err == nil {
			t.Errorf("%q must fail", text)
		}
	}
}

func TestParseQ(t *testing.T) {
	item, err := ParseItem("Q) EGTT/QMRLC/IV/NBO/A/000/999/5129N00028W005", Data{})
	if err != nil {
		t.Fatal(err)
	}
	q := item.(*Q)
	if q.FIR != "EGTT" {
		t.Errorf("FIR = %s", q.FIR)
	}
	if q.SubjectGroup != "movement_and_landing_area" || q.Subject != "runway" {
		t.Errorf("subject = %s / %s", q.SubjectGroup, q.Subject)
	}
	if q.ConditionGroup != "limitations" || q.Condition != "closed" {
		t.Errorf("condition = %s / %s", q.ConditionGroup, q.Condition)
	}
	if q.Traffic != "ifr_and_vfr" {
		t.Errorf("traffic = %s", q.Traffic)
	}
	wantPurpose := []string{"immediate_attention", "operational_significance", "flight_operations"}
	if !reflect.DeepEqual(q.Purpose, wantPurpose) {
		t.Errorf("purpose = %v", q.Purpose)
	}
	if !reflect.DeepEqual(q.Scope, []string{"aerodrome"}) {
		t.Errorf("scope = %v", q.Scope)
	}
	if q.LowerLimit != units.Ground || q.UpperLimit != units.Unlimited {
		t.Errorf("limits = %s / %s", q.LowerLimit, q.UpperLimit)
	}
	wantCenter := units.Point{Lat: 51 + 29.0/60, Lon: -(0 + 28.0/60)}
	if q.CenterPoint != wantCenter {
		t.Errorf("center = %+v", q.CenterPoint)
	}
	if q.Radius.NM != 5 {
		t.Errorf("radius = %d", q.Radius.NM)
	}
}

func TestParseQFlightLevels(t *testing.T) {
	item, err := ParseItem("Q) LFMM/QRTCA/IV/BO/W/045/180/4336N00627E009", Data{})
	if err != nil {
		t.Fatal(err)
	}
	q := item.(*Q)
	want := units.Altitude{Value: 45, Datum: units.QNE}
	if q.LowerLimit != want {
		t.Errorf("lower = %+v", q.LowerLimit)
	}
	want = units.Altitude{Value: 180, Datum: units.QNE}
	if q.UpperLimit != want {
		t.Errorf("upper = %+v", q.UpperLimit)
	}
	if q.CenterPoint.Lon != 6+27.0/60 {
		t.Errorf("lon = %f", q.CenterPoint.Lon)
	}
}

func TestParseA(t *testing.T) {
	item, err := ParseItem("A) LFPG LFPB", Data{})
	if err != nil {
		t.Fatal(err)
	}
	a := item.(*A)
	if !reflect.DeepEqual(a.Locations, []string{"LFPG", "LFPB"}) {
		t.Errorf("locations = %v", a.Locations)
	}
	if a.PartIndex != 1 || a.PartIndexMax != 1 {
		t.Errorf("part = %d of %d", a.PartIndex, a.PartIndexMax)
	}

	item, err = ParseItem("A) EGLL 2 OF 3", Data{})
	if err != nil {
		t.Fatal(err)
	}
	a = item.(*A)
	if a.PartIndex != 2 || a.PartIndexMax != 3 {
		t.Errorf("part = %d of %d", a.PartIndex, a.PartIndexMax)
	}
}

func TestParseB(t *testing.T) {
	item, err := ParseItem("B) 2201010700", Data{})
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2022, time.January, 1, 7, 0, 0, 0, time.UTC)
	if got := item.(*B).EffectiveAt; !got.Equal(want) {
		t.Errorf("effective_at = %s", got)
	}

	// Month 13 is not a timestamp.
	if _, err := ParseItem("B) 2213011200", Data{}); err == nil {
		t.Error("invalid timestamp must fail")
	}
}

func TestParseC(t *testing.T) {
	item, err := ParseItem("C) 2203311500", Data{})
	if err != nil {
		t.Fatal(err)
	}
	c := item.(*C)
	want := time.Date(2022, time.March, 31, 15, 0, 0, 0, time.UTC)
	if !c.ExpirationAt.Equal(want) || c.EstimatedExpiration || c.NoExpiration {
		t.Errorf("c = %+v", c)
	}

	item, err = ParseItem("C) 2203311500 EST", Data{})
	if err != nil {
		t.Fatal(err)
	}
	if !item.(*C).EstimatedExpiration {
		t.Error("EST not detected")
	}

	item, err = ParseItem("C) PERM", Data{})
	if err != nil {
		t.Fatal(err)
	}
	c = item.(*C)
	if !c.NoExpiration || !c.ExpirationAt.IsZero() {
		t.Errorf("c = %+v", c)
	}
	if _, ok := c.Merge(Data{})["expiration_at"]; ok {
		t.Error("PERM must not merge an expiration")
	}
}

func TestParseE(t *testing.T) {
	item, err := ParseItem("E) RWY 09R/27L CLSD DUE WIP", Data{})
	if err != nil {
		t.Fatal(err)
	}
	e := item.(*E)
	if e.Content != "RWY 09R/27L CLSD DUE WIP" {
		t.Errorf("content = %q", e.Content)
	}
	want := "RUNWAY 09R/27L CLOSED DUE WORK IN PROGRESS"
	if got := e.TranslatedContent(); got != want {
		t.Errorf("translated = %q", got)
	}
}

func TestParseFG(t *testing.T) {
	cases := []struct {
		text string
		want units.Altitude
	}{
		{"F) SFC", units.Ground},
		{"F) GND", units.Ground},
		{"F) 2000 FT AMSL", units.Altitude{Value: 2000, Datum: units.QNH}},
		{"G) UNL", units.Unlimited},
		{"G) FL100", units.Altitude{Value: 100, Datum: units.QNE}},
		{"G) 100 M AGL", units.Altitude{Value: 328, Datum: units.QFE}},
	}
	for _, c := range cases {
		item, err := ParseItem(c.text, Data{})
		if err != nil {
			t.Errorf("%q: %v", c.text, err)
			continue
		}
		var got units.Altitude
		switch i := item.(type) {
		case *F:
			got = i.LowerLimit
		case *G:
			got = i.UpperLimit
		}
		if got != c.want {
			t.Errorf("%q = %+v, want %+v", c.text, got, c.want)
		}
	}
}

func TestParseFooter(t *testing.T) {
	item, err := ParseItem("CREATED: 24 Dec 2021 09:04:00", Data{})
	if err != nil {
		t.Fatal(err)
	}
	f := item.(*Footer)
	want := time.Date(2021, time.December, 24, 9, 4, 0, 0, time.UTC)
	if f.Key != "created" || !f.Value.(time.Time).Equal(want) {
		t.Errorf("footer = %+v", f)
	}

	item, err = ParseItem("SOURCE: EUECYIYN", Data{})
	if err != nil {
		t.Fatal(err)
	}
	f = item.(*Footer)
	if f.Key != "source" || f.Value != "EUECYIYN" {
		t.Errorf("footer = %+v", f)
	}

	if _, err := ParseItem("CREATED: SOMEDAY", Data{}); err == nil {
		t.Error("invalid CREATED timestamp must fail")
	}
}

func TestDataWith(t *testing.T) {
	d := Data{}.With("k", 1)
	if d["k"] != 1 {
		t.Errorf("d = %v", d)
	}
	// Set once: later writes and nils are ignored.
	d = d.With("k", 2)
	if d["k"] != 1 {
		t.Errorf("d = %v", d)
	}
	d = d.With("n", nil)
	if _, ok := d["n"]; ok {
		t.Error("nil values must not be stored")
	}
}
