package lookup

import (
	"reflect"
	"testing"
)

func TestQCodes(t *testing.T) {
	cases := []struct {
		fn   func(string) (string, error)
		code string
		want string
	}{
		{SubjectGroup, "M", "movement_and_landing_area"},
		{Subject, "MR", "runway"},
		{Subject, "XX", "other"},
		{ConditionGroup, "L", "limitations"},
		{Condition, "LC", "closed"},
		{Condition, "LT", "limited"},
		{Traffic, "IV", "ifr_and_vfr"},
		{Purpose, "B", "operational_significance"},
		{Scope, "A", "aerodrome"},
	}
	for _, c := range cases {
		got, err := c.fn(c.code)
		if err != nil {
			t.Errorf("%s: %v", c.code, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s = %s, want %s", c.code, got, c.want)
		}
	}
}

func TestUnknownCodes(t *testing.T) {
	if _, err := Subject("ZZ"); err == nil {
		t.Error("Subject(ZZ) must fail")
	}
	if _, err := Condition("QQ"); err == nil {
		t.Error("Condition(QQ) must fail")
	}
	if _, err := Traffic("X"); err == nil {
		t.Error("Traffic(X) must fail")
	}
}

func TestCountries(t *testing.T) {
	got, err := Countries("LFFF")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"FR"}) {
		t.Errorf("Countries(LFFF) = %v", got)
	}
	if _, err := Countries("ZZZZ"); err == nil {
		t.Error("Countries(ZZZZ) must fail")
	}
}

func TestExpandFIR(t *testing.T) {
	got, err := ExpandFIR("LF")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"LFBB", "LFEE", "LFFF", "LFMM", "LFRR", "LFXX"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandFIR(LF) = %v, want %v", got, want)
	}
	if _, err := ExpandFIR("ZY"); err == nil {
		t.Error("ExpandFIR(ZY) must fail")
	}
}

func TestExpand(t *testing.T) {
	if got, ok := Expand("RWY"); !ok || got != "RUNWAY" {
		t.Errorf("Expand(RWY) = %q, %v", got, ok)
	}
	if _, ok := Expand("BANANA"); ok {
		t.Error("BANANA is not a contraction")
	}
}

func TestExpandContractions(t *testing.T) {
	cases := []struct{ in, want string }{
		{
			"RWY 09R/27L DUE WIP. TDZ LGT AVBL",
			"RUNWAY 09R/27L DUE WORK IN PROGRESS. TOUCHDOWN ZONE LIGHTS AVAILABLE",
		},
		// Lone TDZ expands to the single word form.
		{"TDZ CLOSED", "TOUCHDOWN ZONE CLOSED"},
		// Unknown words pass through uppercased.
		{"approach RWY 23", "APPROACH RUNWAY 23"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ExpandContractions(c.in); got != c.want {
			t.Errorf("ExpandContractions(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
