// Package lookup provides the static NOTAM code tables: Q code subjects and
// conditions, traffic/purpose/scope identifiers, FIR to country mappings and
// approved contractions. All tables are process-wide read-only data.
package lookup

import (
	"fmt"
	"sort"
	"strings"
)

// Q code subject groups, keyed by the first letter of the subject code.
var subjectGroups = map[string]string{
	"A": "airspace_organization",
	"C": "communications_and_surveillance_facilities",
	"F": "facilities_and_services",
	"G": "gnss_services",
	"I": "instrument_and_microwave_landing_system",
	"K": "checklist",
	"L": "lighting_facilities",
	"M": "movement_and_landing_area",
	"N": "terminal_and_en_route_navigation_facilities",
	"O": "other_information",
	"P": "air_traffic_procedures",
	"R": "airspace_restrictions",
	"S": "air_traffic_and_volmet_services",
	"W": "warning",
	"X": "other",
}

// Q code condition groups, keyed by the first letter of the condition code.
var conditionGroups = map[string]string{
	"A": "availability",
	"C": "changes",
	"H": "hazard_conditions",
	"K": "checklist",
	"L": "limitations",
	"T": "trigger",
	"X": "other",
}

var traffic = map[string]string{
	"IV": "ifr_and_vfr",
	"I":  "ifr",
	"V":  "vfr",
	"K":  "checklist",
}

var purposes = map[string]string{
	"N": "immediate_attention",
	"B": "operational_significance",
	"O": "flight_operations",
	"M": "miscellaneous",
	"K": "checklist",
}

var scopes = map[string]string{
	"A": "aerodrome",
	"E": "en_route",
	"W": "navigation_warning",
	"K": "checklist",
}

func fetch(table map[string]string, kind, code string) (string, error) {
	if v, ok := table[code]; ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown %s code %q", kind, code)
}

// SubjectGroup translates a one letter subject group code.
func SubjectGroup(code string) (string, error) {
	return fetch(subjectGroups, "subject group", code)
}

// Subject translates a two letter Q code subject.
func Subject(code string) (string, error) {
	return fetch(subjects, "subject", code)
}

// ConditionGroup translates a one letter condition group code.
func ConditionGroup(code string) (string, error) {
	return fetch(conditionGroups, "condition group", code)
}

// Condition translates a two letter Q code condition.
func Condition(code string) (string, error) {
	return fetch(conditions, "condition", code)
}

// Traffic translates a traffic code.
func Traffic(code string) (string, error) {
	return fetch(traffic, "traffic", code)
}

// Purpose translates a one letter purpose code.
func Purpose(code string) (string, error) {
	return fetch(purposes, "purpose", code)
}

// Scope translates a one letter scope code.
func Scope(code string) (string, error) {
	return fetch(scopes, "scope", code)
}

// Countries returns the ISO 3166-1 alpha-2 country codes covered by the
// given four letter ICAO FIR identifier.
func Countries(fir string) ([]string, error) {
	if countries, ok := firCountries[fir]; ok {
		return countries, nil
	}
	return nil, fmt.Errorf("unknown FIR %q", fir)
}

// ExpandFIR expands an informal two letter ICAO FIR identifier to all known
// four letter FIR identifiers with that prefix plus the prefix's "XX"
// wildcard.
//
//	ExpandFIR("LF")   // ["LFBB", "LFEE", "LFFF", "LFMM", "LFRR", "LFXX"]
func ExpandFIR(informalFIR string) ([]string, error) {
	var firs []string
	for fir := range firCountries {
		if strings.HasPrefix(fir, informalFIR) {
			firs = append(firs, fir)
		}
	}
	if len(firs) == 0 {
		return nil, fmt.Errorf("unknown wildcard FIR %q", informalFIR)
	}
	sort.Strings(firs)
	return append(firs, informalFIR+"XX"), nil
}

// Expand returns the expansion of an approved NOTAM contraction or false if
// the given word is not a known contraction.
func Expand(contraction string) (string, bool) {
	expansion, ok := contractions[contraction]
	return expansion, ok
}

// ExpandContractions expands all approved contractions in the given free text
// and uppercases the result. Contractions are matched word by word with the
// longest (multi-word first) match winning, so "TDZ LGT" becomes "TOUCHDOWN
// ZONE LIGHTS" while a lone "TDZ" becomes "TOUCHDOWN ZONE".
func ExpandContractions(text string) string {
	var out strings.Builder
	words := splitWords(text)
	for i := 0; i < len(words); i++ {
		if !isWord(words[i]) {
			out.WriteString(strings.ToUpper(words[i]))
			continue
		}
		// Try the two word contraction first, then the single word.
		if i+2 < len(words) && words[i+1] == " " {
			if expansion, ok := contractions[words[i]+" "+words[i+2]]; ok {
				out.WriteString(expansion)
				i += 2
				continue
			}
		}
		if expansion, ok := contractions[words[i]]; ok {
			out.WriteString(expansion)
		} else {
			out.WriteString(strings.ToUpper(words[i]))
		}
	}
	return out.String()
}

// splitWords splits text at word boundaries keeping all separators, so that
// joining the tokens reproduces the input.
func splitWords(text string) []string {
	var tokens []string
	start := 0
	inWord := false
	for i, r := range text {
		w := isWordRune(r)
		if i > 0 && w != inWord {
			tokens = append(tokens, text[start:i])
			start = i
		}
		inWord = w
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isWord(token string) bool {
	for _, r := range token {
		return isWordRune(r)
	}
	return false
}
