package model

import "golang.org/x/text/cases"

type Country int

const (
	CountryUnknown Country = iota
	CountryAustralia
)

// State is a selectable region of a recognised country.
type State struct {
	Code string
	Name string
}

var australianStates = []State{
	{Code: "NSW", Name: "New South Wales"},
	{Code: "VIC", Name: "Victoria"},
	{Code: "QLD", Name: "Queensland"},
	{Code: "WA", Name: "Western Australia"},
	{Code: "SA", Name: "South Australia"},
	{Code: "TAS", Name: "Tasmania"},
	{Code: "ACT", Name: "Australian Capital Territory"},
	{Code: "NT", Name: "Northern Territory"},
}

var countryNames = map[string]Country{
	"australia": CountryAustralia,
}

// ParseCountry matches free-text input case-insensitively. Anything unrecognised is CountryUnknown.
func ParseCountry(s string) Country {
	folded := cases.Fold().String(s)
	if c, ok := countryNames[folded]; ok {
		return c
	}
	return CountryUnknown
}

// States returns the closed state list, or nil when the state is free text.
func (c Country) States() []State {
	switch c {
	case CountryAustralia:
		return append([]State(nil), australianStates...)
	default:
		return nil
	}
}
