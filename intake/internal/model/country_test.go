package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCountry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Country
	}{
		{"Australia", CountryAustralia},
		{"australia", CountryAustralia},
		{"AUSTRALIA", CountryAustralia},
		{" Australia", CountryUnknown},
		{"Austria", CountryUnknown},
		{"", CountryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCountry(tt.in))
		})
	}
}

func TestCountryStates(t *testing.T) {
	t.Parallel()

	states := CountryAustralia.States()
	assert.Len(t, states, 8)
	assert.Equal(t, State{Code: "NSW", Name: "New South Wales"}, states[0])
	assert.Equal(t, State{Code: "NT", Name: "Northern Territory"}, states[7])

	assert.Nil(t, CountryUnknown.States())
}
