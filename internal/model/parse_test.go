package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	cases := []struct {
		raw       string
		want      float64
		defaulted bool
	}{
		{"10", 10, false},
		{" 2.5 ", 2.5, false},
		{"2,5", 0, true},
		{"-1", -1, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"1,2,3", 0, true},
		{"1.2,3", 0, true},
		{"NaN", 0, true},
		{"-Inf", 0, true},
		{"1e400", 0, true},
	}
	for _, tc := range cases {
		f := ParseField(tc.raw)
		assert.Equal(t, tc.want, f.Value, "raw=%q", tc.raw)
		assert.Equal(t, tc.defaulted, f.Defaulted, "raw=%q", tc.raw)
		assert.Equal(t, tc.raw, f.Raw)
	}
}

func TestParseInputs(t *testing.T) {
	in, parsed := ParseInputs(RawInputs{
		Power:             "10",
		InitialDeviation:  "",
		ImprovedDeviation: "1",
		RatePerKWh:        "x",
	})
	assert.Equal(t, Inputs{Power: 10, ImprovedDeviation: 1}, in)
	assert.Equal(t, []string{"initial_deviation", "rate_per_kwh"}, parsed.Defaulted())

	_, parsed = ParseInputs(RawInputs{Power: "1", InitialDeviation: "1", ImprovedDeviation: "1", RatePerKWh: "1"})
	assert.Empty(t, parsed.Defaulted())
}

func TestFormValueUnmarshal(t *testing.T) {
	var body struct {
		A FormValue `json:"a"`
		B FormValue `json:"b"`
		C FormValue `json:"c"`
		D FormValue `json:"d"`
		E FormValue `json:"e"`
	}
	raw := `{"a": 10.5, "b": "2,5", "c": "", "d": null, "e": true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &body))

	assert.Equal(t, 10.5, body.A.Value)
	assert.False(t, body.A.Defaulted)
	assert.Equal(t, 0.0, body.B.Value)
	assert.True(t, body.B.Defaulted)
	assert.True(t, body.C.Defaulted)
	assert.True(t, body.D.Defaulted)
	assert.True(t, body.E.Defaulted)
	assert.Equal(t, 0.0, body.E.Value)
}

func TestFormValueMarshal(t *testing.T) {
	b, err := json.Marshal(map[string]FormValue{"power": Num(12.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"power": 12.5}`, string(b))
}

func TestOverridesApply(t *testing.T) {
	base := Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 1, RatePerKWh: 2}
	got := Overrides{ImprovedDeviation: Set(0.5)}.Apply(base)
	assert.Equal(t, Inputs{Power: 10, InitialDeviation: 2, ImprovedDeviation: 0.5, RatePerKWh: 2}, got)
	assert.Equal(t, base, Overrides{}.Apply(base))

	// An explicit zero collapses the window instead of being ignored.
	got = Overrides{ImprovedDeviation: Set(0), RatePerKWh: Set(0)}.Apply(base)
	assert.Equal(t, Inputs{Power: 10, InitialDeviation: 2}, got)
}
