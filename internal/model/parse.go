package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field is one parsed text field.
// When Raw does not parse as a float, Value is 0 and Defaulted is true.
type Field struct {
	Raw       string
	Value     float64
	Defaulted bool
}

// ParseField parses raw as a finite float64, falling back to zero.
// Only a decimal point is accepted, so "2,5" defaults to zero.
// NaN, infinities and out-of-range values count as unparsable.
func ParseField(raw string) Field {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Field{Raw: raw, Defaulted: true}
	}
	return Field{Raw: raw, Value: v}
}

// RawInputs holds the four form fields as typed by the user.
type RawInputs struct {
	Power             string
	InitialDeviation  string
	ImprovedDeviation string
	RatePerKWh        string
}

// ParsedInputs keeps every field's parse outcome next to the resulting Inputs.
type ParsedInputs struct {
	Power             Field
	InitialDeviation  Field
	ImprovedDeviation Field
	RatePerKWh        Field
}

// Defaulted lists the names of fields that fell back to zero, in form order.
func (p ParsedInputs) Defaulted() []string {
	var out []string
	if p.Power.Defaulted {
		out = append(out, "power")
	}
	if p.InitialDeviation.Defaulted {
		out = append(out, "initial_deviation")
	}
	if p.ImprovedDeviation.Defaulted {
		out = append(out, "improved_deviation")
	}
	if p.RatePerKWh.Defaulted {
		out = append(out, "rate_per_kwh")
	}
	return out
}

// Inputs returns the parsed values.
func (p ParsedInputs) Inputs() Inputs {
	return Inputs{
		Power:             p.Power.Value,
		InitialDeviation:  p.InitialDeviation.Value,
		ImprovedDeviation: p.ImprovedDeviation.Value,
		RatePerKWh:        p.RatePerKWh.Value,
	}
}

// ParseInputs parses all four fields. It never fails.
func ParseInputs(raw RawInputs) (Inputs, ParsedInputs) {
	p := ParsedInputs{
		Power:             ParseField(raw.Power),
		InitialDeviation:  ParseField(raw.InitialDeviation),
		ImprovedDeviation: ParseField(raw.ImprovedDeviation),
		RatePerKWh:        ParseField(raw.RatePerKWh),
	}
	return p.Inputs(), p
}

// FormValue is a JSON value that may arrive as a number or a string.
// Strings go through ParseField; null, booleans and garbage become zero.
type FormValue struct {
	Field
}

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			v.Field = Field{Raw: string(b), Defaulted: true}
			return nil
		}
		v.Field = ParseField(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil || bytes.Equal(b, []byte("null")) {
		v.Field = Field{Raw: string(b), Defaulted: true}
		return nil
	}
	v.Field = Field{Raw: string(b), Value: n}
	return nil
}

func (v FormValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Value)
}

// Num builds a FormValue from a number.
func Num(x float64) FormValue {
	return FormValue{Field{Raw: strconv.FormatFloat(x, 'g', -1, 64), Value: x}}
}
