package models

import "solar-profit/internal/model"

// EstimateRequest is the form of the original app as JSON.
// Each field may be a number or a string; missing or unparsable fields become 0.
type EstimateRequest struct {
	Power             *model.FormValue `json:"power,omitempty"`
	InitialDeviation  *model.FormValue `json:"initial_deviation,omitempty"`
	ImprovedDeviation *model.FormValue `json:"improved_deviation,omitempty"`
	RatePerKWh        *model.FormValue `json:"rate_per_kwh,omitempty"`
}

// Parse applies the zero-default contract to every field.
func (r EstimateRequest) Parse() (model.Inputs, model.ParsedInputs) {
	p := model.ParsedInputs{
		Power:             field(r.Power),
		InitialDeviation:  field(r.InitialDeviation),
		ImprovedDeviation: field(r.ImprovedDeviation),
		RatePerKWh:        field(r.RatePerKWh),
	}
	return p.Inputs(), p
}

func field(v *model.FormValue) model.Field {
	if v == nil {
		return model.Field{Defaulted: true}
	}
	return v.Field
}

// NewEstimateRequest builds a request from already-parsed numbers.
func NewEstimateRequest(in model.Inputs) EstimateRequest {
	num := func(x float64) *model.FormValue {
		v := model.Num(x)
		return &v
	}
	return EstimateRequest{
		Power:             num(in.Power),
		InitialDeviation:  num(in.InitialDeviation),
		ImprovedDeviation: num(in.ImprovedDeviation),
		RatePerKWh:        num(in.RatePerKWh),
	}
}

// Overrides keeps only the fields present in the request. A present field
// that does not parse overrides with 0.
func (r EstimateRequest) Overrides() model.Overrides {
	set := func(v *model.FormValue) *float64 {
		if v == nil {
			return nil
		}
		return model.Set(v.Value)
	}
	return model.Overrides{
		Power:             set(r.Power),
		InitialDeviation:  set(r.InitialDeviation),
		ImprovedDeviation: set(r.ImprovedDeviation),
		RatePerKWh:        set(r.RatePerKWh),
	}
}

// NewOverridesRequest builds a request carrying only the set fields of o.
func NewOverridesRequest(o model.Overrides) EstimateRequest {
	num := func(p *float64) *model.FormValue {
		if p == nil {
			return nil
		}
		v := model.Num(*p)
		return &v
	}
	return EstimateRequest{
		Power:             num(o.Power),
		InitialDeviation:  num(o.InitialDeviation),
		ImprovedDeviation: num(o.ImprovedDeviation),
		RatePerKWh:        num(o.RatePerKWh),
	}
}

// CompareRequest compares variations applied to a base scenario.
type CompareRequest struct {
	Base       EstimateRequest `json:"base"`
	Variations []Variation     `json:"variations" binding:"required,min=1,dive"`
}

// Variation overrides the fields of the base it carries.
type Variation struct {
	Name   string          `json:"name" binding:"required"`
	Inputs EstimateRequest `json:"inputs"`
}

// SweepRequest varies improved_deviation over [from, to].
type SweepRequest struct {
	Base EstimateRequest `json:"base"`
	From float64         `json:"from"`
	To   float64         `json:"to"`
	Step float64         `json:"step" binding:"required"`
}
