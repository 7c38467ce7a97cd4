package model

// Inputs are the four scalars behind one profitability estimate.
// Units:
// - Power: MW (nameplate output of the plant)
// - InitialDeviation, ImprovedDeviation: MW (standard deviation of the production error)
// - RatePerKWh: currency per kWh
//
// Nothing here is validated; see estimator.CheckDomain for the numeric edge cases.
type Inputs struct {
	Power             float64 `json:"power" yaml:"power"`
	InitialDeviation  float64 `json:"initial_deviation" yaml:"initial_deviation"`
	ImprovedDeviation float64 `json:"improved_deviation" yaml:"improved_deviation"`
	RatePerKWh        float64 `json:"rate_per_kwh" yaml:"rate_per_kwh"`
}

// Overrides are the fields a scenario variation sets explicitly.
// A nil field keeps the base value, so an explicit 0 still overrides.
type Overrides struct {
	Power             *float64 `json:"power,omitempty" yaml:"power,omitempty"`
	InitialDeviation  *float64 `json:"initial_deviation,omitempty" yaml:"initial_deviation,omitempty"`
	ImprovedDeviation *float64 `json:"improved_deviation,omitempty" yaml:"improved_deviation,omitempty"`
	RatePerKWh        *float64 `json:"rate_per_kwh,omitempty" yaml:"rate_per_kwh,omitempty"`
}

// Apply overlays the set fields of o onto base.
func (o Overrides) Apply(base Inputs) Inputs {
	out := base
	if o.Power != nil {
		out.Power = *o.Power
	}
	if o.InitialDeviation != nil {
		out.InitialDeviation = *o.InitialDeviation
	}
	if o.ImprovedDeviation != nil {
		out.ImprovedDeviation = *o.ImprovedDeviation
	}
	if o.RatePerKWh != nil {
		out.RatePerKWh = *o.RatePerKWh
	}
	return out
}

// Set returns a pointer to v, for building Overrides.
func Set(v float64) *float64 { return &v }
