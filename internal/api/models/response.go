package models

import (
	"math"

	"solar-profit/internal/estimator"
	"solar-profit/internal/model"
	"solar-profit/internal/report"
)

// EstimateResponse represents the response from one estimate.
type EstimateResponse struct {
	ID        string       `json:"id,omitempty"`
	Inputs    model.Inputs `json:"inputs"`
	Defaulted []string     `json:"defaulted,omitempty"` // fields that fell back to 0
	Report    Report       `json:"report"`
	Finite    bool         `json:"finite"`
	Warnings  []string     `json:"warnings,omitempty"`
}

// Report mirrors estimator.Report. Non-finite figures are null.
type Report struct {
	EarningsBefore  *float64 `json:"earnings_before"`
	NetBefore       *float64 `json:"net_before"`
	PenaltiesBefore *float64 `json:"penalties_before"`
	EarningsAfter   *float64 `json:"earnings_after"`
	NetAfter        *float64 `json:"net_after"`
	PenaltiesAfter  *float64 `json:"penalties_after"`

	EfficiencyBefore *float64 `json:"efficiency_before"`
	EfficiencyAfter  *float64 `json:"efficiency_after"`
	Window           Window   `json:"window"`
}

type Window struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// NewReport converts r for JSON encoding. Money figures are rounded to two
// decimals like the text report; efficiencies and the window are exact.
func NewReport(r estimator.Report) Report {
	return Report{
		EarningsBefore:   money(r.EarningsBefore),
		NetBefore:        money(r.NetBefore),
		PenaltiesBefore:  money(r.PenaltiesBefore),
		EarningsAfter:    money(r.EarningsAfter),
		NetAfter:         money(r.NetAfter),
		PenaltiesAfter:   money(r.PenaltiesAfter),
		EfficiencyBefore: finite(r.EfficiencyBefore),
		EfficiencyAfter:  finite(r.EfficiencyAfter),
		Window: Window{
			Start: finite(r.Window.Start),
			End:   finite(r.Window.End),
		},
	}
}

// Estimator converts r back, with null figures as NaN.
func (r Report) Estimator() estimator.Report {
	return estimator.Report{
		EarningsBefore:   value(r.EarningsBefore),
		NetBefore:        value(r.NetBefore),
		PenaltiesBefore:  value(r.PenaltiesBefore),
		EarningsAfter:    value(r.EarningsAfter),
		NetAfter:         value(r.NetAfter),
		PenaltiesAfter:   value(r.PenaltiesAfter),
		EfficiencyBefore: value(r.EfficiencyBefore),
		EfficiencyAfter:  value(r.EfficiencyAfter),
		Window: estimator.Window{
			Start: value(r.Window.Start),
			End:   value(r.Window.End),
		},
	}
}

func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func money(v float64) *float64 { return finite(report.Round2(v)) }

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Rank   int          `json:"rank"`
	Name   string       `json:"name"`
	Inputs model.Inputs `json:"inputs"`
	Report Report       `json:"report"`
	Gain   *float64     `json:"gain"`
}

type SweepResponse struct {
	Points []SweepPoint `json:"points"`
}

type SweepPoint struct {
	ImprovedDeviation float64  `json:"improved_deviation"`
	Report            Report   `json:"report"`
	Gain              *float64 `json:"gain"`
}

// NewGain wraps a gain for JSON encoding, rounded like the report figures.
func NewGain(v float64) *float64 { return money(v) }

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// FieldInfo describes one estimate input
type FieldInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}
