package estimator

import (
	"math"

	"solar-profit/internal/model"
)

// DefaultIntervals is the number of trapezoid steps used per efficiency pass.
const DefaultIntervals = 1000

// displayScale converts currency units to thousands.
const displayScale = 1000

// Window is the integration interval shared by both efficiency passes.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Report is the outcome of one estimate. Money figures are in thousands of currency units.
type Report struct {
	EarningsBefore  float64
	NetBefore       float64
	PenaltiesBefore float64
	EarningsAfter   float64
	NetAfter        float64
	PenaltiesAfter  float64

	EfficiencyBefore float64
	EfficiencyAfter  float64
	Window           Window
}

// Finite reports whether every figure in r is a finite number.
func (r Report) Finite() bool {
	for _, v := range []float64{
		r.EarningsBefore, r.NetBefore, r.PenaltiesBefore,
		r.EarningsAfter, r.NetAfter, r.PenaltiesAfter,
		r.EfficiencyBefore, r.EfficiencyAfter,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Gain is the improvement in net revenue.
func (r Report) Gain() float64 {
	return r.NetAfter - r.NetBefore
}

// Estimator computes reports with a configurable trapezoid step count.
// The zero value uses DefaultIntervals.
type Estimator struct {
	Intervals int
}

func (e Estimator) intervals() int {
	if e.Intervals <= 0 {
		return DefaultIntervals
	}
	return e.Intervals
}

// Compute runs both efficiency passes and derives the money figures.
//
// The window is always [power - improvedDeviation, power + improvedDeviation];
// only the spread of the distribution differs between "before" and "after".
func (e Estimator) Compute(in model.Inputs) Report {
	n := e.intervals()
	w := Window{
		Start: in.Power - in.ImprovedDeviation,
		End:   in.Power + in.ImprovedDeviation,
	}

	effBefore := IntegrateTrapezoidal(w.Start, w.End, n, in.Power, in.InitialDeviation)
	earnBefore := Earnings(in.Power, effBefore, in.RatePerKWh)
	penBefore := Penalties(in.Power, effBefore, in.RatePerKWh)

	effAfter := IntegrateTrapezoidal(w.Start, w.End, n, in.Power, in.ImprovedDeviation)
	earnAfter := Earnings(in.Power, effAfter, in.RatePerKWh)
	penAfter := Penalties(in.Power, effAfter, in.RatePerKWh)

	return Report{
		EarningsBefore:  earnBefore / displayScale,
		NetBefore:       (earnBefore - penBefore) / displayScale,
		PenaltiesBefore: penBefore / displayScale,
		EarningsAfter:   earnAfter / displayScale,
		NetAfter:        (earnAfter - penAfter) / displayScale,
		PenaltiesAfter:  penAfter / displayScale,

		EfficiencyBefore: effBefore,
		EfficiencyAfter:  effAfter,
		Window:           w,
	}
}

// ComputeReport is Compute with DefaultIntervals.
func ComputeReport(in model.Inputs) Report {
	return Estimator{Intervals: DefaultIntervals}.Compute(in)
}
