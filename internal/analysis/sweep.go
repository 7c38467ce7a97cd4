package analysis

import (
	"errors"
	"math"

	"solar-profit/internal/estimator"
	"solar-profit/internal/model"
)

var ErrInvalidSweep = errors.New("sweep requires step > 0 and from <= to")

// maxSweepPoints bounds a single sweep.
const maxSweepPoints = 10000

type SweepPoint struct {
	ImprovedDeviation float64
	Report            estimator.Report
}

// Sweep varies ImprovedDeviation from from to to (inclusive) in increments of step,
// keeping the rest of base fixed.
func Sweep(base model.Inputs, from, to, step float64, est estimator.Estimator) ([]SweepPoint, error) {
	if !(step > 0) || !(from <= to) || math.IsInf(to-from, 0) {
		return nil, ErrInvalidSweep
	}
	count := math.Floor((to-from)/step+1e-9) + 1
	if !(count <= maxSweepPoints) {
		return nil, ErrInvalidSweep
	}
	n := int(count)
	out := make([]SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		in := base
		in.ImprovedDeviation = from + float64(i)*step
		out = append(out, SweepPoint{
			ImprovedDeviation: in.ImprovedDeviation,
			Report:            est.Compute(in),
		})
	}
	return out, nil
}
