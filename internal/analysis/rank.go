package analysis

import (
	"math"
	"sort"

	"solar-profit/internal/estimator"
	"solar-profit/internal/model"
)

// Variation is a named set of overrides applied to a base scenario.
type Variation struct {
	Name      string          `yaml:"name" json:"name"`
	Overrides model.Overrides `yaml:",inline" json:"inputs"`
}

type Comparison struct {
	Name   string
	Inputs model.Inputs
	Report estimator.Report
}

// Gain is the improvement in net revenue, in thousands.
func (c Comparison) Gain() float64 { return c.Report.Gain() }

// Compare computes every variation applied to base and sorts descending by gain.
// Ties keep name order so output is stable; NaN gains come last.
func Compare(base model.Inputs, variations []Variation, est estimator.Estimator) []Comparison {
	out := make([]Comparison, 0, len(variations))
	for _, v := range variations {
		in := v.Overrides.Apply(base)
		out = append(out, Comparison{
			Name:   v.Name,
			Inputs: in,
			Report: est.Compute(in),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := out[i].Gain(), out[j].Gain()
		// NaN gains sort last.
		if ni, nj := math.IsNaN(gi), math.IsNaN(gj); ni || nj {
			if ni != nj {
				return nj
			}
			return out[i].Name < out[j].Name
		}
		if gi != gj {
			return gi > gj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
