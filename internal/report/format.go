package report

import (
	"fmt"
	"math"
	"strings"

	"solar-profit/internal/estimator"

	"github.com/shopspring/decimal"
)

// Unit is appended to every money line.
const Unit = "thousand UAH"

var labels = [6]string{
	"Earnings before improvement",
	"Net revenue before improvement",
	"Penalties before improvement",
	"Earnings after improvement",
	"Net revenue after improvement",
	"Penalties after improvement",
}

// Values returns the six display figures in display order.
func Values(r estimator.Report) [6]float64 {
	return [6]float64{
		r.EarningsBefore, r.NetBefore, r.PenaltiesBefore,
		r.EarningsAfter, r.NetAfter, r.PenaltiesAfter,
	}
}

// FormatText renders the six figures as labelled lines with two decimals.
func FormatText(r estimator.Report) string {
	var b strings.Builder
	for i, v := range Values(r) {
		fmt.Fprintf(&b, "%s: %s %s\n", labels[i], Fixed2(v), Unit)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Fixed2 formats v with exactly two decimals. Non-finite values print as NaN, +Inf or -Inf.
func Fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Round2 rounds v half away from zero to two decimals. Non-finite values pass through.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
