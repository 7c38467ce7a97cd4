package estimator

import "math"

// GaussianDensity is the normal probability density at x.
// deviation is not checked: zero yields NaN or +Inf.
func GaussianDensity(x, mean, deviation float64) float64 {
	coefficient := 1 / (deviation * math.Sqrt(2*math.Pi))
	exponent := -math.Pow(x-mean, 2) / (2 * math.Pow(deviation, 2))
	return coefficient * math.Exp(exponent)
}

// IntegrateTrapezoidal approximates the integral of GaussianDensity(x, mean, deviation)
// over [start, end] with the composite trapezoidal rule on intervals equal steps.
//
// No normalization is applied and inverted bounds are not swapped, so start > end
// gives a negative result. A zero-width window integrates to exactly 0.
func IntegrateTrapezoidal(start, end float64, intervals int, mean, deviation float64) float64 {
	if intervals <= 0 {
		return 0
	}
	step := (end - start) / float64(intervals)
	if step == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < intervals; i++ {
		left := start + float64(i)*step
		right := start + float64(i+1)*step
		sum += (GaussianDensity(left, mean, deviation) + GaussianDensity(right, mean, deviation)) / 2 * step
	}
	return sum
}
