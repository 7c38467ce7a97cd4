package estimator

const (
	hoursPerDay = 24
	kWPerMW     = 1000
)

// Earnings is the daily revenue of the realized fraction of nameplate output.
// power is MW, rate is currency per kWh.
func Earnings(power, efficiency, rate float64) float64 {
	return power * hoursPerDay * efficiency * rate * kWPerMW
}

// Penalties is the daily revenue lost to the unrealized (1 - efficiency) fraction.
func Penalties(power, efficiency, rate float64) float64 {
	return power * hoursPerDay * (1 - efficiency) * rate * kWPerMW
}
