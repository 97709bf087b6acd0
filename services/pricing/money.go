package pricing

import "math"

// RoundMoney rounds a monetary value to 2 decimals using round-half-up.
// Applied only when producing a Quote, never mid-calculation.
func RoundMoney(v float64) float64 {
	return float64(toCents(v)) / 100
}

// toCents converts a value to integer cents with round-half-up. The pay
// split is computed in cents so payNow + payLater always equals the total.
// The epsilon compensates for decimal values like 1.005 that sit just
// below their nominal magnitude in binary floating point.
const centsEpsilon = 1e-9

func toCents(v float64) int64 {
	if v < 0 {
		return -int64(math.Floor(-v*100 + 0.5 + centsEpsilon))
	}
	return int64(math.Floor(v*100 + 0.5 + centsEpsilon))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
