package pricing

import "math"

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// roundMoney rounds to the nearest whole currency unit, halves away from zero.
func roundMoney(v float64) float64 {
	return math.Round(v)
}

// ceilToStep rounds v up to a multiple of step. The quotient is snapped to 1e-9
// first so exact multiples stay put.
func ceilToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	q := math.Round(v/step*1e9) / 1e9
	return math.Ceil(q) * step
}

func nonNegative(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}
