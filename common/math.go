package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// Approach moves v toward zero by d without crossing it.
func Approach(v, d float64) float64 {
	return math.Max(0, v-d)
}
