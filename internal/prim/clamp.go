package prim

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Float | constraints.Integer](lo, hi, v T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t, where t=0 yields a
// and t=1 yields b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
