// Package prim implements the math kernel for 3D graphics: vectors,
// points, colors and dense matrices, plus the geometric transforms
// built on top of them.
package prim

import "math"

// Epsilon is the tolerance used throughout the kernel for approximate
// floating point comparisons (ray/primitive grazing checks, shading
// offsets, test assertions).
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
