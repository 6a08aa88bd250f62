// Package raytracer implements a Whitted-style recursive ray tracer:
// a scene of transformed analytic primitives is rendered into a pixel
// grid by casting a primary ray through every pixel of a camera and
// recursively evaluating reflection and refraction until a bounce
// budget is exhausted.
package raytracer

import (
	"fmt"

	"github.com/jpclark/raytracer/internal/prim"
)

// Ray is a half-line: an origin point and a direction vector,
// parameterised by a non-negative time t.
type Ray struct {
	Origin    prim.Point
	Direction prim.Vector
}

func NewRay(origin prim.Point, direction prim.Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// Position returns the point along the ray at time t.
func (r Ray) Position(t float64) prim.Point {
	return r.Origin.AddVector(r.Direction.Scale(t))
}

// Transform applies an affine transform m to the ray, treating Origin
// as a point (implicit w=1) and Direction as a vector (implicit w=0).
func (r Ray) Transform(m prim.Matrix) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
