package raytracer

import (
	"math"

	"github.com/jpclark/raytracer/internal/prim"
)

// Cylinder is the unit-radius cylinder about the y-axis in local
// space, truncated to y in (Min, Max). When Capped is true, both ends
// are closed with flat caps; otherwise the cylinder is an open tube.
type Cylinder struct {
	Min, Max float64 // Min defaults to -Inf, Max to +Inf for an untruncated cylinder.
	Capped   bool
}

// NewCylinder returns an untruncated, uncapped cylinder.
func NewCylinder() Cylinder {
	return Cylinder{Min: math.Inf(-1), Max: math.Inf(1), Capped: false}
}

// NewTruncatedCylinder returns a cylinder bounded to y in (min, max),
// optionally capped at both ends.
func NewTruncatedCylinder(min, max float64, capped bool) Cylinder {
	return Cylinder{Min: min, Max: max, Capped: capped}
}

func (c Cylinder) LocalIntersect(localRay Ray) []float64 {
	var ts []float64

	dx, dz := localRay.Direction.X, localRay.Direction.Z
	ox, oz := localRay.Origin.X, localRay.Origin.Z

	a := dx*dx + dz*dz
	if a >= prim.Epsilon {
		b := 2*ox*dx + 2*oz*dz
		cc := ox*ox + oz*oz - 1
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}
		sqrtDisc := math.Sqrt(discriminant)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		y0 := localRay.Origin.Y + t0*localRay.Direction.Y
		if c.Min < y0 && y0 < c.Max {
			ts = append(ts, t0)
		}
		y1 := localRay.Origin.Y + t1*localRay.Direction.Y
		if c.Min < y1 && y1 < c.Max {
			ts = append(ts, t1)
		}
	}

	return append(ts, c.intersectCaps(localRay)...)
}

// intersectCaps checks the cylinder's two end caps for an intersection
// with localRay, when the cylinder is capped.
func (c Cylinder) intersectCaps(localRay Ray) []float64 {
	if !c.Capped || math.Abs(localRay.Direction.Y) < prim.Epsilon {
		return nil
	}
	var ts []float64
	for _, y := range []float64{c.Min, c.Max} {
		t := (y - localRay.Origin.Y) / localRay.Direction.Y
		if checkCap(localRay, t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// checkCap reports whether the intersection at t with the x-z plane at
// the given y is within the radius-1 disc.
func checkCap(localRay Ray, t float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= 1
}

func (c Cylinder) LocalNormalAt(p prim.Point) prim.Vector {
	// Inside one of the caps when the squared radius is less than 1
	// and the point is within epsilon of the cap's y.
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1 {
		if p.Y >= c.Max-prim.Epsilon {
			return prim.NewVector(0, 1, 0)
		}
		if p.Y <= c.Min+prim.Epsilon {
			return prim.NewVector(0, -1, 0)
		}
	}
	return prim.NewVector(p.X, 0, p.Z)
}
