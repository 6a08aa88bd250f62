package raytracer

import "github.com/jpclark/raytracer/internal/prim"

// Plane is the xz plane (y=0) in local space, extending infinitely.
type Plane struct{}

func NewPlane() Plane { return Plane{} }

// LocalIntersect treats rays (nearly) parallel to the plane as missing
// it entirely, to avoid dividing by a near-zero direction.y.
func (Plane) LocalIntersect(localRay Ray) []float64 {
	if abs(localRay.Direction.Y) < prim.Epsilon {
		return nil
	}
	t := -localRay.Origin.Y / localRay.Direction.Y
	return []float64{t}
}

// LocalNormalAt is (0,1,0) everywhere on the plane.
func (Plane) LocalNormalAt(prim.Point) prim.Vector {
	return prim.NewVector(0, 1, 0)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
