package raytracer

import (
	"math"

	"github.com/jpclark/raytracer/internal/prim"
)

// Sphere is the unit sphere centered at the origin of its local space.
type Sphere struct{}

func NewSphere() Sphere { return Sphere{} }

// LocalIntersect solves the quadratic |O + tD|^2 = 1 for t.
func (Sphere) LocalIntersect(localRay Ray) []float64 {
	// L is the vector from the sphere's center (the origin) to the
	// ray's origin.
	l := localRay.Origin.Sub(prim.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(l)
	c := l.Dot(l) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	return []float64{t1, t2}
}

// LocalNormalAt is simply the point itself: for the unit sphere at the
// origin, the outward normal at p equals p - origin.
func (Sphere) LocalNormalAt(localPoint prim.Point) prim.Vector {
	return localPoint.Sub(prim.NewPoint(0, 0, 0))
}

// NewGlassSphere returns a Shape wrapping a unit sphere with a
// transparent, highly refractive material (transparency 1, refractive
// index 1.5) and the identity transform.
func NewGlassSphere() *Shape {
	mat := DefaultMaterial()
	mat.Transparency = 1.0
	mat.RefractiveIndex = 1.5
	s, err := NewShape(Sphere{}, mat, prim.Identity4())
	if err != nil {
		// Identity4 is always invertible; this cannot happen.
		panic(err)
	}
	return s
}
