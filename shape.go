package raytracer

import (
	"fmt"

	"github.com/jpclark/raytracer/internal/prim"
)

// Shape binds a Primitive to a world transform and a Material, and
// caches the transform's inverse and inverse-transpose so that the hot
// intersection/shading loop never recomputes them. Each Shape also
// carries a stable ID, reported by ID(); Intersections reference the
// Shape by pointer.
type Shape struct {
	id        int
	Primitive Primitive
	Material  Material

	transform        prim.Matrix
	inverse          prim.Matrix
	inverseTranspose prim.Matrix
}

var nextShapeID = 1

// NewShape constructs a Shape, failing if transform is singular — per
// spec.md §7, this is a construction-time failure, so the render loop
// never has to handle a non-invertible transform.
func NewShape(p Primitive, material Material, transform prim.Matrix) (*Shape, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("raytracer: shape transform: %w", err)
	}
	s := &Shape{
		id:               nextShapeID,
		Primitive:        p,
		Material:         material,
		transform:        transform,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
	}
	nextShapeID++
	return s, nil
}

func (s *Shape) ID() int { return s.id }

func (s *Shape) Transform() prim.Matrix { return s.transform }

// Intersect converts worldRay into the shape's local space, collects
// the primitive's local intersection times, and wraps each as an
// Intersection referencing this shape. The returned list preserves the
// primitive's own time order; it is not re-sorted.
func (s *Shape) Intersect(worldRay Ray) Intersections {
	localRay := worldRay.Transform(s.inverse)
	times := s.Primitive.LocalIntersect(localRay)
	xs := make(Intersections, len(times))
	for i, t := range times {
		xs[i] = Intersection{T: t, Object: s}
	}
	return xs
}

// NormalAt computes the world-space surface normal at worldPoint. The
// inverse-transpose (rather than the transform itself) is required so
// that normals remain perpendicular to the surface under non-uniform
// scaling and rotation.
func (s *Shape) NormalAt(worldPoint prim.Point) prim.Vector {
	localPoint := s.inverse.MulPoint(worldPoint)
	localNormal := s.Primitive.LocalNormalAt(localPoint)
	worldNormal := s.inverseTranspose.MulVector(localNormal)
	return worldNormal.Normalize()
}

// Lighting converts worldPoint to the shape's local coordinates (so
// that a moving shape carries its pattern along with it) and delegates
// to the material's Phong computation.
func (s *Shape) Lighting(light PointLight, worldPoint prim.Point, eye, normal prim.Vector, inShadow bool) prim.Color {
	localPoint := s.inverse.MulPoint(worldPoint)
	return s.Material.Lighting(light, localPoint, eye, normal, inShadow)
}
