package raytracer

import "github.com/jpclark/raytracer/internal/prim"

// Primitive is the open set of canonical local-space geometries a
// Shape can wrap: sphere, plane, cube, cylinder. Each is defined in
// its own canonical local space and knows nothing about the world
// transform, material, or pattern layered on top of it by Shape.
type Primitive interface {
	// LocalIntersect returns the (possibly empty, possibly duplicate)
	// times at which localRay crosses the primitive's surface, in the
	// primitive's own local space.
	LocalIntersect(localRay Ray) []float64
	// LocalNormalAt returns the surface normal at localPoint, which is
	// assumed to already lie on the primitive's surface.
	LocalNormalAt(localPoint prim.Point) prim.Vector
}
