package raytracer

import (
	"math"

	"github.com/jpclark/raytracer/internal/prim"
)

// Cube is the axis-aligned cube from -1 to 1 on every axis, in local
// space.
type Cube struct{}

func NewCube() Cube { return Cube{} }

// LocalIntersect runs the standard per-axis slab test: the cube is the
// intersection of three axis-aligned slabs, [-1,1] on x, y, and z.
func (Cube) LocalIntersect(localRay Ray) []float64 {
	xtmin, xtmax := checkAxis(localRay.Origin.X, localRay.Direction.X)
	ytmin, ytmax := checkAxis(localRay.Origin.Y, localRay.Direction.Y)
	ztmin, ztmax := checkAxis(localRay.Origin.Z, localRay.Direction.Z)

	tmin := max3(xtmin, ytmin, ztmin)
	tmax := min3(xtmax, ytmax, ztmax)

	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

// checkAxis computes the min/max times at which a ray along one axis
// crosses the slab [-1, 1], substituting signed infinities when the
// ray is (nearly) parallel to the slab's faces.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tminVal, tmaxVal float64
	if math.Abs(direction) >= prim.Epsilon {
		tminVal = tminNumerator / direction
		tmaxVal = tmaxNumerator / direction
	} else {
		tminVal = tminNumerator * math.Inf(1)
		tmaxVal = tmaxNumerator * math.Inf(1)
	}

	if tminVal > tmaxVal {
		tminVal, tmaxVal = tmaxVal, tminVal
	}
	return tminVal, tmaxVal
}

// LocalNormalAt returns the unit axis whose component has the largest
// magnitude at p, signed by that component.
func (Cube) LocalNormalAt(p prim.Point) prim.Vector {
	maxc := max3(math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z))

	switch {
	case maxc == math.Abs(p.X):
		return prim.NewVector(p.X, 0, 0)
	case maxc == math.Abs(p.Y):
		return prim.NewVector(0, p.Y, 0)
	default:
		return prim.NewVector(0, 0, p.Z)
	}
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
