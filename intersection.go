package raytracer

import (
	"sort"

	"github.com/jpclark/raytracer/internal/prim"
)

// Intersection is a (time, shape) record: a ray met Object's surface at
// time T. Intersections are produced only by a Shape's Intersect.
type Intersection struct {
	T      float64
	Object *Shape
}

// Intersections is a sequence of Intersection, conventionally kept
// sorted by ascending T once merged from multiple shapes.
type Intersections []Intersection

// Sort orders xs by ascending T in place and returns it for chaining.
func (xs Intersections) Sort() Intersections {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// Hit returns the intersection with the smallest non-negative time, or
// (Intersection{}, false) if every time is negative (or the list is
// empty). xs is assumed to already be sorted by ascending T.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// PreComputation is the shading frame derived from a hit: everything
// Material.Lighting and World's recursive shading need, precomputed
// once so the recursive reflection/refraction paths can reuse it.
type PreComputation struct {
	T      float64
	Object *Shape

	Point      prim.Point
	OverPoint  prim.Point // Point nudged along Normal, to offset secondary rays above the surface.
	UnderPoint prim.Point // Point nudged against Normal, to offset refracted rays below the surface.
	Eye        prim.Vector
	Normal     prim.Vector
	Reflect    prim.Vector
	Inside     bool

	N1, N2 float64 // Refractive indices of the media the ray is leaving/entering.
}

// PrepareComputations builds the shading frame for hit, given the ray
// that produced it and the full (sorted) intersection list the hit was
// chosen from — the full list is needed to walk the refractive-index
// stack for N1/N2.
func PrepareComputations(hit Intersection, ray Ray, all Intersections) PreComputation {
	pc := PreComputation{
		T:      hit.T,
		Object: hit.Object,
	}
	pc.Point = ray.Position(hit.T)
	pc.Eye = ray.Direction.Neg()
	pc.Normal = hit.Object.NormalAt(pc.Point)

	if pc.Normal.Dot(pc.Eye) < 0 {
		pc.Inside = true
		pc.Normal = pc.Normal.Neg()
	}

	pc.OverPoint = pc.Point.AddVector(pc.Normal.Scale(prim.Epsilon))
	pc.UnderPoint = pc.Point.SubVector(pc.Normal.Scale(prim.Epsilon))
	pc.Reflect = ray.Direction.Reflect(pc.Normal)

	pc.N1, pc.N2 = refractiveIndices(hit, all)

	return pc
}

// refractiveIndices walks all in order, maintaining a stack of
// currently-entered shapes, to find the refractive indices on either
// side of the surface at target (spec.md §4.7).
func refractiveIndices(target Intersection, all Intersections) (n1, n2 float64) {
	var containers []*Shape

	containsShape := func(s *Shape) int {
		for i, c := range containers {
			if c == s {
				return i
			}
		}
		return -1
	}

	for _, x := range all {
		isTarget := x.T == target.T && x.Object == target.Object

		if isTarget {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := containsShape(x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isTarget {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}
