package raytracer

import (
	"math"

	"github.com/jinzhu/copier"

	"github.com/jpclark/raytracer/internal/prim"
)

// patternDelegate is the open set of procedural color fields a Pattern
// can wrap: solid, stripes, gradient, rings, checkers. Each samples a
// point already expressed in the delegate's own pattern space.
type patternDelegate interface {
	sampleLocal(p prim.Point) prim.Color
}

// Pattern transforms a delegate color field by its own 4x4 transform,
// independent of (and composed with) the owning Shape's transform.
//
// Fields are exported so that copier.Copy (used by WithTransform) can
// reach them by reflection; patternDelegate itself stays unexported so
// the set of delegate kinds is closed to this package.
type Pattern struct {
	Delegate  patternDelegate
	Transform prim.Matrix
	Inverse   prim.Matrix
}

func newPattern(delegate patternDelegate) Pattern {
	return Pattern{
		Delegate:  delegate,
		Transform: prim.Identity4(),
		Inverse:   prim.Identity4(),
	}
}

// WithTransform returns a copy of p with its pattern-space transform
// replaced, following the fluent "with-X returns a new value" contract
// from spec.md §6; copier.Copy ensures the receiver is never mutated.
func (p Pattern) WithTransform(m prim.Matrix) (Pattern, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Pattern{}, err
	}
	var cp Pattern
	if err := copier.Copy(&cp, &p); err != nil {
		return Pattern{}, err
	}
	cp.Transform = m
	cp.Inverse = inv
	return cp, nil
}

// SampleAt samples the pattern at a point already expressed in the
// owning shape's local (object) space, by first converting to this
// pattern's own space.
func (p Pattern) SampleAt(shapeLocalPoint prim.Point) prim.Color {
	patternPoint := p.Inverse.MulPoint(shapeLocalPoint)
	return p.Delegate.sampleLocal(patternPoint)
}

// Solid returns a pattern that ignores position entirely.
func Solid(c prim.Color) Pattern {
	return newPattern(solidDelegate{color: c})
}

type solidDelegate struct{ color prim.Color }

func (s solidDelegate) sampleLocal(prim.Point) prim.Color { return s.color }

// Stripes alternates between a and b along the x axis, one unit wide.
func Stripes(a, b prim.Color) Pattern {
	return newPattern(stripeDelegate{a: a, b: b})
}

type stripeDelegate struct{ a, b prim.Color }

func (s stripeDelegate) sampleLocal(p prim.Point) prim.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.a
	}
	return s.b
}

// Gradient linearly interpolates from a to b along x within each unit,
// symmetric about x=0: the fractional sweep uses |x|-floor(|x|) scaled
// by the sign of x so the pattern does not jump discontinuously for
// negative x.
func Gradient(a, b prim.Color) Pattern {
	return newPattern(gradientDelegate{a: a, b: b})
}

type gradientDelegate struct{ a, b prim.Color }

func (g gradientDelegate) sampleLocal(p prim.Point) prim.Color {
	sign := 1.0
	if p.X < 0 {
		sign = -1.0
	}
	absX := math.Abs(p.X)
	fraction := (absX - math.Floor(absX)) * sign
	return g.a.Add(g.b.Sub(g.a).Scale(fraction))
}

// Rings alternates between a and b in concentric rings around the y
// axis, based on distance from it in the x-z plane.
func Rings(a, b prim.Color) Pattern {
	return newPattern(ringDelegate{a: a, b: b})
}

type ringDelegate struct{ a, b prim.Color }

func (r ringDelegate) sampleLocal(p prim.Point) prim.Color {
	dist := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if int(math.Floor(dist))%2 == 0 {
		return r.a
	}
	return r.b
}

// Checkers alternates between a and b in a 3D checkerboard.
func Checkers(a, b prim.Color) Pattern {
	return newPattern(checkerDelegate{a: a, b: b})
}

type checkerDelegate struct{ a, b prim.Color }

func (c checkerDelegate) sampleLocal(p prim.Point) prim.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.a
	}
	return c.b
}
