package raytracer

import (
	"math"

	"github.com/jpclark/raytracer/internal/prim"
)

// DefaultBounceBudget is the maximum recursion depth for reflection and
// refraction that World.ColorAt uses when none is specified.
const DefaultBounceBudget = 5

// World owns the scene's shapes and light sources. It answers ray
// intersections, shadow queries, and recursive color evaluation. All
// scene data is constructed before rendering and is read-only for the
// duration of a render.
type World struct {
	Shapes []*Shape
	Lights []PointLight

	shadowsEnabled bool
}

// NewWorld returns an empty world with shadows enabled.
func NewWorld() *World {
	return &World{shadowsEnabled: true}
}

// SetShadowsEnabled toggles shadow testing for the whole world; when
// disabled, IsShadowed always reports false (useful when debugging
// lighting in isolation).
func (w *World) SetShadowsEnabled(enabled bool) {
	w.shadowsEnabled = enabled
}

// AddShape appends s to the world's scene graph.
func (w *World) AddShape(s *Shape) {
	w.Shapes = append(w.Shapes, s)
}

// AddLight appends a point light to the world.
func (w *World) AddLight(l PointLight) {
	w.Lights = append(w.Lights, l)
}

// IntersectedBy returns every shape's intersections with ray, sorted by
// ascending time.
func (w *World) IntersectedBy(ray Ray) Intersections {
	var all Intersections
	for _, s := range w.Shapes {
		all = append(all, s.Intersect(ray)...)
	}
	return all.Sort()
}

// ColorAt traces ray through the world using the default bounce
// budget.
func (w *World) ColorAt(ray Ray) prim.Color {
	return w.colorAt(ray, DefaultBounceBudget)
}

// ColorAtDepth traces ray through the world with an explicit bounce
// budget, exposed so tests can check that pure-reflective/transparent
// materials terminate and that the budget bounds recursion.
func (w *World) ColorAtDepth(ray Ray, remaining int) prim.Color {
	return w.colorAt(ray, remaining)
}

func (w *World) colorAt(ray Ray, remaining int) prim.Color {
	xs := w.IntersectedBy(ray)
	hit, ok := xs.Hit()
	if !ok {
		return prim.Black
	}
	comps := PrepareComputations(hit, ray, xs)
	return w.shadeHit(comps, remaining)
}

// shadeHit combines direct Phong shading with recursive reflection and
// refraction, coupling the two by Schlick reflectance when the
// material is both reflective and transparent.
func (w *World) shadeHit(comps PreComputation, remaining int) prim.Color {
	var surface prim.Color
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(comps.Object.Lighting(light, comps.OverPoint, comps.Eye, comps.Normal, inShadow))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	mat := comps.Object.Material
	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// reflectedColor recursively traces the reflection ray, scaled by the
// material's reflectivity. Returns black once the bounce budget is
// exhausted or the material is not reflective at all.
func (w *World) reflectedColor(comps PreComputation, remaining int) prim.Color {
	if remaining <= 0 || comps.Object.Material.Reflective == 0 {
		return prim.Black
	}
	reflectRay := NewRay(comps.OverPoint, comps.Reflect)
	color := w.colorAt(reflectRay, remaining-1)
	return color.Scale(comps.Object.Material.Reflective)
}

// refractedColor recursively traces the refraction ray, scaled by the
// material's transparency. Total internal reflection (sin2T > 1)
// yields black, as does an exhausted bounce budget or an opaque
// material.
func (w *World) refractedColor(comps PreComputation, remaining int) prim.Color {
	mat := comps.Object.Material
	if remaining <= 0 || mat.Transparency == 0 {
		return prim.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return prim.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Scale(nRatio*cosI - cosT).Sub(comps.Eye.Scale(nRatio))
	refractRay := NewRay(comps.UnderPoint, direction)

	color := w.colorAt(refractRay, remaining-1)
	return color.Scale(mat.Transparency)
}

// IsShadowed reports whether point is occluded from light by any shape
// in the world. When shadows are disabled for the world, it always
// returns false.
func (w *World) IsShadowed(point prim.Point, light PointLight) bool {
	if !w.shadowsEnabled {
		return false
	}
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	shadowRay := NewRay(point, direction)
	xs := w.IntersectedBy(shadowRay)
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}

// Schlick approximates the Fresnel reflectance coefficient for the
// surface described by comps, coupling reflection and refraction in
// shadeHit.
func Schlick(comps PreComputation) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cosT := math.Sqrt(1 - sin2T)
		cos = cosT
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
