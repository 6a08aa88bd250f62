package raytracer

import (
	"math"

	"github.com/jinzhu/copier"

	"github.com/jpclark/raytracer/internal/prim"
)

// Material carries the Phong illumination coefficients plus the
// reflective/transparent/refractive-index parameters that drive
// recursive reflection and refraction in World.
type Material struct {
	Pattern   Pattern
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64

	Reflective      float64 // 0 (matte) .. 1 (perfect mirror)
	Transparency    float64 // 0 (opaque) .. 1 (fully transparent)
	RefractiveIndex float64 // 1.0 = vacuum/air, 1.5 = glass
}

// DefaultMaterial returns the spec-mandated defaults: a white solid
// pattern, ambient 0.1, diffuse 0.9, specular 0.9, shininess 200,
// reflective 0, transparency 0, refractive index 1.
func DefaultMaterial() Material {
	return Material{
		Pattern:         Solid(prim.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// With returns a copy of m with f applied to the copy, so the fluent
// "with-X" update pattern from spec.md §6/§9 never mutates the
// receiver. f typically sets one or two fields, e.g.:
//
//	glass := DefaultMaterial().With(func(m *Material) {
//		m.Transparency = 1.0
//		m.RefractiveIndex = 1.5
//	})
func (m Material) With(f func(*Material)) Material {
	var cp Material
	if err := copier.Copy(&cp, &m); err != nil {
		// copier only fails on type mismatches between src/dst, which
		// cannot happen when both sides are Material.
		panic(err)
	}
	f(&cp)
	return cp
}

// Lighting computes the Phong color at a point already converted to
// the owning shape's local coordinates (so that Pattern sampling moves
// with the shape), given the light, an eye vector pointing toward the
// camera, the surface normal, and whether the point is in shadow.
func (m Material) Lighting(light PointLight, objectPoint prim.Point, eye, normal prim.Vector, inShadow bool) prim.Color {
	effective := m.Pattern.SampleAt(objectPoint).Multiply(light.Intensity)
	ambient := effective.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightDir := light.Position.Sub(objectPoint).Normalize()
	lDotN := lightDir.Dot(normal)

	diffuse := prim.Black
	specular := prim.Black

	if lDotN >= 0 {
		diffuse = effective.Scale(m.Diffuse * lDotN)

		reflect := lightDir.Neg().Reflect(normal)
		rDotE := reflect.Dot(eye)
		if rDotE > 0 {
			factor := math.Pow(rDotE, m.Shininess)
			specular = light.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
