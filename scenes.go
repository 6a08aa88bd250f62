package raytracer

import (
	"github.com/jpclark/raytracer/internal/prim"
)

// DefaultWorld builds the canonical two-nested-spheres test world used
// throughout spec.md §8's concrete scenarios: an outer sphere with a
// colorful diffuse material, an inner sphere scaled by half, and a
// single white point light at (-10, 10, -10).
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(NewPointLight(prim.NewPoint(-10, 10, -10), prim.White))

	outerMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Solid(prim.NewColor(0.8, 1.0, 0.6))
		m.Diffuse = 0.7
		m.Specular = 0.2
	})
	outer, err := NewShape(NewSphere(), outerMaterial, prim.Identity4())
	if err != nil {
		panic(err)
	}
	w.AddShape(outer)

	inner, err := NewShape(NewSphere(), DefaultMaterial(), prim.Scaling(0.5, 0.5, 0.5))
	if err != nil {
		panic(err)
	}
	w.AddShape(inner)

	return w
}

// FirstWorldScene is a scene-assembly demo (out of scope for the core;
// exercised only by cmd/render) modeled on the Rust source's
// first_world exercise: a floor plane and a few positioned spheres
// with varied materials under a single light.
func FirstWorldScene() *World {
	w := NewWorld()
	w.AddLight(NewPointLight(prim.NewPoint(-10, 10, -10), prim.White))

	floorMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Checkers(prim.NewColor(0.9, 0.9, 0.9), prim.NewColor(0.1, 0.1, 0.1))
		m.Specular = 0
		m.Reflective = 0.1
	})
	floor, err := NewShape(NewPlane(), floorMaterial, prim.Identity4())
	if err != nil {
		panic(err)
	}
	w.AddShape(floor)

	middleMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Solid(prim.NewColor(0.1, 1, 0.5))
		m.Diffuse = 0.7
		m.Specular = 0.3
	})
	middle, err := NewShape(NewSphere(), middleMaterial, prim.Translation(-0.5, 1, 0.5))
	if err != nil {
		panic(err)
	}
	w.AddShape(middle)

	rightMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Solid(prim.NewColor(0.5, 1, 0.1))
		m.Diffuse = 0.7
		m.Specular = 0.3
	})
	rightTransform := prim.Translation(1.5, 0.5, -0.5).Multiply(prim.Scaling(0.5, 0.5, 0.5))
	right, err := NewShape(NewSphere(), rightMaterial, rightTransform)
	if err != nil {
		panic(err)
	}
	w.AddShape(right)

	leftTransform := prim.Translation(-1.5, 0.33, -0.75).Multiply(prim.Scaling(0.33, 0.33, 0.33))
	leftMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Solid(prim.NewColor(1, 0.8, 0.1))
		m.Diffuse = 0.7
		m.Specular = 0.3
	})
	left, err := NewShape(NewSphere(), leftMaterial, leftTransform)
	if err != nil {
		panic(err)
	}
	w.AddShape(left)

	return w
}

// CheckeredRoomScene exercises stripes, rings, and checkers together
// in a single scene: a checkered floor, a striped wall (a rotated and
// translated plane), and a reflective, transparent sphere with a ringed
// pattern, lit by two point lights. Modeled on the Rust source's
// world_one exercise.
func CheckeredRoomScene() *World {
	w := NewWorld()
	w.AddLight(NewPointLight(prim.NewPoint(0, 10, -10), prim.White))
	w.AddLight(NewPointLight(prim.NewPoint(5, 3, 5), prim.NewColor(0.3, 0.3, 0.4)))

	floorMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Checkers(prim.NewColor(1, 1, 1), prim.NewColor(0.2, 0.2, 0.2))
		m.Reflective = 0.2
	})
	floor, err := NewShape(NewPlane(), floorMaterial, prim.Identity4())
	if err != nil {
		panic(err)
	}
	w.AddShape(floor)

	wallMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Stripes(prim.NewColor(0.4, 0.2, 0.2), prim.NewColor(0.6, 0.3, 0.3))
	})
	wallTransform := prim.Translation(0, 0, 5).Multiply(prim.RotationX(1.5708))
	wall, err := NewShape(NewPlane(), wallMaterial, wallTransform)
	if err != nil {
		panic(err)
	}
	w.AddShape(wall)

	ballMaterial := DefaultMaterial().With(func(m *Material) {
		m.Pattern = Rings(prim.NewColor(0.1, 0.1, 0.6), prim.NewColor(0.8, 0.8, 1))
		m.Transparency = 0.9
		m.Reflective = 0.9
		m.RefractiveIndex = 1.5
	})
	ball, err := NewShape(NewSphere(), ballMaterial, prim.Translation(0, 1, 0))
	if err != nil {
		panic(err)
	}
	w.AddShape(ball)

	return w
}
