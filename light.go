package raytracer

import (
	"fmt"

	"github.com/jpclark/raytracer/internal/prim"
)

// PointLight is a single point light source: position plus intensity.
// It is immutable for the duration of a render.
type PointLight struct {
	Position  prim.Point
	Intensity prim.Color
}

func NewPointLight(position prim.Point, intensity prim.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

func (l PointLight) String() string {
	return fmt.Sprintf("PointLight(Position: %v, Intensity: %v)", l.Position, l.Intensity)
}
