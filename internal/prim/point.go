package prim

import "fmt"

// Point is a location in 3-space. Point-Point yields a Vector;
// Point+-Vector yields a Point.
type Point struct {
	X, Y, Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// AddVector translates p by v.
func (p Point) AddVector(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// SubVector translates p by the negation of v.
func (p Point) SubVector(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

func (p Point) ApproxEqual(other Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y) && ApproxEqual(p.Z, other.Z)
}
