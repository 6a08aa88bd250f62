package prim

import "math"

// Identity4 is the 4x4 identity transform.
func Identity4() Matrix {
	return Identity(4)
}

func Translation(x, y, z float64) Matrix {
	return NewMatrixFromRows([][]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

func Scaling(x, y, z float64) Matrix {
	return NewMatrixFromRows([][]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrixFromRows([][]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrixFromRows([][]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return NewMatrixFromRows([][]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing shears each axis in proportion to the other two, in the
// order (xy, xz, yx, yz, zx, zy).
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrixFromRows([][]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// ViewTransform builds the world-to-camera-space transform for an eye
// at from, looking toward to, with the given rough up direction.
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrixFromRows([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
