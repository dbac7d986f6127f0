package gcode

import "math"

// Point is a 2D coordinate on the XY work plane.
type Point struct {
	X float64
	Y float64
}

// Matrix is a 3×3 homogeneous transform over XY points, row-major.
type Matrix [3][3]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translation returns a transform moving points by (dx, dy).
func Translation(dx, dy float64) Matrix {
	m := Identity()
	m[0][2] = dx
	m[1][2] = dy
	return m
}

// RotationCW returns a rotation about the origin where a positive angle
// rotates points clockwise (looking down at XY from Z positive to Z
// negative). This is the transpose of the usual counterclockwise rotation
// matrix: cos on the diagonal, +sin upper-right, -sin lower-left.
func RotationCW(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Matrix{
		{cos, sin, 0},
		{-sin, cos, 0},
		{0, 0, 1},
	}
}

// Mul returns m·o: the transform applying o first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// Apply premultiplies the column vector (p.X, p.Y, 1) by m and drops the
// homogeneous coordinate.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}
