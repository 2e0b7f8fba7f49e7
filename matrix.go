package okulus

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The bitmap transform of a Geometry maps source-image pixel coordinates
// into destination (canvas) coordinates.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformRect maps r through m and returns the axis-aligned bounds of
// the result.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := [4]Point{
		m.TransformPoint(Point{r.Left, r.Top}),
		m.TransformPoint(Point{r.Right, r.Top}),
		m.TransformPoint(Point{r.Left, r.Bottom}),
		m.TransformPoint(Point{r.Right, r.Bottom}),
	}
	out := Rect{Left: corners[0].X, Top: corners[0].Y, Right: corners[0].X, Bottom: corners[0].Y}
	for _, p := range corners[1:] {
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// ScaleFactors returns the horizontal and vertical scale of a matrix
// without rotation or shear.
func (m Matrix) ScaleFactors() (sx, sy float64) {
	return m.A, m.E
}

// Aff3 converts m to the x/image affine representation used by
// golang.org/x/image/draw.Transformer.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
