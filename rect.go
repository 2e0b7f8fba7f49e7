package okulus

import (
	"image"
	"math"
)

// Point is a 2D point in device pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in device pixels. Right and Bottom are
// exclusive edges, as in Android's RectF and image.Rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromImage converts an integer rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
	}
}

// XYWH creates a rectangle from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center of r.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Empty reports whether r has no area. NaN edges count as empty.
func (r Rect) Empty() bool {
	return !(r.Width() > 0) || !(r.Height() > 0)
}

// Inset shrinks r by dx on the left and right and by dy on the top and
// bottom. An axis that would invert collapses to zero size.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}.canon()
}

// InsetTrailing shrinks only the right and bottom edges.
func (r Rect) InsetTrailing(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}.canon()
}

// Offset translates r.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the largest rectangle contained by both r and s. The
// result is zero-sized when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Left:   math.Max(r.Left, s.Left),
		Top:    math.Max(r.Top, s.Top),
		Right:  math.Min(r.Right, s.Right),
		Bottom: math.Min(r.Bottom, s.Bottom),
	}
	if out.Right < out.Left {
		out.Right = out.Left
	}
	if out.Bottom < out.Top {
		out.Bottom = out.Top
	}
	return out
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}

// canon collapses inverted axes to zero size at their midpoint.
func (r Rect) canon() Rect {
	if r.Right < r.Left {
		c := (r.Left + r.Right) / 2
		r.Left, r.Right = c, c
	}
	if r.Bottom < r.Top {
		c := (r.Top + r.Bottom) / 2
		r.Top, r.Bottom = c, c
	}
	return r
}
