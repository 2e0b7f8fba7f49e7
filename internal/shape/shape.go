package shape

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of
// radius 1.
const kappa = 0.5522847498307936

// Shape is a rounded rectangle, or a circle inscribed in the rectangle
// when Circle is set.
type Shape struct {
	Left, Top, Right, Bottom float64
	Radius                   float64
	Circle                   bool
}

// Width returns the horizontal extent of s.
func (s Shape) Width() float64 { return s.Right - s.Left }

// Height returns the vertical extent of s.
func (s Shape) Height() float64 { return s.Bottom - s.Top }

// Empty reports whether s has no area.
func (s Shape) Empty() bool {
	return !(s.Width() > 0) || !(s.Height() > 0)
}

// Outset grows s by d on every side, adjusting the corner radius so the
// result stays parallel to the original outline. Negative d shrinks.
func (s Shape) Outset(d float64) Shape {
	s = s.resolve()
	out := Shape{
		Left:   s.Left - d,
		Top:    s.Top - d,
		Right:  s.Right + d,
		Bottom: s.Bottom + d,
		Radius: math.Max(s.Radius+d, 0),
	}
	return out
}

// Bounds returns the integer rectangle covering s.
func (s Shape) Bounds() image.Rectangle {
	s = s.resolve()
	return image.Rect(
		int(math.Floor(s.Left)),
		int(math.Floor(s.Top)),
		int(math.Ceil(s.Right)),
		int(math.Ceil(s.Bottom)),
	)
}

// resolve turns a circle into the equivalent square rounded rectangle and
// clamps the radius to half the shorter side.
func (s Shape) resolve() Shape {
	if s.Circle {
		r := math.Min(s.Width(), s.Height()) / 2
		cx, cy := (s.Left+s.Right)/2, (s.Top+s.Bottom)/2
		return Shape{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r, Radius: r}
	}
	maxR := math.Min(s.Width(), s.Height()) / 2
	if s.Radius > maxR {
		s.Radius = maxR
	}
	if s.Radius < 0 || math.IsNaN(s.Radius) {
		s.Radius = 0
	}
	return s
}

// Fill returns the coverage mask of the interior of s within region.
func Fill(region image.Rectangle, s Shape) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, region.Dx(), region.Dy()))
	if region.Empty() || s.Empty() {
		return mask
	}
	z := newRasterizer(region)
	addContour(z, region.Min, s.resolve(), false)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Stroke returns the coverage mask of a stroke of the given width centered
// on the outline of s. The stroke is built as the outline grown by half
// the width minus the outline shrunk by half the width.
func Stroke(region image.Rectangle, s Shape, width float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, region.Dx(), region.Dy()))
	if region.Empty() || !(width > 0) || s.Empty() {
		return mask
	}
	h := width / 2
	s = s.resolve()
	outer := s.Outset(h)
	inner := s.Outset(-h)

	z := newRasterizer(region)
	addContour(z, region.Min, outer, false)
	if !inner.Empty() {
		addContour(z, region.Min, inner, true)
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func newRasterizer(region image.Rectangle) *vector.Rasterizer {
	z := vector.NewRasterizer(region.Dx(), region.Dy())
	z.DrawOp = draw.Src
	return z
}

// addContour appends the closed outline of s, translated so that origin
// maps to (0, 0). Outer contours run clockwise in y-down space; reversed
// contours run counter-clockwise and cancel coverage, which cuts holes.
func addContour(z *vector.Rasterizer, origin image.Point, s Shape, reverse bool) {
	ox, oy := float64(origin.X), float64(origin.Y)
	l, t := s.Left-ox, s.Top-oy
	r, b := s.Right-ox, s.Bottom-oy
	rad := s.Radius
	k := rad * kappa

	pt := func(x, y float64) (float32, float32) { return float32(x), float32(y) }

	if !reverse {
		z.MoveTo(pt(l+rad, t))
		z.LineTo(pt(r-rad, t))
		cubeTo(z, r-rad+k, t, r, t+rad-k, r, t+rad)
		z.LineTo(pt(r, b-rad))
		cubeTo(z, r, b-rad+k, r-rad+k, b, r-rad, b)
		z.LineTo(pt(l+rad, b))
		cubeTo(z, l+rad-k, b, l, b-rad+k, l, b-rad)
		z.LineTo(pt(l, t+rad))
		cubeTo(z, l, t+rad-k, l+rad-k, t, l+rad, t)
	} else {
		z.MoveTo(pt(l+rad, t))
		cubeTo(z, l+rad-k, t, l, t+rad-k, l, t+rad)
		z.LineTo(pt(l, b-rad))
		cubeTo(z, l, b-rad+k, l+rad-k, b, l+rad, b)
		z.LineTo(pt(r-rad, b))
		cubeTo(z, r-rad+k, b, r, b-rad+k, r, b-rad)
		z.LineTo(pt(r, t+rad))
		cubeTo(z, r, t+rad-k, r-rad+k, t, r-rad, t)
	}
	z.ClosePath()
}

func cubeTo(z *vector.Rasterizer, c1x, c1y, c2x, c2y, x, y float64) {
	z.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}
