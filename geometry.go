package okulus

import "github.com/gogpu/okulus/internal/shape"

// Geometry is the derived layout of one shaped bitmap: the rectangles the
// renderer strokes and fills, and the transform that maps bitmap pixels
// into the image rectangle. It is pure derived state; BuildGeometry always
// returns identical values for identical inputs.
type Geometry struct {
	// Bounds is the destination rectangle the geometry was built for.
	Bounds Rect

	// BorderRect is the path of the border stroke. It is also the overlay
	// area when a border is drawn. With no border it equals ImageRect.
	BorderRect Rect
	// ImageRect is the area filled with the bitmap.
	ImageRect Rect
	// ShadowRect is the path of the shadow stroke, BorderRect shifted by
	// the shadow width toward the bottom-right. Zero when there is no
	// shadow.
	ShadowRect Rect

	// Transform maps bitmap pixel coordinates into ImageRect.
	Transform Matrix

	// CornerRadius is the resolved radius; half the shorter side of
	// Bounds in full-circle mode.
	CornerRadius float64
	FullCircle   bool

	// HasImage reports whether a bitmap is laid out and ImageRect has area.
	HasImage bool
	// Empty is set for zero-area bounds. Nothing is drawn.
	Empty bool
}

// BuildGeometry lays out a shaped bitmap of bitmapW x bitmapH pixels inside
// dst. A zero bitmap dimension lays out the shape without an image, so
// only border, shadow and overlay remain.
//
// The frame the shape occupies is dst, except for the anchored fit
// policies (FitStart, FitCenter, FitEnd) where it is the bitmap's mapped
// rectangle, so border and shadow hug the visible image. Inside the frame:
//
//	base       = frame inset by BorderWidth
//	BorderRect = base with right/bottom inset by ShadowWidth
//	ShadowRect = BorderRect offset by (ShadowWidth, ShadowWidth)
//	ImageRect  = BorderRect inset by BorderWidth (when a border is drawn)
//
// The transform is then solved against the final ImageRect, so anchored
// policies are fitted twice: once to size the frame and once to fill the
// border-adjusted rectangle.
func BuildGeometry(dst Rect, style StyleSpec, bitmapW, bitmapH int) Geometry {
	g := Geometry{
		Bounds:     dst,
		Transform:  Identity(),
		FullCircle: style.FullCircle,
	}
	if dst.Empty() {
		g.Empty = true
		return g
	}

	style = style.Normalize()
	policy := style.ScalePolicy
	hasBitmap := bitmapW > 0 && bitmapH > 0

	g.CornerRadius = style.CornerRadius
	if style.FullCircle {
		g.CornerRadius = min(dst.Width(), dst.Height()) / 2
	}

	frame := dst
	if hasBitmap && policy.anchored() {
		frame = MappedRect(bitmapW, bitmapH, dst, policy)
	}

	bw, sw := style.BorderWidth, style.ShadowWidth
	base := frame
	if style.hasBorder() {
		base = frame.Inset(bw, bw)
	}
	g.BorderRect = base
	if style.hasShadow() {
		g.BorderRect = base.InsetTrailing(sw, sw)
		g.ShadowRect = g.BorderRect.Offset(sw, sw)
	}

	g.ImageRect = g.BorderRect
	if style.hasBorder() {
		g.ImageRect = g.BorderRect.Inset(bw, bw)
	}

	if !hasBitmap || g.ImageRect.Empty() {
		return g
	}

	g.Transform = ComputeTransform(bitmapW, bitmapH, g.ImageRect, policy)
	if policy == Center {
		// An unscaled bitmap smaller than the frame keeps the shape to
		// its own extent.
		mapped := g.Transform.TransformRect(Rect{Right: float64(bitmapW), Bottom: float64(bitmapH)})
		g.ImageRect = g.ImageRect.Intersect(mapped)
	}
	g.HasImage = !g.ImageRect.Empty()
	if !g.HasImage {
		g.Transform = Identity()
	}
	return g
}

// outline converts r into a rasterizable shape with the resolved corner
// radius. Circles are inscribed in r, so each rect gets its own diameter.
func (g Geometry) outline(r Rect) shape.Shape {
	return shape.Shape{
		Left:   r.Left,
		Top:    r.Top,
		Right:  r.Right,
		Bottom: r.Bottom,
		Radius: g.CornerRadius,
		Circle: g.FullCircle,
	}
}

// overlayRect returns the area tinted while pressed: the border path when
// a border is drawn, else the image outline.
func (g Geometry) overlayRect(style StyleSpec) Rect {
	if style.hasBorder() {
		return g.BorderRect
	}
	return g.ImageRect
}
