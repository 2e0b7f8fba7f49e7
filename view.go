package okulus

import (
	"image"
	"image/draw"
)

// ViewOption configures a View during creation.
type ViewOption func(*viewOptions)

type viewOptions struct {
	style      StyleSpec
	invalidate func()
}

// WithStyle sets the initial style. It is validated like SetStyle.
func WithStyle(s StyleSpec) ViewOption {
	return func(o *viewOptions) {
		o.style = s
	}
}

// WithInvalidator registers the host's redraw request. The view calls it
// after every change that alters what Draw would produce.
func WithInvalidator(fn func()) ViewOption {
	return func(o *viewOptions) {
		o.invalidate = fn
	}
}

// content is the image currently shown by a view.
type content struct {
	img           image.Image
	width, height int
}

// View is the host-facing surface of a shaped bitmap. The host feeds it
// bounds, style, image and pointer events, and calls Draw with its canvas.
// Geometry is recomputed eagerly whenever an input changes.
//
// View is not safe for concurrent use; all calls happen on the host's UI
// thread.
type View struct {
	style      StyleSpec
	bounds     Rect
	content    *content
	geom       Geometry
	touch      TouchOverlay
	invalidate func()
}

// NewView creates a view with no bounds and no image.
//
// Example:
//
//	v, err := okulus.NewView(
//	    okulus.WithStyle(style),
//	    okulus.WithInvalidator(window.Invalidate),
//	)
func NewView(opts ...ViewOption) (*View, error) {
	o := viewOptions{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.style.Validate(); err != nil {
		return nil, err
	}

	v := &View{
		style:      o.style.Normalize(),
		invalidate: o.invalidate,
	}
	v.touch.SetEnabled(v.style.TouchOverlayEnabled)
	v.rebuild()
	return v, nil
}

// Style returns the normalized style in use.
func (v *View) Style() StyleSpec { return v.style }

// Bounds returns the current destination bounds.
func (v *View) Bounds() Rect { return v.bounds }

// Geometry returns the geometry computed for the current inputs.
func (v *View) Geometry() Geometry { return v.geom }

// Image returns the image being shown, or nil.
func (v *View) Image() image.Image {
	if v.content == nil {
		return nil
	}
	return v.content.img
}

// Pressed reports whether the touch overlay is showing.
func (v *View) Pressed() bool { return v.touch.Active() }

// SetStyle replaces the style. An unsupported scale policy is rejected and
// the previous style stays in effect; out-of-range lengths are clamped.
func (v *View) SetStyle(s StyleSpec) error {
	if err := s.Validate(); err != nil {
		Logger().Warn("okulus: style rejected", "err", err)
		return err
	}
	v.style = s.Normalize()
	v.touch.SetEnabled(v.style.TouchOverlayEnabled)
	v.rebuild()
	v.requestRedraw()
	return nil
}

// SetBounds moves or resizes the destination. Unchanged bounds are a no-op.
func (v *View) SetBounds(r Rect) {
	if r == v.bounds {
		return
	}
	v.bounds = r
	v.rebuild()
	v.requestRedraw()
}

// SetImage shows img, or clears the image when img is nil. Border, shadow
// and overlay keep drawing without an image. An existing content slot is
// updated in place.
func (v *View) SetImage(img image.Image) {
	switch {
	case img == nil:
		v.content = nil
	case v.content != nil:
		v.content.img = img
		v.content.width, v.content.height = img.Bounds().Dx(), img.Bounds().Dy()
	default:
		v.content = &content{img: img, width: img.Bounds().Dx(), height: img.Bounds().Dy()}
	}
	v.rebuild()
	v.requestRedraw()
}

// OnPointerEvent feeds a pointer event to the touch overlay and reports
// whether it was consumed. A change of overlay visibility requests exactly
// one redraw.
func (v *View) OnPointerEvent(kind PointerKind, x, y float64) bool {
	consumed, changed := v.touch.Handle(PointerEvent{Kind: kind, X: x, Y: y}, v.bounds)
	if changed {
		v.requestRedraw()
	}
	return consumed
}

// Draw renders the view into dst using the current geometry.
func (v *View) Draw(dst draw.Image) {
	Render(dst, v.geom, v.style, v.Image(), v.touch.Active())
}

// Measure returns the size the view wants for the offered size. In
// full-circle mode both sides shrink to the shorter one so the circle is
// not letterboxed.
func (v *View) Measure(width, height int) (int, int) {
	if v.style.FullCircle {
		side := min(width, height)
		return side, side
	}
	return width, height
}

func (v *View) rebuild() {
	var w, h int
	if v.content != nil {
		w, h = v.content.width, v.content.height
	}
	v.geom = BuildGeometry(v.bounds, v.style, w, h)
	Logger().Debug("okulus: geometry rebuilt",
		"bounds", v.bounds, "bitmap", image.Pt(w, h), "policy", v.style.ScalePolicy, "empty", v.geom.Empty)
}

func (v *View) requestRedraw() {
	if v.invalidate != nil {
		v.invalidate()
	}
}
