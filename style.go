package okulus

import (
	"fmt"
	"math"
)

// Limits in density-independent pixels. Border and shadow widths and the
// shadow blur radius outside these ranges are clamped by Normalize.
const (
	MaxBorderWidth      = 5
	MaxShadowWidth      = 3
	MaxShadowBlurRadius = 25
)

// Defaults applied by DefaultStyle.
const (
	DefaultCornerRadius     = 5
	DefaultShadowBlurRadius = 0.5
)

var (
	// DefaultShadowColor is 70% dark gray.
	DefaultShadowColor = Hex("#444444B3")
	// DefaultTouchOverlayColor is 40% dark gray.
	DefaultTouchOverlayColor = Hex("#44444466")
)

// StyleSpec describes how a bitmap is shaped and decorated. All lengths are
// in device pixels. A StyleSpec is a value: replace it as a whole through
// View.SetStyle rather than mutating a shared copy.
type StyleSpec struct {
	// CornerRadius is the rounding radius. Ignored when FullCircle is set.
	CornerRadius float64
	// FullCircle forces the radius to half the shorter side of the bounds.
	FullCircle bool

	BorderWidth float64
	BorderColor RGBA

	// ShadowWidth is both the stroke width of the shadow and its offset
	// toward the bottom-right.
	ShadowWidth      float64
	ShadowColor      RGBA
	ShadowBlurRadius float64

	TouchOverlayColor   RGBA
	TouchOverlayEnabled bool

	ScalePolicy ScalePolicy

	// Density is the number of device pixels per density-independent
	// pixel. It scales the width clamps. Zero means 1.
	Density float64
}

// DefaultStyle returns the style of an unconfigured view.
func DefaultStyle() StyleSpec {
	return StyleSpec{
		CornerRadius:      DefaultCornerRadius,
		BorderColor:       Black,
		ShadowColor:       DefaultShadowColor,
		ShadowBlurRadius:  DefaultShadowBlurRadius,
		TouchOverlayColor: DefaultTouchOverlayColor,
		ScalePolicy:       CenterCrop,
		Density:           1,
	}
}

// Validate reports configuration errors. The only rejected input is an
// unsupported scale policy; numeric ranges are clamped by Normalize.
func (s StyleSpec) Validate() error {
	if !s.ScalePolicy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedScalePolicy, uint8(s.ScalePolicy))
	}
	return nil
}

// Normalize returns a copy of s with every numeric field clamped to its
// sane range. Negative or NaN lengths become zero. Border width, shadow
// width and blur radius are capped at MaxBorderWidth, MaxShadowWidth and
// MaxShadowBlurRadius, scaled by Density; +Inf lands on the cap.
func (s StyleSpec) Normalize() StyleSpec {
	density := s.Density
	if !(density > 0) || math.IsInf(density, 0) {
		density = 1
	}
	out := s
	out.Density = density
	out.CornerRadius = clampLength(s.CornerRadius, math.Inf(1))
	out.BorderWidth = clampLength(s.BorderWidth, MaxBorderWidth*density)
	out.ShadowWidth = clampLength(s.ShadowWidth, MaxShadowWidth*density)
	out.ShadowBlurRadius = clampLength(s.ShadowBlurRadius, MaxShadowBlurRadius*density)

	if out != s {
		Logger().Debug("okulus: style clamped",
			"borderWidth", s.BorderWidth, "clampedBorderWidth", out.BorderWidth,
			"shadowWidth", s.ShadowWidth, "clampedShadowWidth", out.ShadowWidth,
			"shadowBlurRadius", s.ShadowBlurRadius, "clampedShadowBlurRadius", out.ShadowBlurRadius)
	}
	return out
}

// hasBorder reports whether the border stroke is drawn.
func (s StyleSpec) hasBorder() bool {
	return s.BorderWidth > 0
}

// hasShadow reports whether the shadow stroke is drawn.
func (s StyleSpec) hasShadow() bool {
	return s.ShadowWidth > 0
}

func clampLength(v, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > hi:
		return hi
	}
	return v
}
