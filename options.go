package okulus

// StyleOption configures a StyleSpec built by NewStyle.
//
// Example:
//
//	style, err := okulus.NewStyle(
//	    okulus.WithFullCircle(),
//	    okulus.WithBorder(3, okulus.Hex("#FFFFFF")),
//	    okulus.WithScalePolicy(okulus.CenterCrop),
//	)
type StyleOption func(*StyleSpec)

// NewStyle builds a normalized, validated style starting from DefaultStyle.
func NewStyle(opts ...StyleOption) (StyleSpec, error) {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(); err != nil {
		return StyleSpec{}, err
	}
	return s.Normalize(), nil
}

// WithCornerRadius sets the corner radius in device pixels.
func WithCornerRadius(r float64) StyleOption {
	return func(s *StyleSpec) {
		s.CornerRadius = r
	}
}

// WithFullCircle clips to a circle whose diameter is the shorter side of
// the bounds.
func WithFullCircle() StyleOption {
	return func(s *StyleSpec) {
		s.FullCircle = true
	}
}

// WithBorder sets the border stroke width and color.
func WithBorder(width float64, color RGBA) StyleOption {
	return func(s *StyleSpec) {
		s.BorderWidth = width
		s.BorderColor = color
	}
}

// WithShadow sets the shadow width and color.
func WithShadow(width float64, color RGBA) StyleOption {
	return func(s *StyleSpec) {
		s.ShadowWidth = width
		s.ShadowColor = color
	}
}

// WithShadowBlur sets the Gaussian blur radius applied to the shadow.
func WithShadowBlur(radius float64) StyleOption {
	return func(s *StyleSpec) {
		s.ShadowBlurRadius = radius
	}
}

// WithTouchOverlay enables press feedback tinted with color.
func WithTouchOverlay(color RGBA) StyleOption {
	return func(s *StyleSpec) {
		s.TouchOverlayEnabled = true
		s.TouchOverlayColor = color
	}
}

// WithScalePolicy selects how the bitmap is mapped into the shape.
func WithScalePolicy(p ScalePolicy) StyleOption {
	return func(s *StyleSpec) {
		s.ScalePolicy = p
	}
}

// WithDensity sets the device pixels per density-independent pixel used
// when clamping border and shadow widths.
func WithDensity(density float64) StyleOption {
	return func(s *StyleSpec) {
		s.Density = density
	}
}
