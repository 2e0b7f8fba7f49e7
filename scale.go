package okulus

import (
	"fmt"
	"math"
	"strings"
)

// ScalePolicy selects how a fixed-aspect bitmap is mapped into its
// destination rectangle. The values mirror Android's ImageView.ScaleType.
type ScalePolicy uint8

const (
	// Center places the bitmap at its natural size in the middle of the
	// destination. Overflow is clipped by the shape.
	Center ScalePolicy = iota
	// CenterCrop scales uniformly so both axes cover the destination and
	// centers the result. Overflow on one axis is clipped by the shape.
	CenterCrop
	// CenterInside scales uniformly so the bitmap fits inside the
	// destination, never upscaling, and centers it.
	CenterInside
	// FitXY stretches each axis independently to fill the destination.
	FitXY
	// FitStart fits uniformly and aligns to the top-left corner.
	FitStart
	// FitCenter fits uniformly, upscaling if needed, and centers.
	FitCenter
	// FitEnd fits uniformly and aligns to the bottom-right corner.
	FitEnd

	numScalePolicies
)

var scalePolicyNames = [numScalePolicies]string{
	Center:       "CENTER",
	CenterCrop:   "CENTER_CROP",
	CenterInside: "CENTER_INSIDE",
	FitXY:        "FIT_XY",
	FitStart:     "FIT_START",
	FitCenter:    "FIT_CENTER",
	FitEnd:       "FIT_END",
}

// ScalePolicies returns all supported policies in declaration order.
func ScalePolicies() []ScalePolicy {
	out := make([]ScalePolicy, 0, numScalePolicies)
	for p := ScalePolicy(0); p < numScalePolicies; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p is one of the seven supported policies.
func (p ScalePolicy) Valid() bool {
	return p < numScalePolicies
}

// String returns the policy name in Android's constant spelling.
func (p ScalePolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("ScalePolicy(%d)", uint8(p))
	}
	return scalePolicyNames[p]
}

// anchored reports whether the policy fits uniformly to an anchor edge.
// Anchored policies size the shape to the mapped bitmap instead of the
// destination.
func (p ScalePolicy) anchored() bool {
	return p == FitStart || p == FitCenter || p == FitEnd
}

// ParseScalePolicy parses a policy name. Matching ignores case,
// underscores and dashes, so "CENTER_CROP", "center_crop" and
// "centerCrop" are equivalent.
func ParseScalePolicy(s string) (ScalePolicy, error) {
	key := normalizePolicyName(s)
	for p, name := range scalePolicyNames {
		if normalizePolicyName(name) == key {
			return ScalePolicy(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedScalePolicy, s)
}

func normalizePolicyName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
func (p ScalePolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedScalePolicy, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ScalePolicy) UnmarshalText(text []byte) error {
	v, err := ParseScalePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ComputeTransform returns the affine transform that maps bitmap pixel
// coordinates into dst under policy. The translation is absolute, so
// dst's origin is included.
//
// The identity matrix is returned when either bitmap dimension is zero,
// dst has no area, or policy is not a supported value.
func ComputeTransform(bitmapW, bitmapH int, dst Rect, policy ScalePolicy) Matrix {
	if bitmapW <= 0 || bitmapH <= 0 || dst.Empty() {
		return Identity()
	}

	bw, bh := float64(bitmapW), float64(bitmapH)
	dw, dh := dst.Width(), dst.Height()
	widthScale := dw / bw
	heightScale := dh / bh

	var sx, sy, tx, ty float64
	switch policy {
	case Center:
		sx, sy = 1, 1
		tx = math.Round((dw - bw) / 2)
		ty = math.Round((dh - bh) / 2)
	case CenterCrop:
		s := max(widthScale, heightScale)
		sx, sy = s, s
		tx, ty = (dw-bw*s)/2, (dh-bh*s)/2
	case CenterInside:
		s := min(1, min(widthScale, heightScale))
		sx, sy = s, s
		tx, ty = (dw-bw*s)/2, (dh-bh*s)/2
	case FitXY:
		sx, sy = widthScale, heightScale
	case FitStart:
		s := min(widthScale, heightScale)
		sx, sy = s, s
	case FitCenter:
		s := min(widthScale, heightScale)
		sx, sy = s, s
		tx, ty = (dw-bw*s)/2, (dh-bh*s)/2
	case FitEnd:
		s := min(widthScale, heightScale)
		sx, sy = s, s
		tx, ty = dw-bw*s, dh-bh*s
	default:
		return Identity()
	}

	return Translate(dst.Left+tx, dst.Top+ty).Multiply(Scale(sx, sy))
}

// MappedRect returns the bitmap's bounds after mapping them into dst
// under policy. For the fit policies this is the visible image area; for
// Center and CenterCrop it may extend beyond dst.
func MappedRect(bitmapW, bitmapH int, dst Rect, policy ScalePolicy) Rect {
	if bitmapW <= 0 || bitmapH <= 0 || dst.Empty() {
		return Rect{}
	}
	m := ComputeTransform(bitmapW, bitmapH, dst, policy)
	return m.TransformRect(Rect{Right: float64(bitmapW), Bottom: float64(bitmapH)})
}
