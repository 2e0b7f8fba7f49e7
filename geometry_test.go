package okulus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustStyle(t *testing.T, opts ...StyleOption) StyleSpec {
	t.Helper()
	s, err := NewStyle(opts...)
	if err != nil {
		t.Fatalf("NewStyle: %v", err)
	}
	return s
}

func TestBuildGeometryBorderAndShadow(t *testing.T) {
	style := mustStyle(t,
		WithBorder(4, Black),
		WithShadow(2, DefaultShadowColor),
		WithScalePolicy(FitXY),
	)
	g := BuildGeometry(XYWH(0, 0, 100, 100), style, 50, 50)

	want := Geometry{
		Bounds:       XYWH(0, 0, 100, 100),
		BorderRect:   Rect{4, 4, 94, 94},
		ImageRect:    Rect{8, 8, 90, 90},
		ShadowRect:   Rect{6, 6, 96, 96},
		Transform:    Matrix{A: 82.0 / 50, E: 82.0 / 50, C: 8, F: 8},
		CornerRadius: DefaultCornerRadius,
		HasImage:     true,
	}
	if diff := cmp.Diff(want, g, approx); diff != "" {
		t.Errorf("BuildGeometry mismatch (-want +got):\n%s", diff)
	}

	for name, r := range map[string]Rect{"border": g.BorderRect, "image": g.ImageRect, "shadow": g.ShadowRect} {
		if r.Width() < 0 || r.Height() < 0 {
			t.Errorf("%s rect %+v has negative size", name, r)
		}
	}
}

func TestBuildGeometryNoBorder(t *testing.T) {
	tests := []struct {
		name   string
		shadow float64
		want   Rect
	}{
		{"no shadow", 0, Rect{0, 0, 100, 80}},
		{"shadow", 3, Rect{0, 0, 97, 77}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := mustStyle(t, WithShadow(tt.shadow, Black))
			g := BuildGeometry(XYWH(0, 0, 100, 80), style, 10, 10)
			if g.BorderRect != tt.want || g.ImageRect != tt.want {
				t.Errorf("border %+v image %+v, want both %+v", g.BorderRect, g.ImageRect, tt.want)
			}
			if tt.shadow == 0 && g.ShadowRect != (Rect{}) {
				t.Errorf("ShadowRect = %+v without shadow, want zero", g.ShadowRect)
			}
		})
	}
}

func TestBuildGeometryFullCircle(t *testing.T) {
	style := mustStyle(t, WithFullCircle(), WithCornerRadius(3))
	sizes := []Rect{XYWH(0, 0, 100, 100), XYWH(0, 0, 120, 60), XYWH(5, 5, 30, 90), XYWH(0, 0, 1, 1)}
	for _, dst := range sizes {
		g := BuildGeometry(dst, style, 10, 10)
		want := min(dst.Width(), dst.Height()) / 2
		if g.CornerRadius != want {
			t.Errorf("bounds %+v: CornerRadius = %v, want %v", dst, g.CornerRadius, want)
		}
		if !g.FullCircle {
			t.Errorf("bounds %+v: FullCircle not propagated", dst)
		}
	}
}

func TestBuildGeometryIdempotent(t *testing.T) {
	style := mustStyle(t,
		WithBorder(2.5, Black),
		WithShadow(1.5, Black),
		WithFullCircle(),
	)
	dst := XYWH(3, 7, 123.5, 77.25)
	for _, policy := range ScalePolicies() {
		style.ScalePolicy = policy
		a := BuildGeometry(dst, style, 640, 480)
		b := BuildGeometry(dst, style, 640, 480)
		if a != b {
			t.Errorf("%v: BuildGeometry not deterministic:\n%+v\n%+v", policy, a, b)
		}
	}
}

func TestBuildGeometryEmptyBounds(t *testing.T) {
	style := mustStyle(t, WithBorder(3, Black), WithShadow(2, Black))
	for _, dst := range []Rect{{}, XYWH(10, 10, 0, 50), XYWH(10, 10, 50, 0), {Left: 10, Right: 5, Bottom: 10}} {
		g := BuildGeometry(dst, style, 100, 100)
		if !g.Empty {
			t.Errorf("bounds %+v: Empty = false", dst)
		}
		if g.HasImage || !g.Transform.IsIdentity() {
			t.Errorf("bounds %+v: HasImage=%v Transform=%+v", dst, g.HasImage, g.Transform)
		}
		if g.BorderRect != (Rect{}) || g.ImageRect != (Rect{}) || g.ShadowRect != (Rect{}) {
			t.Errorf("bounds %+v: rects not empty: %+v", dst, g)
		}
	}
}

func TestBuildGeometryNoBitmap(t *testing.T) {
	style := mustStyle(t, WithBorder(2, Black), WithScalePolicy(FitCenter))
	g := BuildGeometry(XYWH(0, 0, 50, 50), style, 0, 0)
	if g.HasImage {
		t.Error("HasImage = true without a bitmap")
	}
	if g.BorderRect != (Rect{2, 2, 48, 48}) {
		t.Errorf("BorderRect = %+v, want frame of the full bounds", g.BorderRect)
	}
	if !g.Transform.IsIdentity() {
		t.Errorf("Transform = %+v, want identity", g.Transform)
	}
}

func TestBuildGeometryAnchoredTwoPass(t *testing.T) {
	dst := XYWH(0, 0, 100, 100)

	t.Run("no border hugs mapped image", func(t *testing.T) {
		tests := []struct {
			policy ScalePolicy
			want   Rect
		}{
			{FitStart, Rect{0, 0, 100, 50}},
			{FitCenter, Rect{0, 25, 100, 75}},
			{FitEnd, Rect{0, 50, 100, 100}},
		}
		for _, tt := range tests {
			g := BuildGeometry(dst, mustStyle(t, WithScalePolicy(tt.policy)), 200, 100)
			if g.BorderRect != tt.want || g.ImageRect != tt.want {
				t.Errorf("%v: border %+v image %+v, want %+v", tt.policy, g.BorderRect, g.ImageRect, tt.want)
			}
		}
	})

	t.Run("border refits transform", func(t *testing.T) {
		g := BuildGeometry(dst, mustStyle(t, WithScalePolicy(FitCenter), WithBorder(2, Black)), 100, 50)
		wantBorder := Rect{2, 27, 98, 73}
		wantImage := Rect{4, 29, 96, 71}
		if diff := cmp.Diff(wantBorder, g.BorderRect, approx); diff != "" {
			t.Errorf("BorderRect (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantImage, g.ImageRect, approx); diff != "" {
			t.Errorf("ImageRect (-want +got):\n%s", diff)
		}
		// 92x42 with a 2:1 bitmap: height limits the scale to 0.84.
		wantTransform := Matrix{A: 0.84, E: 0.84, C: 8, F: 29}
		if !matrixNear(g.Transform, wantTransform) {
			t.Errorf("Transform = %+v, want %+v", g.Transform, wantTransform)
		}
		mapped := MappedRect(100, 50, g.ImageRect, FitCenter)
		if mapped.Left < g.ImageRect.Left-epsilon || mapped.Right > g.ImageRect.Right+epsilon {
			t.Errorf("refit image %+v escapes ImageRect %+v", mapped, g.ImageRect)
		}
	})
}

func TestBuildGeometryCenterShrinksToBitmap(t *testing.T) {
	g := BuildGeometry(XYWH(0, 0, 100, 100), mustStyle(t, WithScalePolicy(Center)), 20, 20)
	if g.ImageRect != (Rect{40, 40, 60, 60}) {
		t.Errorf("ImageRect = %+v, want bitmap extent", g.ImageRect)
	}
	if g.BorderRect != (Rect{0, 0, 100, 100}) {
		t.Errorf("BorderRect = %+v, want full bounds", g.BorderRect)
	}

	g = BuildGeometry(XYWH(0, 0, 100, 100), mustStyle(t, WithScalePolicy(Center)), 300, 300)
	if g.ImageRect != (Rect{0, 0, 100, 100}) {
		t.Errorf("oversized bitmap ImageRect = %+v, want full bounds", g.ImageRect)
	}
}

func TestBuildGeometryDegenerateInsets(t *testing.T) {
	style := mustStyle(t, WithBorder(5, Black), WithShadow(3, Black))
	g := BuildGeometry(XYWH(0, 0, 8, 8), style, 10, 10)
	for name, r := range map[string]Rect{"border": g.BorderRect, "image": g.ImageRect, "shadow": g.ShadowRect} {
		if r.Width() < 0 || r.Height() < 0 {
			t.Errorf("%s rect %+v has negative size", name, r)
		}
	}
	if g.HasImage {
		t.Errorf("HasImage = true for collapsed ImageRect %+v", g.ImageRect)
	}
	if !g.Transform.IsIdentity() {
		t.Errorf("Transform = %+v, want identity", g.Transform)
	}
}

func TestBuildGeometryClampsWidths(t *testing.T) {
	style := DefaultStyle()
	style.BorderWidth = 40
	style.ShadowWidth = -2
	g := BuildGeometry(XYWH(0, 0, 100, 100), style, 10, 10)
	if g.BorderRect != (Rect{MaxBorderWidth, MaxBorderWidth, 100 - MaxBorderWidth, 100 - MaxBorderWidth}) {
		t.Errorf("BorderRect = %+v, want inset by the clamped width", g.BorderRect)
	}
	if g.ShadowRect != (Rect{}) {
		t.Errorf("ShadowRect = %+v, want zero for negative width", g.ShadowRect)
	}
}
