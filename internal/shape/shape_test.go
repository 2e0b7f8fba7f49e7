package shape

import (
	"image"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   Shape
		want Shape
	}{
		{"radius clamped", Shape{0, 0, 10, 40, 50, false}, Shape{0, 0, 10, 40, 5, false}},
		{"negative radius", Shape{0, 0, 10, 10, -3, false}, Shape{0, 0, 10, 10, 0, false}},
		{"circle squared", Shape{0, 0, 40, 20, 0, true}, Shape{10, 0, 30, 20, 10, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.resolve(); got != tt.want {
				t.Errorf("resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutset(t *testing.T) {
	s := Shape{Left: 10, Top: 10, Right: 20, Bottom: 20, Radius: 2}
	if got := s.Outset(3); got != (Shape{7, 7, 23, 23, 5, false}) {
		t.Errorf("Outset(3) = %+v", got)
	}
	if got := s.Outset(-3); got.Radius != 0 {
		t.Errorf("Outset(-3).Radius = %v, want 0", got.Radius)
	}
	if got := s.Outset(0.5).Bounds(); got != image.Rect(9, 9, 21, 21) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestFill(t *testing.T) {
	region := image.Rect(0, 0, 20, 20)
	mask := Fill(region, Shape{Left: 0, Top: 0, Right: 20, Bottom: 20, Radius: 8})

	if got := mask.AlphaAt(10, 10).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
	if got := mask.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
	if got := mask.AlphaAt(10, 0).A; got != 255 {
		t.Errorf("top edge alpha = %d, want 255", got)
	}
}

func TestFillCircle(t *testing.T) {
	region := image.Rect(0, 0, 40, 20)
	mask := Fill(region, Shape{Left: 0, Top: 0, Right: 40, Bottom: 20, Circle: true})

	if got := mask.AlphaAt(20, 10).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
	for _, p := range []image.Point{{2, 10}, {37, 10}, {10, 1}, {30, 18}} {
		if got := mask.AlphaAt(p.X, p.Y).A; got != 0 {
			t.Errorf("alpha at %v = %d, want 0", p, got)
		}
	}
}

func TestFillRegionOffset(t *testing.T) {
	region := image.Rect(100, 100, 110, 110)
	mask := Fill(region, Shape{Left: 100, Top: 100, Right: 105, Bottom: 110})

	if b := mask.Bounds(); b != image.Rect(0, 0, 10, 10) {
		t.Fatalf("mask bounds = %v, want zero-origin", b)
	}
	if got := mask.AlphaAt(2, 5).A; got != 255 {
		t.Errorf("inside alpha = %d, want 255", got)
	}
	if got := mask.AlphaAt(7, 5).A; got != 0 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
}

func TestStroke(t *testing.T) {
	region := image.Rect(0, 0, 30, 30)
	s := Shape{Left: 5, Top: 5, Right: 25, Bottom: 25}
	mask := Stroke(region, s, 4)

	tests := []struct {
		p    image.Point
		want uint8
	}{
		{image.Pt(15, 15), 0},   // hole
		{image.Pt(4, 15), 255},  // on the left edge
		{image.Pt(5, 15), 255},  // inner half
		{image.Pt(0, 15), 0},    // outside
		{image.Pt(15, 25), 255}, // bottom edge
	}
	for _, tt := range tests {
		if got := mask.AlphaAt(tt.p.X, tt.p.Y).A; got != tt.want {
			t.Errorf("alpha at %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestStrokeDegenerate(t *testing.T) {
	region := image.Rect(0, 0, 10, 10)
	for _, width := range []float64{0, -1} {
		mask := Stroke(region, Shape{Right: 10, Bottom: 10}, width)
		for _, a := range mask.Pix {
			if a != 0 {
				t.Fatalf("Stroke(width=%v) drew coverage", width)
			}
		}
	}
	// A stroke wider than the shape fills it solid.
	mask := Stroke(region, Shape{Left: 4, Top: 4, Right: 6, Bottom: 6}, 6)
	if got := mask.AlphaAt(5, 5).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
}
