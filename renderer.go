package okulus

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/okulus/internal/shape"
)

// Render composites a shaped bitmap onto dst using geometry g. Layers are
// drawn in a fixed order, each one over the previous:
//
//  1. shadow: ShadowRect stroked with ShadowColor and blurred
//  2. image: img sampled through g.Transform, clipped to ImageRect's shape
//  3. border: BorderRect stroked with BorderColor
//  4. overlay: when overlay is set, the pressed area filled with
//     TouchOverlayColor
//
// Each layer is skipped when its width is zero or its color is fully
// transparent. A nil img skips only the image layer. Empty geometry draws
// nothing. Every layer is clipped to g.Bounds, so nothing outside the
// view's own rectangle is touched. Render never fails and never retains
// dst or img.
func Render(dst draw.Image, g Geometry, style StyleSpec, img image.Image, overlay bool) {
	if dst == nil || g.Empty {
		return
	}
	clip := dst.Bounds().Intersect(g.Bounds.Image())
	if clip.Empty() {
		return
	}
	style = style.Normalize()

	if style.hasShadow() && !style.ShadowColor.IsTransparent() {
		drawShadow(dst, clip, g, style)
	}
	if img != nil && g.HasImage && !img.Bounds().Empty() {
		drawImage(dst, clip, g, img)
	}
	if style.hasBorder() && !style.BorderColor.IsTransparent() {
		strokeShape(dst, clip, g.outline(g.BorderRect), style.BorderWidth, style.BorderColor)
	}
	if overlay && style.TouchOverlayEnabled && !style.TouchOverlayColor.IsTransparent() {
		fillShape(dst, clip, g.outline(g.overlayRect(style)), style.TouchOverlayColor)
	}
}

func fillShape(dst draw.Image, clip image.Rectangle, s shape.Shape, c RGBA) {
	region := s.Bounds().Intersect(clip)
	if region.Empty() {
		return
	}
	mask := shape.Fill(region, s)
	draw.DrawMask(dst, region, image.NewUniform(c.Color()), image.Point{}, mask, image.Point{}, draw.Over)
}

func strokeShape(dst draw.Image, clip image.Rectangle, s shape.Shape, width float64, c RGBA) {
	region := s.Outset(width / 2).Bounds().Intersect(clip)
	if region.Empty() {
		return
	}
	mask := shape.Stroke(region, s, width)
	draw.DrawMask(dst, region, image.NewUniform(c.Color()), image.Point{}, mask, image.Point{}, draw.Over)
}

// drawShadow strokes the shadow path into a coverage mask, softens it with
// a Gaussian blur and composites the shadow color through it.
func drawShadow(dst draw.Image, clip image.Rectangle, g Geometry, style StyleSpec) {
	s := g.outline(g.ShadowRect)
	// A blur wider than the clip cannot move coverage any further.
	radius := min(style.ShadowBlurRadius, float64(max(clip.Dx(), clip.Dy())))
	pad := int(math.Ceil(radius*3)) + 1
	region := s.Outset(style.ShadowWidth / 2).Bounds().Inset(-pad).Intersect(clip)
	if region.Empty() {
		return
	}

	var mask image.Image = shape.Stroke(region, s, style.ShadowWidth)
	if radius > 0 {
		mask = blur.Gaussian(mask, radius)
	}
	draw.DrawMask(dst, region, image.NewUniform(style.ShadowColor.Color()), image.Point{},
		mask, mask.Bounds().Min, draw.Over)
}

// drawImage resamples img into a tile covering the image shape and
// composites it through the shape's coverage mask.
func drawImage(dst draw.Image, clip image.Rectangle, g Geometry, img image.Image) {
	s := g.outline(g.ImageRect)
	region := s.Bounds().Intersect(clip)
	if region.Empty() {
		return
	}

	// Source pixel -> bitmap space -> canvas -> tile.
	sb := img.Bounds()
	m := Translate(-float64(region.Min.X), -float64(region.Min.Y)).
		Multiply(g.Transform).
		Multiply(Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	if m.A*m.E-m.B*m.D == 0 {
		return
	}

	tileRect := image.Rect(0, 0, region.Dx(), region.Dy())
	need := m.Invert().TransformRect(RectFromImage(tileRect)).Image().Inset(-2)

	var src image.Image = img
	sr := sb
	if !need.In(sb) {
		// Tile pixels that map outside the bitmap repeat its edge pixels.
		sr = need.Union(sb)
		src = clampedImage{src: img, bounds: sb, ext: sr}
	}

	tile := image.NewRGBA(tileRect)
	xdraw.BiLinear.Transform(tile, m.Aff3(), src, sr, xdraw.Src, nil)

	mask := shape.Fill(region, s)
	draw.DrawMask(dst, region, tile, image.Point{}, mask, image.Point{}, draw.Over)
}

// clampedImage extends src to ext by repeating the pixels on the edge of
// bounds, like a clamp-mode bitmap shader.
type clampedImage struct {
	src    image.Image
	bounds image.Rectangle
	ext    image.Rectangle
}

func (c clampedImage) ColorModel() color.Model { return c.src.ColorModel() }

func (c clampedImage) Bounds() image.Rectangle { return c.ext }

func (c clampedImage) At(x, y int) color.Color {
	x = min(max(x, c.bounds.Min.X), c.bounds.Max.X-1)
	y = min(max(y, c.bounds.Min.Y), c.bounds.Max.Y-1)
	return c.src.At(x, y)
}
