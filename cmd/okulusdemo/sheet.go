package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/okulus"
)

const cellPadding = 12

// cell is one entry of the comparison sheet.
type cell struct {
	label   string
	style   okulus.StyleSpec
	pressed bool
}

// sheetCells lists every scale policy followed by a circle and a pressed
// variant of base.
func sheetCells(base okulus.StyleSpec) []cell {
	var out []cell
	for _, p := range okulus.ScalePolicies() {
		s := base
		s.ScalePolicy = p
		s.FullCircle = false
		out = append(out, cell{label: policyLabel(p), style: s})
	}

	circle := base
	circle.FullCircle = true
	out = append(out, cell{label: "Circle", style: circle})

	pressed := base
	pressed.TouchOverlayEnabled = true
	out = append(out, cell{label: "Pressed", style: pressed, pressed: true})
	return out
}

// policyLabel turns CENTER_CROP into "Center Crop".
func policyLabel(p okulus.ScalePolicy) string {
	name := strings.ReplaceAll(strings.ToLower(p.String()), "_", " ")
	return cases.Title(language.English).String(name)
}

func captionFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// renderSheet lays the cells out in a grid of cols columns. Each cell is a
// size x size view followed by a caption line.
func renderSheet(src image.Image, base okulus.StyleSpec, size, cols int, face font.Face) (*image.RGBA, error) {
	if size <= 2*cellPadding {
		return nil, errors.New("cell size too small")
	}
	if cols < 1 {
		cols = 1
	}
	cells := sheetCells(base)
	rows := (len(cells) + cols - 1) / cols

	metrics := face.Metrics()
	captionH := (metrics.Ascent + metrics.Descent).Ceil() + cellPadding/2
	cellW, cellH := size, size+captionH

	sheet := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	draw.Draw(sheet, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	for i, c := range cells {
		x := (i % cols) * cellW
		y := (i / cols) * cellH

		v, err := okulus.NewView(okulus.WithStyle(c.style))
		if err != nil {
			return nil, err
		}
		bounds := okulus.XYWH(float64(x+cellPadding), float64(y+cellPadding),
			float64(size-2*cellPadding), float64(size-2*cellPadding))
		v.SetBounds(bounds)
		v.SetImage(src)
		if c.pressed {
			v.OnPointerEvent(okulus.PointerDown, bounds.CenterX(), bounds.CenterY())
		}
		v.Draw(sheet)

		d := font.Drawer{
			Dst:  sheet,
			Src:  image.NewUniform(color.Black),
			Face: face,
		}
		w := d.MeasureString(c.label).Ceil()
		d.Dot = fixed.P(x+(cellW-w)/2, y+size+metrics.Ascent.Ceil())
		d.DrawString(c.label)
	}
	return sheet, nil
}

// testPattern draws a gradient with a checkerboard so that cropping and
// letterboxing are easy to tell apart.
func testPattern(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			}
			if (x/20+y/20)%2 == 0 {
				c.B = 60
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
