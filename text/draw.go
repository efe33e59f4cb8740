package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
func Draw(dst draw.Image, text string, face *Face, x, y float64, col color.Color) {
	if text == "" || face == nil || face.ot == nil {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.ot,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}

	d.DrawString(text)
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the font's line height.
func Measure(text string, face *Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}

	width = face.Advance(text)
	height = face.Metrics().LineHeight()

	return width, height
}
