package kanjiwall

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas is a fixed-size rectangular pixel buffer that wallpaper images are
// composed on. It implements draw.Image, so text can be rasterized onto it
// directly with golang.org/x/image/font.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, non-premultiplied
}

// NewCanvas creates a new canvas with the given dimensions.
// All pixels start fully transparent; call Clear to lay down a background.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = uint8(clamp255(col.R * 255))
	c.data[i+1] = uint8(clamp255(col.G * 255))
	c.data[i+2] = uint8(clamp255(col.B * 255))
	c.data[i+3] = uint8(clamp255(col.A * 255))
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the canvas return Transparent.
func (c *Canvas) GetPixel(x, y int) RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return RGBA{
		R: float64(c.data[i+0]) / 255,
		G: float64(c.data[i+1]) / 255,
		B: float64(c.data[i+2]) / 255,
		A: float64(c.data[i+3]) / 255,
	}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	}
}

// FillRect fills the axis-aligned rectangle with origin (x, y) and the given
// width and height. The rectangle is clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.SetPixel(px, py, col)
		}
	}
}

// StrokeRect draws the outline of the rectangle with origin (x, y) and the
// given width and height. The stroke extends inward from the rectangle edge
// by lineWidth pixels.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth int, col RGBA) {
	for i := 0; i < lineWidth; i++ {
		x0, y0 := x+i, y+i
		x1, y1 := x+w-1-i, y+h-1-i
		if x0 > x1 || y0 > y1 {
			return
		}
		for px := x0; px <= x1; px++ {
			c.SetPixel(px, y0, col)
			c.SetPixel(px, y1, col)
		}
		for py := y0; py <= y1; py++ {
			c.SetPixel(x0, py, col)
			c.SetPixel(x1, py, col)
		}
	}
}

// Image converts the canvas to an image.NRGBA copy.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return c.EncodePNG(f)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
