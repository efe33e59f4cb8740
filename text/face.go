package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font metrics at a specific size.
// All values are in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font,
	// as a positive value.
	Descent float64

	// LineGap is the recommended additional gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (x-height).
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the recommended vertical distance between baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Measurer reports the advance width of text in pixels.
// *Face implements it; layout code that only measures can accept a
// Measurer and be tested with a fake.
type Measurer interface {
	Advance(text string) float64
}

// Face is a font face at a specific size, created from a FontSource.
// A Face owns a rasterizer with internal caches, so it is not safe for
// concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	ot      font.Face
	buf     sfnt.Buffer
	metrics Metrics
}

// Face creates a Face at the specified size (in points).
// Multiple faces can be created from the same FontSource.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil; check the error from NewFontSourceFromFile")
	}
	s.copyCheck()

	if s.font == nil {
		return nil, ErrClosedSource
	}
	if size <= 0 {
		return nil, fmt.Errorf("text: face size %v: %w", size, ErrInvalidSize)
	}

	ot, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	f := &Face{
		source: s,
		size:   size,
		ot:     ot,
	}
	f.metrics = f.readMetrics()

	return f, nil
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// HasGlyph reports whether the font has a real glyph for the given rune,
// as opposed to the .notdef box.
func (f *Face) HasGlyph(r rune) bool {
	gi, err := f.source.font.GlyphIndex(&f.buf, r)
	return err == nil && gi != 0
}

// Advance returns the total advance width of the text in pixels.
// Shaping is used when the font parses on the shaping side, so kerning and
// mark placement are accounted for; otherwise nominal glyph advances are
// summed.
func (f *Face) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	if sh := f.source.shaperHandle(); sh != nil {
		return sh.advance(text, f.size)
	}
	return f.advanceFallback(text)
}

// advanceFallback sums nominal glyph advances via the character map.
func (f *Face) advanceFallback(text string) float64 {
	ppem := fixed.Int26_6(f.size * 64)
	var total fixed.Int26_6

	for _, r := range text {
		gi, err := f.source.font.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		total += adv
	}

	return fixedToFloat(total)
}

// readMetrics loads the scaled font metrics.
func (f *Face) readMetrics() Metrics {
	ppem := fixed.Int26_6(f.size * 64)
	m, err := f.source.font.Metrics(&f.buf, ppem, font.HintingFull)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)

	// sfnt reports Descent as a positive distance already.
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// fixedToFloat converts a fixed.Int26_6 value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
