package kanjiwall

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/kanjiwall/text"
)

// DefaultFontPaths lists the font files probed in order when no font is
// configured. CJK-capable fonts come first; DejaVu is a last resort that
// covers the Latin annotations only.
var DefaultFontPaths = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJKjp-Regular.otf",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/opentype/ipafont-gothic/ipag.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\msgothic.ttc`,
	`C:\Windows\Fonts\YuGothM.ttc`,
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// theme is the parsed palette.
type theme struct {
	background RGBA
	text       RGBA
	reading    RGBA
	boxFill    RGBA
	boxLine    RGBA
}

func newTheme(cfg ThemeConfig) theme {
	return theme{
		background: Hex(cfg.Background),
		text:       Hex(cfg.Text),
		reading:    Hex(cfg.Reading),
		boxFill:    Hex(cfg.BoxFill),
		boxLine:    Hex(cfg.BoxLine),
	}
}

// Renderer rasterizes the wallpaper for a single kanji entry.
//
// A Renderer holds one font source and one face per text role. Faces carry
// rasterizer caches, so a Renderer is not safe for concurrent use; create
// one per goroutine.
type Renderer struct {
	cfg    Config
	theme  theme
	source *text.FontSource

	kanji    *text.Face
	body     *text.Face
	compound *text.Face
	code     *text.Face
}

// NewRenderer creates a Renderer for the given configuration.
//
// The font is resolved in order of preference: font data passed through
// WithFontData, the configured font path, then DefaultFontPaths. ErrNoFont
// is returned when none yields a usable font.
func NewRenderer(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source, location, err := resolveFontSource(cfg, o)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		theme:  newTheme(cfg.Theme),
		source: source,
	}

	faces := []struct {
		dst  **text.Face
		size float64
	}{
		{&r.kanji, cfg.Layout.KanjiSize},
		{&r.body, cfg.Layout.BodySize},
		{&r.compound, cfg.Layout.CompoundSize},
		{&r.code, cfg.Layout.CodeSize},
	}
	for _, f := range faces {
		face, err := source.Face(f.size)
		if err != nil {
			_ = source.Close()
			return nil, err
		}
		*f.dst = face
	}

	Logger().Info("font loaded", "name", source.Name(), "location", location)
	if !source.ShapingAvailable() {
		Logger().Warn("text shaping unavailable, measuring with nominal advances", "name", source.Name())
	}

	return r, nil
}

// resolveFontSource loads the first usable font and reports where it came
// from.
func resolveFontSource(cfg Config, o options) (*text.FontSource, string, error) {
	if len(o.fontData) > 0 {
		s, err := text.NewFontSource(o.fontData)
		if err != nil {
			return nil, "", err
		}
		return s, "memory", nil
	}

	if cfg.Font.Path != "" {
		s, err := text.NewFontSourceFromFile(cfg.Font.Path)
		if err != nil {
			return nil, "", err
		}
		return s, cfg.Font.Path, nil
	}

	for _, path := range DefaultFontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		Logger().Debug("probing font", "path", path)
		s, err := text.NewFontSourceFromFile(path)
		if err != nil {
			Logger().Debug("font rejected", "path", path, "error", err)
			continue
		}
		return s, path, nil
	}

	return nil, "", ErrNoFont
}

// Render draws the entry onto a fresh canvas of the configured size.
//
// The large glyph sits on the left; meanings, readings, and the framed
// compound box fill the column to its right. A *RenderError is returned
// when the entry has no character or the font cannot display it; the Index
// field is left zero for the caller to fill in.
func (r *Renderer) Render(e Entry) (*Canvas, error) {
	if strings.TrimSpace(e.Kanji) == "" {
		return nil, &RenderError{Reason: "empty character field"}
	}
	for _, ru := range e.Kanji {
		if !r.kanji.HasGlyph(ru) {
			return nil, &RenderError{
				Kanji:  e.Kanji,
				Reason: fmt.Sprintf("font %s has no glyph for %q", r.source.Name(), ru),
			}
		}
	}

	w := r.cfg.Canvas.Width
	h := r.cfg.Canvas.Height
	marginX := r.cfg.Layout.MarginX
	marginY := r.cfg.Layout.MarginY

	c := NewCanvas(w, h)
	c.Clear(r.theme.background)

	// Large glyph on the left.
	r.drawTop(c, e.Kanji, r.kanji, float64(marginX), float64(marginY+kanjiTopPad), r.theme.text)

	// Code point annotation in the top-right corner.
	if e.JIS != "" {
		jisW := r.code.Advance(e.JIS)
		r.drawTop(c, e.JIS, r.code, float64(w-marginX)-jisW, float64(marginY), r.theme.text)
	}

	// Annotation column to the right of the glyph.
	colX := float64(marginX + columnOffset)
	y := float64(marginY)

	lines := text.WrapText(e.Meaning, r.body, float64(w-marginX)-colX)
	if len(lines) == 0 {
		lines = []string{""}
	}
	for i, line := range lines {
		r.drawTop(c, line, r.body, colX, y, r.theme.text)
		if i < len(lines)-1 {
			y += readingAdvance
		}
	}
	y += meaningAdvance + verticalSpacing

	if len(e.Hiragana) > 0 {
		r.drawTop(c, strings.Join(e.Hiragana, ", "), r.body, colX, y, r.theme.text)
		y += readingAdvance + verticalSpacing
	}
	if len(e.Katakana) > 0 {
		r.drawTop(c, strings.Join(e.Katakana, ", "), r.body, colX, y, r.theme.text)
		y += readingAdvance + verticalSpacing
	}

	// Framed box with the compound words. The box is drawn even when there
	// are no compounds, at its minimum height.
	maxLineWidth := float64(w-(marginX+columnOffset)-marginX-boxSafetyMargin) - 2*boxPadding
	clines := buildCompoundLines(e.Compounds, r.compound, maxLineWidth)

	x0, y0, x1, y1 := boxRect(w, h, marginX, marginX+columnOffset, int(y)+verticalSpacing, len(clines))
	c.FillRect(x0, y0, x1-x0, y1-y0, r.theme.boxFill)
	c.StrokeRect(x0, y0, x1-x0, y1-y0, boxBorderWidth, r.theme.boxLine)

	ly := float64(y0 + boxPadding)
	for _, cl := range clines {
		lx := colX
		if cl.kanji != "" {
			r.drawTop(c, cl.kanji, r.compound, lx, ly, r.theme.text)
			lx += r.compound.Advance(cl.kanji) + compoundKanjiGap
		}
		if cl.reading != "" {
			r.drawTop(c, cl.reading, r.compound, lx, ly, r.theme.reading)
			lx += r.compound.Advance(cl.reading) + compoundReadingGap
		}
		if cl.meaning != "" {
			r.drawTop(c, cl.meaning, r.compound, lx, ly, r.theme.text)
		}

		ly += boxLineSpacing
		if ly > float64(y1-boxPadding) {
			break
		}
	}

	return c, nil
}

// RenderPNG renders the entry and encodes it as PNG.
func (r *Renderer) RenderPNG(e Entry) ([]byte, error) {
	c, err := r.Render(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the font resources. The renderer must not be used after
// Close.
func (r *Renderer) Close() error {
	if r.source == nil {
		return nil
	}
	err := r.source.Close()
	r.source = nil
	return err
}

// drawTop draws s with (x, yTop) as the top edge of the line box.
// text.Draw takes a baseline origin, so the face ascent is added.
func (r *Renderer) drawTop(c *Canvas, s string, f *text.Face, x, yTop float64, col RGBA) {
	text.Draw(c, s, f, x, yTop+f.Metrics().Ascent, col.Color())
}
