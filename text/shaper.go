package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// japanese tags shaping input so language-specific glyph variants are picked.
var japanese = language.NewLanguage("ja")

// shaper measures text through go-text/typesetting's HarfBuzz port, so
// advances include kerning and mark placement. One shaper is created lazily
// per FontSource; when the typesetting parser rejects the font data, faces
// fall back to summing nominal glyph advances.
type shaper struct {
	mu   sync.Mutex
	hb   shaping.HarfbuzzShaper
	face *font.Face
}

// shaperHandle returns the source's shaper, parsing the font data on the
// shaping side on first call. Returns nil when that parse failed.
func (s *FontSource) shaperHandle() *shaper {
	s.shaperOnce.Do(func() {
		sh, err := newShaper(s.data)
		if err != nil {
			return
		}
		s.shaper = sh
	})
	return s.shaper
}

// ShapingAvailable reports whether the font parsed on the shaping side.
// When it did not, measurement falls back to nominal glyph advances.
func (s *FontSource) ShapingAvailable() bool {
	s.copyCheck()
	return s.shaperHandle() != nil
}

func newShaper(data []byte) (*shaper, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := parseShapingFont(data)
	if err != nil {
		return nil, err
	}
	return &shaper{face: face}, nil
}

// parseShapingFont loads a TTF, OTF, or TTC through typesetting.
// For collections the first face covering hiragana wins, matching the
// drawing-side pick in pickCollectionFont.
func parseShapingFont(data []byte) (*font.Face, error) {
	if len(data) >= 4 && string(data[:4]) == ttcTag {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if len(faces) == 0 {
			return nil, ErrEmptyCollection
		}
		for _, f := range faces {
			if _, ok := f.NominalGlyph('あ'); ok {
				return f, nil
			}
		}
		return faces[0], nil
	}
	return font.ParseTTF(bytes.NewReader(data))
}

// advance returns the shaped advance width of text at the given size.
func (s *shaper) advance(text string, size float64) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}

	// HarfbuzzShaper keeps internal buffers between calls.
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  japanese,
	})

	var total fixed.Int26_6
	for _, g := range out.Glyphs {
		total += g.Advance
	}
	return float64(total) / 64.0
}

// detectScript returns the script of the first non-space rune. Annotation
// text mixes Japanese and Latin; the script at the start of the run decides
// shaping behavior, which is enough for measurement.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
