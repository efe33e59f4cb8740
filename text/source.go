package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ttcTag is the magic number at the start of a TrueType Collection file.
const ttcTag = "ttcf"

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data []byte
	font *opentype.Font

	// Metadata
	name string

	// Shaping-side font handle, parsed lazily on first measurement.
	shaperOnce sync.Once
	shaper     *shaper
}

// NewFontSource creates a FontSource from font data (TTF, OTF, or TTC).
// The data slice is copied internally and can be reused after this call.
// For TTC collections, the first face with Japanese coverage is selected.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := parseFont(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.data = nil
	s.font = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// parseFont parses single fonts and collections by sniffing the magic.
func parseFont(data []byte) (*opentype.Font, error) {
	if len(data) >= 4 && string(data[:4]) == ttcTag {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
		}
		return pickCollectionFont(coll)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// pickCollectionFont selects a face from a TTC. Collections that bundle
// regional CJK variants put them in no fixed order, so the first face that
// covers hiragana wins; otherwise the first face is used.
func pickCollectionFont(coll *opentype.Collection) (*opentype.Font, error) {
	n := coll.NumFonts()
	if n == 0 {
		return nil, ErrEmptyCollection
	}

	var buf sfnt.Buffer
	for i := 0; i < n; i++ {
		f, err := coll.Font(i)
		if err != nil {
			continue
		}
		if gi, err := f.GlyphIndex(&buf, 'あ'); err == nil && gi != 0 {
			return f, nil
		}
	}

	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font collection: %w", err)
	}
	return f, nil
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	var buf sfnt.Buffer

	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}

	// Try full name as fallback
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}

	return "Unknown Font"
}
