package kanjiwall

import (
	"testing"
)

// TestWithFontData tests that font bytes are carried into creation options.
func TestWithFontData(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x00}

	o := defaultOptions()
	WithFontData(data)(&o)

	if len(o.fontData) != len(data) {
		t.Fatalf("fontData length = %d, want %d", len(o.fontData), len(data))
	}
	for i := range data {
		if o.fontData[i] != data[i] {
			t.Errorf("fontData[%d] = %#x, want %#x", i, o.fontData[i], data[i])
		}
	}
}

// TestWithRendererOption tests dependency injection of a pre-built renderer.
func TestWithRendererOption(t *testing.T) {
	r := &Renderer{}

	o := defaultOptions()
	WithRenderer(r)(&o)

	if o.renderer != r {
		t.Error("renderer is not the injected renderer")
	}
}

// TestDefaultOptions tests that defaults leave all injections unset.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.fontData != nil {
		t.Error("fontData is not nil by default")
	}
	if o.renderer != nil {
		t.Error("renderer is not nil by default")
	}
}

// TestMultipleOptions tests combining multiple options.
func TestMultipleOptions(t *testing.T) {
	r := &Renderer{}
	data := []byte{0x01}

	o := defaultOptions()
	for _, opt := range []Option{WithFontData(data), WithRenderer(r)} {
		opt(&o)
	}

	if o.renderer != r {
		t.Error("renderer is not the injected renderer")
	}
	if len(o.fontData) != 1 {
		t.Error("fontData was not applied")
	}
}
