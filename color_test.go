package kanjiwall

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"long black", "#000000", Black},
		{"long white", "#FFFFFF", White},
		{"orange", "#FFA500", Orange},
		{"no hash", "FFA500", Orange},
		{"short white", "#FFF", White},
		{"with alpha", "#00FF0080", RGBA{R: 0, G: 1, B: 0, A: float64(0x80) / 255}},
		{"short with alpha", "#0F08", RGBA{R: 0, G: 1, B: 0, A: float64(0x88) / 255}},
		{"empty falls back to black", "", Black},
		{"bad length falls back to black", "#12345", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBAColor(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 1}.Color()
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBAColorClamps(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0, A: 1}.Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	want := RGBA{R: 1, G: 0, B: 0, A: 1}
	if got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
}

func TestColorRoundtrip(t *testing.T) {
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 1}
	roundtripped := FromColor(original.Color())

	const tolerance = 1.0 / 255
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.A != 1 {
		t.Errorf("RGB() alpha = %v, want 1", c.A)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
