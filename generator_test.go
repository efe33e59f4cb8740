package kanjiwall

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLevelDir(t *testing.T) {
	if got := LevelDir("N2"); got != "JLPT-N2" {
		t.Errorf("LevelDir(N2) = %q, want JLPT-N2", got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		level string
		index int
		want  string
	}{
		{"N2", 1, "JLPT_N2_00001.png"},
		{"N2", 123, "JLPT_N2_00123.png"},
		{"n2_full", 3, "JLPT_n2_full_00003.png"},
		{"n2-full", 3, "JLPT_n2_full_00003.png"},
	}
	for _, tt := range tests {
		if got := FileName(tt.level, tt.index); got != tt.want {
			t.Errorf("FileName(%q, %d) = %q, want %q", tt.level, tt.index, got, tt.want)
		}
	}
}

// TestGenerateValidation exercises the pre-write validation with no font
// or renderer involved.
func TestGenerateValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = t.TempDir()
	g := &Generator{cfg: cfg}

	if err := g.Generate("", []Entry{{Kanji: "一"}}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("empty level error = %v, want ErrUnknownLevel", err)
	}

	if err := g.Generate("N2", nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("no entries error = %v, want ErrEmptyDataset", err)
	}

	err := g.Generate("N2", []Entry{{Kanji: "一"}, {}})
	var rendErr *RenderError
	if !errors.As(err, &rendErr) {
		t.Fatalf("error type = %T, want *RenderError", err)
	}
	if rendErr.Index != 2 {
		t.Errorf("Index = %d, want 2", rendErr.Index)
	}

	// Validation failed before any write, so no directory appears.
	if _, err := os.Stat(g.OutputDir("N2")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output directory exists after failed validation")
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(testConfig(t))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	t.Cleanup(func() {
		_ = g.Close()
	})
	return g
}

func scenarioEntries() []Entry {
	return []Entry{
		NewEntry("一", "one", "yi", "", ""),
		NewEntry("二", "two", "er", "", ""),
		NewEntry("三", "three", "san", "", ""),
	}
}

func TestGenerateWritesNumberedFiles(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.Generate("n2_full", scenarioEntries()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := g.OutputDir("n2_full")
	for i := 1; i <= 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("JLPT_n2_full_%05d.png", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file %s: %v", path, err)
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Errorf("len(files) = %d, want 3", len(files))
	}

	// Each image carries its glyph: the character area is not left blank.
	for i := 1; i <= 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("JLPT_n2_full_%05d.png", i))
		if ink := countBrightPixels(t, path, 300); ink < 100 {
			t.Errorf("%s has %d bright pixels in the character area, want at least 100", path, ink)
		}
	}
}

// countBrightPixels decodes a PNG and counts near-white pixels left of maxX.
func countBrightPixels(t *testing.T, path string, maxX int) int {
	t.Helper()
	f, err := os.Open(path) // #nosec G304 -- test output dir
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}

	ink := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Min.X+maxX && x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r > 0x8000 && g > 0x8000 && bl > 0x8000 {
				ink++
			}
		}
	}
	return ink
}

func readAllFiles(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte)
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name())) // #nosec G304 -- test output dir
		if err != nil {
			t.Fatal(err)
		}
		out[f.Name()] = data
	}
	return out
}

func TestGenerateIdempotent(t *testing.T) {
	g := newTestGenerator(t)
	entries := scenarioEntries()

	if err := g.Generate("N5", entries); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	first := readAllFiles(t, g.OutputDir("N5"))

	if err := g.Generate("N5", entries); err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	second := readAllFiles(t, g.OutputDir("N5"))

	if len(first) != len(second) {
		t.Fatalf("file count changed: %d -> %d", len(first), len(second))
	}
	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Errorf("file %s changed between runs", name)
		}
	}
}

func TestGenerateUniformDimensions(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.Generate("N5", scenarioEntries()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := g.OutputDir("N5")
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		fh, err := os.Open(filepath.Join(dir, f.Name())) // #nosec G304 -- test output dir
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(fh)
		_ = fh.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", f.Name(), err)
		}
		if cfg.Width != 1260 || cfg.Height != 520 {
			t.Errorf("%s is %dx%d, want 1260x520", f.Name(), cfg.Width, cfg.Height)
		}
	}
}

func TestGenerateLevelEmbedded(t *testing.T) {
	g := newTestGenerator(t)

	if err := g.GenerateLevel("N5"); err != nil {
		t.Fatalf("GenerateLevel(N5) error = %v", err)
	}

	files, err := os.ReadDir(g.OutputDir("N5"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 10 {
		t.Errorf("len(files) = %d, want 10", len(files))
	}
}

func TestGenerateLevelUnknown(t *testing.T) {
	g := newTestGenerator(t)

	err := g.GenerateLevel("n9")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("GenerateLevel(n9) error = %v, want ErrUnknownLevel", err)
	}

	// A failed level leaves the output root untouched.
	files, err := os.ReadDir(g.cfg.Output.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("output root has %d entries after failed level, want 0", len(files))
	}
}

func TestNewGeneratorWithRenderer(t *testing.T) {
	r := newTestRenderer(t)

	cfg := DefaultConfig()
	cfg.Output.Dir = t.TempDir()

	g, err := NewGenerator(cfg, WithRenderer(r))
	if err != nil {
		t.Fatalf("NewGenerator(WithRenderer) error = %v", err)
	}
	if g.renderer != r {
		t.Error("generator did not adopt the injected renderer")
	}
	// The test renderer is closed by its own cleanup.
	g.renderer = nil
}
