package kanjiwall

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LevelDir returns the directory name that holds a level's images,
// e.g. "JLPT-N2" for level "N2".
func LevelDir(level string) string {
	return "JLPT-" + level
}

// FileName returns the image file name for a 1-based entry index,
// e.g. "JLPT_N2_00042.png". Hyphens in the level are folded to
// underscores so the name stays underscore-separated.
func FileName(level string, index int) string {
	return fmt.Sprintf("JLPT_%s_%05d.png", strings.ReplaceAll(level, "-", "_"), index)
}

// Generator writes one wallpaper image per entry of a level.
type Generator struct {
	cfg      Config
	renderer *Renderer
}

// NewGenerator creates a Generator. Unless a renderer is supplied through
// WithRenderer, one is created from the configuration (and closed again by
// Close).
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := o.renderer
	if r == nil {
		var err error
		r, err = NewRenderer(cfg, opts...)
		if err != nil {
			return nil, err
		}
	}

	return &Generator{cfg: cfg, renderer: r}, nil
}

// OutputDir returns the directory the level's images are written to.
func (g *Generator) OutputDir(level string) string {
	return filepath.Join(g.cfg.Output.Dir, LevelDir(level))
}

// Generate renders every entry of the level and writes the images to
// OutputDir(level), numbered from 00001 in entry order.
//
// All entries are validated before the first file is written, so a level
// with an unrenderable entry produces no output directory at all. Render
// and write failures abort the run; files written before an I/O failure
// are left in place.
func (g *Generator) Generate(level string, entries []Entry) error {
	if level == "" {
		return &LevelError{Level: level, Err: ErrUnknownLevel}
	}
	if len(entries) == 0 {
		return &LevelError{Level: level, Err: ErrEmptyDataset}
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Kanji) == "" {
			return &RenderError{Index: i + 1, Reason: "empty character field"}
		}
	}

	dir := g.OutputDir(level)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("kanjiwall: create output directory %s: %w", dir, err)
	}

	Logger().Info("generating level", "level", level, "entries", len(entries), "dir", dir)

	for i, e := range entries {
		c, err := g.renderer.Render(e)
		if err != nil {
			var re *RenderError
			if errors.As(err, &re) && re.Index == 0 {
				re.Index = i + 1
			}
			return err
		}

		path := filepath.Join(dir, FileName(level, i+1))
		if err := c.SavePNG(path); err != nil {
			return fmt.Errorf("kanjiwall: write %s: %w", path, err)
		}
		Logger().Debug("image written", "path", path, "kanji", e.Kanji)
	}

	Logger().Info("level complete", "level", level, "images", len(entries))

	return nil
}

// GenerateLevel loads the named level's dataset and generates its images.
func (g *Generator) GenerateLevel(level string) error {
	entries, err := LoadLevel(g.cfg, level)
	if err != nil {
		return err
	}
	return g.Generate(level, entries)
}

// Close releases the generator's renderer.
func (g *Generator) Close() error {
	if g.renderer == nil {
		return nil
	}
	err := g.renderer.Close()
	g.renderer = nil
	return err
}
