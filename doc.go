// Package kanjiwall renders JLPT kanji study wallpapers.
//
// # Overview
//
// kanjiwall turns per-level kanji datasets into sets of fixed-size PNG
// wallpapers: one image per kanji, with the character drawn large on the
// left and its meaning, readings, and example compounds laid out as
// annotations on the right. The output of a level is a single directory of
// equally sized PNGs, numbered in dataset order, suitable for an operating
// system wallpaper slideshow.
//
// # Quick Start
//
//	import "github.com/gogpu/kanjiwall"
//
//	cfg, err := kanjiwall.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := kanjiwall.NewGenerator(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	// Renders JLPT-N2/JLPT_N2_00001.png, JLPT_N2_00002.png, ...
//	if err := gen.GenerateLevel("N2"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Output Layout
//
// For a level named L, images are written to the directory "JLPT-L" as
// "JLPT_L_00001.png", "JLPT_L_00002.png", and so on. The sequence number is
// the 1-based position of the entry in the level dataset, so regenerating a
// level overwrites the same files deterministically.
//
// # Datasets
//
// Level datasets are CSV files with a header row and the columns
// kanji, meaning, readings, compounds, and an optional jis column. A set of
// starter datasets is embedded in the package; a data directory configured
// via Config can add further levels or override the embedded ones.
//
// # Fonts
//
// Rendering requires a font with Japanese coverage. By default a list of
// well-known system font paths is probed (Noto Sans CJK, Hiragino, Yu
// Gothic, MS Gothic); an explicit font file can be set in Config. Both TTF
// files and TTC collections are supported.
//
// # Errors
//
// The generator fails fast: an unknown level, an entry that cannot be
// rendered, or any I/O failure aborts the batch immediately with a typed
// error naming the level, character, or path. Files already written by
// earlier entries are left in place; a rerun overwrites them.
package kanjiwall

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
