package kanjiwall

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Embedded starter datasets, one CSV per level.
//
//go:embed data/*.csv
var embeddedData embed.FS

// embeddedDataDir is the directory prefix of the embedded datasets.
const embeddedDataDir = "data"

// Levels returns the sorted names of all known levels: the embedded
// datasets plus any *.csv files in the configured data directory.
func Levels(cfg Config) []string {
	names := make(map[string]bool)

	if entries, err := fs.ReadDir(embeddedData, embeddedDataDir); err == nil {
		for _, e := range entries {
			if name, ok := levelName(e.Name()); ok {
				names[name] = true
			}
		}
	}

	if cfg.Data.Dir != "" {
		if entries, err := os.ReadDir(cfg.Data.Dir); err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if name, ok := levelName(e.Name()); ok {
					names[name] = true
				}
			}
		}
	}

	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// levelName maps a dataset file name to its level name.
func levelName(file string) (string, bool) {
	name, ok := strings.CutSuffix(file, ".csv")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// LoadLevel resolves a level name to its dataset and parses it. A file in
// the configured data directory wins over an embedded dataset of the same
// name. Unknown names and empty datasets yield a *LevelError naming the
// known levels.
func LoadLevel(cfg Config, level string) ([]Entry, error) {
	entries, err := readLevel(cfg, level)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &LevelError{Level: level, Known: Levels(cfg), Err: ErrEmptyDataset}
	}
	return entries, nil
}

// readLevel locates and parses the dataset for a level name.
func readLevel(cfg Config, level string) ([]Entry, error) {
	// Level names are bare labels, never paths.
	if level == "" || strings.ContainsAny(level, `/\`) {
		return nil, &LevelError{Level: level, Known: Levels(cfg), Err: ErrUnknownLevel}
	}

	if cfg.Data.Dir != "" {
		path := filepath.Join(cfg.Data.Dir, level+".csv")
		if _, err := os.Stat(path); err == nil {
			return LoadEntries(path)
		}
	}

	if f, err := embeddedData.Open(embeddedDataDir + "/" + level + ".csv"); err == nil {
		defer func() {
			_ = f.Close()
		}()
		return ParseEntries(f)
	}

	return nil, &LevelError{Level: level, Known: Levels(cfg), Err: ErrUnknownLevel}
}
