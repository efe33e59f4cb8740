package kanjiwall

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLevels(t *testing.T) {
	got := Levels(DefaultConfig())

	want := []string{"N2", "N3", "N4", "N5"}
	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestLevelsExternalDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EXTRA.csv"), "kanji,meaning,readings,compounds\n")
	writeFile(t, filepath.Join(dir, "N5.csv"), "kanji,meaning,readings,compounds\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a dataset\n")

	cfg := DefaultConfig()
	cfg.Data.Dir = dir

	got := Levels(cfg)
	want := []string{"EXTRA", "N2", "N3", "N4", "N5"}
	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestLoadLevelEmbedded(t *testing.T) {
	entries, err := LoadLevel(DefaultConfig(), "N2")
	if err != nil {
		t.Fatalf("LoadLevel(N2) error = %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("len(entries) = %d, want 10", len(entries))
	}

	first := entries[0]
	if first.Kanji != "党" {
		t.Errorf("entries[0].Kanji = %q, want 党", first.Kanji)
	}
	if len(first.Katakana) == 0 || first.Katakana[0] != "トウ" {
		t.Errorf("entries[0].Katakana = %v, want [トウ ...]", first.Katakana)
	}
	if len(first.Compounds) != 3 {
		t.Errorf("len(entries[0].Compounds) = %d, want 3", len(first.Compounds))
	}
}

func TestLoadLevelExternalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "N5.csv"), `kanji,meaning,readings,compounds
山,mountain,サン; やま,
`)

	cfg := DefaultConfig()
	cfg.Data.Dir = dir

	entries, err := LoadLevel(cfg, "N5")
	if err != nil {
		t.Fatalf("LoadLevel(N5) error = %v", err)
	}
	if len(entries) != 1 || entries[0].Kanji != "山" {
		t.Errorf("entries = %v, want the external one-entry dataset", entries)
	}
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel(DefaultConfig(), "n9")
	if err == nil {
		t.Fatal("LoadLevel(n9) succeeded, want error")
	}

	var lvlErr *LevelError
	if !errors.As(err, &lvlErr) {
		t.Fatalf("error type = %T, want *LevelError", err)
	}
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("errors.Is(err, ErrUnknownLevel) = false")
	}
	if len(lvlErr.Known) == 0 {
		t.Error("Known is empty, want the embedded level names")
	}
	if !strings.Contains(err.Error(), "n9") {
		t.Errorf("error %q does not name the level", err)
	}
}

func TestLoadLevelRejectsPaths(t *testing.T) {
	for _, level := range []string{"", "a/b", `a\b`, "../N5"} {
		_, err := LoadLevel(DefaultConfig(), level)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("LoadLevel(%q) error = %v, want ErrUnknownLevel", level, err)
		}
	}
}

func TestLoadLevelEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EMPTY.csv"), "kanji,meaning,readings,compounds\n")

	cfg := DefaultConfig()
	cfg.Data.Dir = dir

	_, err := LoadLevel(cfg, "EMPTY")
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("LoadLevel(EMPTY) error = %v, want ErrEmptyDataset", err)
	}
}
