// Command kanjiwall renders one wallpaper image per kanji of a JLPT level.
//
// Usage:
//
//	kanjiwall <level>
//
// The level names a bundled dataset (N5, N4, N3, N2) or a CSV file in the
// configured data directory. Images are written to JLPT-<level>/ under the
// configured output directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/kanjiwall"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(level string) error {
	cfg, err := kanjiwall.LoadConfig()
	if err != nil {
		return err
	}

	kanjiwall.SetLogger(newLogger(cfg.Log))

	g, err := kanjiwall.NewGenerator(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = g.Close() }()

	return g.GenerateLevel(level)
}

func usage() {
	levels := kanjiwall.Levels(kanjiwall.DefaultConfig())
	fmt.Fprintf(os.Stderr, "Usage: %s <level>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Renders one PNG per kanji of the level into JLPT-<level>/.\n")
	fmt.Fprintf(os.Stderr, "Known levels: %s\n", strings.Join(levels, ", "))
}

// newLogger builds the CLI logger from the log configuration.
func newLogger(cfg kanjiwall.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(cfg.Format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
