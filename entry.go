package kanjiwall

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Entry is one kanji record of a level dataset. Entries are immutable
// values: they are fully derived from the raw dataset fields at parse time
// and never modified afterwards. The position of an entry in its level's
// list determines its output file number.
type Entry struct {
	// Kanji is the character rendered large on the wallpaper.
	// Rendering fails for entries with an empty Kanji field.
	Kanji string

	// Meaning is the translation text shown next to the character.
	Meaning string

	// JIS is an optional character code shown in the top-right corner.
	JIS string

	// Hiragana and Katakana hold the classified readings, in dataset order.
	Hiragana []string
	Katakana []string

	// Compounds are example words using the kanji.
	Compounds []Compound
}

// Compound is one example word: the compound itself, its reading, and its
// meaning, shown as one group inside the compounds box.
type Compound struct {
	Kanji   string
	Reading string
	Meaning string
}

// NewEntry builds an Entry from raw dataset fields, deriving the classified
// reading lists and the parsed compounds.
func NewEntry(kanji, meaning, readings, compounds, jis string) Entry {
	hiragana, katakana := splitReadings(readings)
	return Entry{
		Kanji:     strings.TrimSpace(kanji),
		Meaning:   strings.TrimSpace(meaning),
		JIS:       strings.TrimSpace(jis),
		Hiragana:  hiragana,
		Katakana:  katakana,
		Compounds: parseCompounds(compounds),
	}
}

// ParseEntries reads a level dataset from CSV. The expected format is a
// header row followed by records of kanji, meaning, readings, compounds,
// and an optional jis column:
//
//	kanji,meaning,readings,compounds
//	腕,"arm, ability",ワン; うで,"手腕 (しゅわん) = ability"
//
// Entries with an empty kanji field are kept; they fail later, at render
// time, so that output numbering never silently skips a record.
func ParseEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// Skip the header row.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("kanjiwall: read dataset header: %w", err)
	}

	var entries []Entry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kanjiwall: read dataset record: %w", err)
		}
		for len(rec) < 5 {
			rec = append(rec, "")
		}
		entries = append(entries, NewEntry(rec[0], rec[1], rec[2], rec[3], rec[4]))
	}
	return entries, nil
}

// LoadEntries reads a level dataset from a CSV file.
func LoadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path) //nolint:gosec // dataset path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("kanjiwall: open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ParseEntries(f)
}

// splitReadings splits the raw readings field on ";" and "," and classifies
// each token as hiragana or katakana. Halfwidth katakana is folded to full
// width first. Mixed-script tokens are split into same-script runs and each
// run classified on its own; runs from other scripts are dropped.
func splitReadings(raw string) (hiragana, katakana []string) {
	for _, part := range strings.Split(raw, ";") {
		for _, tok := range strings.Split(part, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			tok = foldHalfwidth(tok)
			switch {
			case isHiraganaToken(tok):
				hiragana = append(hiragana, tok)
			case isKatakanaToken(tok):
				katakana = append(katakana, tok)
			default:
				h, k := scriptRuns(tok)
				hiragana = append(hiragana, h...)
				katakana = append(katakana, k...)
			}
		}
	}
	return hiragana, katakana
}

// compoundPattern matches one "word (reading) = meaning" chunk.
var compoundPattern = regexp.MustCompile(`^([^\s(]+)\s*\(([^)]+)\)\s*=\s*(.+)$`)

// parseCompounds splits the raw compounds field on ";" and parses each chunk
// as "word (reading) = meaning". Malformed chunks are skipped; data quality
// problems in one compound should not take down the whole entry.
func parseCompounds(raw string) []Compound {
	var compounds []Compound
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := compoundPattern.FindStringSubmatch(part)
		if m == nil {
			Logger().Debug("skipping malformed compound", "chunk", part)
			continue
		}
		compounds = append(compounds, Compound{
			Kanji:   strings.TrimSpace(m[1]),
			Reading: strings.TrimSpace(m[2]),
			Meaning: strings.TrimSpace(m[3]),
		})
	}
	return compounds
}

// isHiraganaRune reports whether r is in the Unicode Hiragana block.
func isHiraganaRune(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// isKatakanaRune reports whether r is in the Unicode Katakana block.
func isKatakanaRune(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// isReadingMark reports neutral marks that may appear inside a reading of
// either script: spaces, the interpunct, the long vowel mark, and the
// okurigana separator dot.
func isReadingMark(r rune) bool {
	return unicode.IsSpace(r) || r == '・' || r == 'ー' || r == '.'
}

// isHiraganaToken reports whether the token consists entirely of hiragana
// and neutral reading marks.
func isHiraganaToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isHiraganaRune(r) && !isReadingMark(r) {
			return false
		}
	}
	return true
}

// isKatakanaToken reports whether the token consists entirely of katakana
// and neutral reading marks.
func isKatakanaToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isKatakanaRune(r) && !isReadingMark(r) {
			return false
		}
	}
	return true
}

// scriptRuns splits a mixed token into same-script runs of hiragana and
// katakana. Neutral marks extend the current run; runes from any other
// script end the run and are dropped.
func scriptRuns(tok string) (hiragana, katakana []string) {
	const (
		classNone = iota
		classHiragana
		classKatakana
	)

	var run []rune
	class := classNone

	flush := func() {
		if len(run) > 0 {
			switch class {
			case classHiragana:
				hiragana = append(hiragana, string(run))
			case classKatakana:
				katakana = append(katakana, string(run))
			}
		}
		run = nil
		class = classNone
	}

	for _, r := range tok {
		switch {
		case isReadingMark(r):
			// Neutral marks before any scripted rune carry no script and
			// are dropped.
			if class != classNone {
				run = append(run, r)
			}
		case isHiraganaRune(r):
			if class != classHiragana {
				flush()
				class = classHiragana
			}
			run = append(run, r)
		case isKatakanaRune(r):
			if class != classKatakana {
				flush()
				class = classKatakana
			}
			run = append(run, r)
		default:
			flush()
		}
	}
	flush()

	return hiragana, katakana
}

// foldHalfwidth converts halfwidth katakana, including the halfwidth
// interpunct and long vowel mark, to fullwidth forms so that classification
// sees one canonical shape. All other runes are left untouched.
func foldHalfwidth(s string) string {
	if !strings.ContainsFunc(s, isHalfwidthKana) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isHalfwidthKana(r) {
			b.WriteString(width.Widen.String(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isHalfwidthKana reports whether r is in the halfwidth katakana range.
func isHalfwidthKana(r rune) bool {
	return r >= 0xFF65 && r <= 0xFF9F
}
