package kanjiwall

import (
	"strings"

	"github.com/gogpu/kanjiwall/text"
)

// Fine-grained layout metrics. These are fixed presentation choices; the
// coarse parameters (margins, font sizes, canvas dimensions) live in Config.
const (
	// kanjiTopPad lowers the main character slightly below the top margin.
	kanjiTopPad = 10

	// columnOffset is the distance from the left margin to the annotation
	// column that holds the meaning, readings, and compounds box.
	columnOffset = 300

	// verticalSpacing is the extra gap between annotation blocks.
	verticalSpacing = 15

	// meaningAdvance and readingAdvance are the base line advances of the
	// meaning block and of each reading line.
	meaningAdvance = 45
	readingAdvance = 40

	// Compounds box geometry: inner padding, per-line advance, the border
	// width, the gap kept below the box, and a safety margin subtracted
	// from the usable line width.
	boxPadding      = 15
	boxLineSpacing  = 30
	boxBorderWidth  = 2
	boxBottomMargin = 30
	boxSafetyMargin = 20

	// Horizontal gaps between the parts of a compound line.
	compoundKanjiGap   = 8
	compoundReadingGap = 12

	// minMeaningWidth is the smallest width worth starting meaning text in
	// after the word and reading on a compound's first line.
	minMeaningWidth = 20

	// longWordShrink tightens the width limit when breaking a single
	// overlong word, leaving room for rasterization slop.
	longWordShrink = 0.95
)

// compoundLine is one rendered line inside the compounds box. The first
// line of a compound carries the word and reading; continuation lines carry
// meaning text only.
type compoundLine struct {
	kanji   string
	reading string
	meaning string
}

// buildCompoundLines flattens compounds into box lines no wider than
// maxWidth. Each compound starts with a line holding the word, the reading,
// and as much of the meaning as fits; remaining meaning words wrap onto
// meaning-only lines.
func buildCompoundLines(compounds []Compound, m text.Measurer, maxWidth float64) []compoundLine {
	var lines []compoundLine
	for _, c := range compounds {
		wordWidth := m.Advance(c.Kanji)
		readingWidth := m.Advance(c.Reading)
		meaningWidth := m.Advance(c.Meaning)

		total := wordWidth + compoundKanjiGap + readingWidth + compoundReadingGap + meaningWidth
		if total <= maxWidth {
			lines = append(lines, compoundLine{kanji: c.Kanji, reading: c.Reading, meaning: c.Meaning})
			continue
		}

		// Keep the word and reading together and fit what meaning we can
		// after them before falling back to meaning-only lines.
		headWidth := wordWidth + compoundKanjiGap + readingWidth + compoundReadingGap
		remaining := maxWidth - headWidth
		if headWidth < maxWidth && remaining > minMeaningWidth {
			first, rest := fitWords(strings.Fields(c.Meaning), m, remaining)
			if first != "" {
				lines = append(lines, compoundLine{kanji: c.Kanji, reading: c.Reading, meaning: first})
				if rest != "" {
					lines = appendMeaningLines(lines, rest, m, maxWidth)
				}
				continue
			}
		}

		lines = append(lines, compoundLine{kanji: c.Kanji, reading: c.Reading})
		lines = appendMeaningLines(lines, c.Meaning, m, maxWidth)
	}
	return lines
}

// fitWords takes as many leading words as fit within maxWidth and returns
// them joined, along with the rest of the words joined.
func fitWords(words []string, m text.Measurer, maxWidth float64) (line, rest string) {
	var taken []string
	for i, w := range words {
		candidate := strings.Join(words[:i+1], " ")
		if m.Advance(candidate) > maxWidth {
			return strings.Join(taken, " "), strings.Join(words[i:], " ")
		}
		taken = append(taken, w)
	}
	return strings.Join(taken, " "), ""
}

// appendMeaningLines wraps meaning text onto meaning-only box lines, word
// by word, splitting an overlong word character by character.
func appendMeaningLines(lines []compoundLine, meaning string, m text.Measurer, maxWidth float64) []compoundLine {
	var current []string
	for _, w := range strings.Fields(meaning) {
		candidate := strings.Join(append(current[:len(current):len(current)], w), " ")
		if m.Advance(candidate) <= maxWidth {
			current = append(current, w)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, compoundLine{meaning: strings.Join(current, " ")})
			current = nil
		}
		if m.Advance(w) <= maxWidth {
			current = []string{w}
			continue
		}
		lines = splitLongWord(lines, w, m, maxWidth)
	}
	if len(current) > 0 {
		lines = append(lines, compoundLine{meaning: strings.Join(current, " ")})
	}
	return lines
}

// splitLongWord breaks a word that cannot fit on one line into
// character-level chunks.
func splitLongWord(lines []compoundLine, word string, m text.Measurer, maxWidth float64) []compoundLine {
	limit := maxWidth * longWordShrink
	var current []rune
	for _, r := range word {
		candidate := string(current) + string(r)
		if m.Advance(candidate) <= limit {
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, compoundLine{meaning: string(current)})
		}
		current = []rune{r}
	}
	if len(current) > 0 {
		lines = append(lines, compoundLine{meaning: string(current)})
	}
	return lines
}

// boxRect computes the compounds box rectangle. The box is drawn even when
// there are no lines, at a minimum height, so every wallpaper shares the
// same visual structure. Content taller than the space above the bottom
// margin is clipped by the caller; the box never extends into the margin.
func boxRect(canvasW, canvasH, marginX, columnX, top, lineCount int) (x0, y0, x1, y1 int) {
	x0 = columnX - boxPadding
	y0 = top
	x1 = canvasW - marginX

	if lineCount > 0 {
		maxAvailable := canvasH - y0 - boxBottomMargin
		content := lineCount * boxLineSpacing
		if limit := maxAvailable - 2*boxPadding; content > limit {
			content = limit
		}
		y1 = y0 + content + 2*boxPadding
	} else {
		y1 = y0 + 2*boxPadding + boxLineSpacing
	}
	return x0, y0, x1, y1
}
