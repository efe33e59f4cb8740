package text

import (
	"strings"
	"unicode"
)

// WrapText wraps text into lines no wider than maxWidth, measured by m.
// Breaks are taken at word boundaries and between CJK characters, falling
// back to a character break when a single fragment exceeds the width.
// Hard line breaks (\n, \r\n, \r) are respected; each paragraph is wrapped
// independently. A non-positive maxWidth disables wrapping.
func WrapText(text string, m Measurer, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		return []string{text}
	}

	// Normalize line endings and split into paragraphs
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var lines []string
	for _, para := range strings.Split(normalized, "\n") {
		lines = append(lines, wrapParagraph(para, m, maxWidth)...)
	}
	return lines
}

// wrapParagraph wraps a single paragraph (no hard line breaks).
func wrapParagraph(para string, m Measurer, maxWidth float64) []string {
	runes := []rune(para)
	if len(runes) == 0 {
		// Blank line, preserved as an empty output line
		return []string{""}
	}

	var lines []string
	start := 0
	for start < len(runes) {
		end := lineEnd(runes, start, m, maxWidth)
		lines = append(lines, strings.TrimRight(string(runes[start:end]), " \t"))

		// Skip spaces at the start of the next line
		start = end
		for start < len(runes) && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	return lines
}

// lineEnd finds the rune index ending the line that starts at start.
func lineEnd(runes []rune, start int, m Measurer, maxWidth float64) int {
	var width float64
	lastBreak := -1

	for i := start; i < len(runes); i++ {
		if i > start && canBreakBefore(runes[i-1], runes[i]) {
			lastBreak = i
		}

		width += m.Advance(string(runes[i]))
		if width > maxWidth && i > start {
			if lastBreak > start {
				return lastBreak
			}
			// No break opportunity on this line; fall back to a
			// character break.
			return i
		}
	}

	return len(runes)
}

// canBreakBefore reports whether a line may break between prev and curr.
func canBreakBefore(prev, curr rune) bool {
	if unicode.IsSpace(curr) {
		return false
	}
	if unicode.IsSpace(prev) {
		return true
	}
	if noBreakBefore(curr) {
		return false
	}
	return isCJKRune(prev) || isCJKRune(curr)
}

// noBreakBefore lists characters that must not start a line
// (kinsoku shori, simplified).
func noBreakBefore(r rune) bool {
	switch r {
	case ',', '.', ';', ':', '!', '?', ')', ']', '}',
		'、', '。', '」', '』', '）', '・', 'ー',
		'っ', 'ゃ', 'ゅ', 'ょ', 'ッ', 'ャ', 'ュ', 'ョ':
		return true
	}
	return false
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}
