package text

import (
	"slices"
	"testing"
)

// fixedMeasurer gives every rune the same advance so break positions are
// exact.
type fixedMeasurer struct {
	w float64
}

func (m fixedMeasurer) Advance(text string) float64 {
	return float64(len([]rune(text))) * m.w
}

func TestWrapTextEmpty(t *testing.T) {
	if got := WrapText("", fixedMeasurer{w: 10}, 100); got != nil {
		t.Errorf("WrapText(\"\") = %v, want nil", got)
	}
}

func TestWrapTextNoLimit(t *testing.T) {
	got := WrapText("anything at all", fixedMeasurer{w: 10}, 0)
	if !slices.Equal(got, []string{"anything at all"}) {
		t.Errorf("WrapText() = %v, want the unwrapped text", got)
	}
}

func TestWrapTextWords(t *testing.T) {
	got := WrapText("aaa bbb ccc", fixedMeasurer{w: 10}, 70)
	want := []string{"aaa", "bbb ccc"}
	if !slices.Equal(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}
}

func TestWrapTextCJK(t *testing.T) {
	// CJK text breaks between any two characters.
	got := WrapText("勉強する", fixedMeasurer{w: 10}, 25)
	want := []string{"勉強", "する"}
	if !slices.Equal(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}
}

func TestWrapTextKinsoku(t *testing.T) {
	// 。 must not start a line; the break moves back.
	got := WrapText("こんにちは。", fixedMeasurer{w: 10}, 50)
	want := []string{"こんにち", "は。"}
	if !slices.Equal(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}
}

func TestWrapTextSmallKana(t *testing.T) {
	// Small kana bind to the preceding character.
	got := WrapText("きって", fixedMeasurer{w: 10}, 20)
	want := []string{"きっ", "て"}
	if !slices.Equal(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}
}

func TestWrapTextCharFallback(t *testing.T) {
	// A single unbreakable word falls back to character breaks.
	got := WrapText("abcdefgh", fixedMeasurer{w: 10}, 30)
	want := []string{"abc", "def", "gh"}
	if !slices.Equal(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}
}

func TestWrapTextHardBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"newline", "one\ntwo", []string{"one", "two"}},
		{"crlf and blank line", "a\r\n\r\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, fixedMeasurer{w: 10}, 1000)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WrapText(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanBreakBefore(t *testing.T) {
	tests := []struct {
		name string
		prev rune
		curr rune
		want bool
	}{
		{"after space", ' ', 'b', true},
		{"before space", 'a', ' ', false},
		{"latin pair", 'a', 'b', false},
		{"CJK pair", '勉', '強', true},
		{"before full stop", 'は', '。', false},
		{"before small tsu", 'き', 'っ', false},
		{"before long vowel", 'コ', 'ー', false},
		{"CJK then latin", '猫', 'c', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canBreakBefore(tt.prev, tt.curr); got != tt.want {
				t.Errorf("canBreakBefore(%q, %q) = %v, want %v", tt.prev, tt.curr, got, tt.want)
			}
		})
	}
}

func TestIsCJKRune(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"ideograph", '日', true},
		{"hiragana", 'あ', true},
		{"katakana", 'ア', true},
		{"fullwidth digit", '１', true},
		{"latin", 'a', false},
		{"digit", '1', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCJKRune(tt.r); got != tt.want {
				t.Errorf("isCJKRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
