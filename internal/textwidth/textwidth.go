// Package textwidth measures strings in terminal columns.
//
// Widths follow a fixed CJK heuristic: ideographs, kana, Hangul syllables
// and the halfwidth/fullwidth forms block take two columns, everything
// else takes one. It deliberately does not consult the locale, so the
// same message always lays out the same way.
package textwidth

import "strings"

// CharWidth returns 2 for double-width runes and 1 otherwise.
func CharWidth(r rune) int {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return 2
	case r >= 0x3040 && r <= 0x30FF: // Hiragana, Katakana
		return 2
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return 2
	case r >= 0xFF00 && r <= 0xFFEF: // Halfwidth and Fullwidth Forms
		return 2
	}
	return 1
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += CharWidth(r)
	}
	return w
}

// PadToWidth right-pads s with spaces up to width columns.
// Strings already at least width wide are returned unchanged.
func PadToWidth(s string, width int) string {
	return PadToWidthWith(s, width, ' ')
}

// PadToWidthWith is PadToWidth with a custom pad rune.
func PadToWidthWith(s string, width int, pad rune) string {
	n := width - StringWidth(s)
	if n <= 0 {
		return s
	}
	padW := CharWidth(pad)
	return s + strings.Repeat(string(pad), n/padW)
}

// Truncate splits s into the longest prefix that fits in max columns and
// the remainder. The first rune is always taken, even when it alone is
// wider than max, so callers looping on rest always make progress.
func Truncate(s string, max int) (head, rest string) {
	w := 0
	for i, r := range s {
		rw := CharWidth(r)
		if i > 0 && w+rw > max {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
