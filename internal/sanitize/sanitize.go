// Package sanitize cleans raw message text before it is measured.
package sanitize

import "strings"

// tabWidth is the number of spaces a horizontal tab expands to.
const tabWidth = 4

// Sanitize replaces invalid UTF-8 with U+FFFD, expands tabs to four
// spaces and drops C0 and C1 control characters. Line feeds are kept;
// they separate paragraphs. Sanitize is idempotent.
func Sanitize(text string) string {
	text = strings.ToValidUTF8(text, "�")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case isControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}
