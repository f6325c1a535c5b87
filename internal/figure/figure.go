// Package figure holds the ASCII-art character drawn next to the bubble.
package figure

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
)

//go:embed quokka.txt
var quokkaArt string

var (
	// ErrEmpty is returned for art without any non-blank line.
	ErrEmpty = errors.New("figure has no lines")
	// ErrWideGlyph is returned for art containing a glyph that does not
	// occupy exactly one terminal column.
	ErrWideGlyph = errors.New("figure contains a glyph that is not single-width")
)

// Figure is an immutable block of art lines. The zero value is an empty
// figure.
type Figure struct {
	lines []string
	width int
}

// narrow measures glyphs the way a non-CJK terminal does, so that block
// and box-drawing characters count as one column.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

var quokka = sync.OnceValue(func() Figure {
	f, err := Parse(quokkaArt)
	if err != nil {
		panic(fmt.Sprintf("figure: embedded quokka: %v", err))
	}
	return f
})

// Quokka returns the built-in quokka.
func Quokka() Figure { return quokka() }

// New builds a figure from lines, validating that every glyph is
// single-width.
func New(lines []string) (Figure, error) {
	blank := true
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			blank = false
			break
		}
	}
	if blank {
		return Figure{}, ErrEmpty
	}

	f := Figure{lines: make([]string, len(lines))}
	for i, line := range lines {
		for _, r := range line {
			if narrow.RuneWidth(r) != 1 {
				return Figure{}, fmt.Errorf("line %d: %w: %q", i+1, ErrWideGlyph, r)
			}
		}
		f.lines[i] = line
		if n := utf8.RuneCountInString(line); n > f.width {
			f.width = n
		}
	}
	return f, nil
}

// Parse splits text into a figure. One leading and one trailing empty
// line are ignored, so art may be written between backquotes on lines of
// its own.
func Parse(text string) (Figure, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return New(lines)
}

// Load reads a figure from a plain-text file.
func Load(path string) (Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Figure{}, fmt.Errorf("read figure file %q: %w", path, err)
	}
	f, err := Parse(string(data))
	if err != nil {
		return Figure{}, fmt.Errorf("parse figure file %q: %w", path, err)
	}
	return f, nil
}

// Lines returns a copy of the art lines.
func (f Figure) Lines() []string {
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

// Line returns line i, or "" when i is out of range.
func (f Figure) Line(i int) string {
	if i < 0 || i >= len(f.lines) {
		return ""
	}
	return f.lines[i]
}

// Height is the number of lines.
func (f Figure) Height() int { return len(f.lines) }

// MaxWidth is the length, in runes, of the longest line.
func (f Figure) MaxWidth() int { return f.width }

// Empty reports whether the figure has no lines.
func (f Figure) Empty() bool { return len(f.lines) == 0 }

func (f Figure) String() string { return strings.Join(f.lines, "\n") }
