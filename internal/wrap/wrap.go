// Package wrap breaks message text into display lines of bounded width.
//
// Paragraphs are separated by line feeds. A paragraph whose first token is
// a number followed by a period ("1.", "12.") is laid out as a numbered
// item: the number leads the first line, continuation lines are indented
// by two columns, and a blank line follows the item.
package wrap

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fsmiamoto/quokka-say/internal/textwidth"
)

// DefaultWidth is the column budget used for speech bubbles.
const DefaultWidth = 40

// ErrorLine replaces the output when wrapping fails.
const ErrorLine = "[Text processing error]"

// continuationIndent is the indent of the second and later lines of a
// numbered paragraph.
const continuationIndent = 2

// verbatimMarker keeps a numbered paragraph exactly as typed.
const verbatimMarker = "한글"

var numberedRe = regexp.MustCompile(`^\d+\.`)

// LineContext describes how the lines of one paragraph are laid out.
// The zero value is a plain paragraph.
type LineContext struct {
	Indent int    // columns reserved on continuation lines
	Prefix string // lead-in of the first line, e.g. "3."
}

// ContextFor returns the layout context for a paragraph.
func ContextFor(paragraph string) LineContext {
	prefix := numberedRe.FindString(strings.TrimSpace(paragraph))
	if prefix == "" {
		return LineContext{}
	}
	return LineContext{Indent: continuationIndent, Prefix: prefix}
}

// Numbered reports whether the context is a numbered item.
func (c LineContext) Numbered() bool { return c.Prefix != "" }

func (c LineContext) leadIn() string {
	if c.Prefix == "" {
		return ""
	}
	return c.Prefix + " "
}

// Wrap is Lines without the error: on failure it returns a single
// ErrorLine. The result is never empty.
func Wrap(text string, width int) []string {
	lines, err := Lines(text, width)
	if err != nil || len(lines) == 0 {
		return []string{ErrorLine}
	}
	return lines
}

// Lines wraps every paragraph of text to width display columns.
// Blank paragraphs are kept as empty lines, so Lines("") is [""].
func Lines(text string, width int) (lines []string, err error) {
	if width < 1 {
		return nil, fmt.Errorf("wrap: width must be positive, got %d", width)
	}
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("wrap: %v", r)
		}
	}()

	for _, p := range strings.Split(text, "\n") {
		lines = append(lines, Paragraph(p, width)...)
	}
	return lines, nil
}

// Paragraph wraps a single paragraph. p must not contain line feeds.
func Paragraph(p string, width int) []string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		return []string{""}
	}

	ctx := ContextFor(trimmed)
	body := p
	if ctx.Numbered() {
		if strings.Contains(p, verbatimMarker) {
			return []string{p}
		}
		body = trimmed[len(ctx.Prefix):]
	}

	f := newFiller(width, ctx)
	for _, word := range strings.Split(body, " ") {
		if word == "" {
			continue
		}
		f.add(word)
	}
	f.flush()

	lines := f.lines
	if len(lines) == 0 {
		return []string{""}
	}
	if ctx.Numbered() && strings.TrimSpace(lines[len(lines)-1]) != "" {
		lines = append(lines, "")
	}
	return lines
}

// filler accumulates words greedily into lines.
type filler struct {
	width  int
	ctx    LineContext
	indent string

	lines    []string
	cur      string
	curW     int
	hasToken bool // cur holds at least one word, not just a lead-in or indent
}

func newFiller(width int, ctx LineContext) *filler {
	f := &filler{
		width:  width,
		ctx:    ctx,
		indent: strings.Repeat(" ", ctx.Indent),
	}
	f.cur = ctx.leadIn()
	f.curW = textwidth.StringWidth(f.cur)
	return f
}

func (f *filler) add(word string) {
	ww := textwidth.StringWidth(word)

	switch {
	case ww > f.width-f.ctx.Indent:
		f.split(word)
	case f.fits(ww):
		if f.hasToken {
			f.cur += " "
			f.curW++
		}
		f.cur += word
		f.curW += ww
		f.hasToken = true
	default:
		f.flush()
		f.cur = f.indent + word
		f.curW = f.ctx.Indent + ww
		f.hasToken = true
	}
}

func (f *filler) fits(ww int) bool {
	sep := 0
	if f.hasToken {
		sep = 1
	}
	return f.curW+sep+ww <= f.width
}

// split hard-breaks a word that cannot fit on any line. Full chunks are
// emitted; the last chunk stays as the current line so the next word may
// join it. An unfilled lead-in takes the first chunk.
func (f *filler) split(word string) {
	if f.hasToken {
		f.flush()
	}

	rest := word
	for rest != "" {
		if f.cur == "" {
			f.cur, f.curW = f.indent, f.ctx.Indent
		}
		room := f.width - f.curW
		if r, _ := utf8.DecodeRuneInString(rest); !f.hasToken && f.curW > f.ctx.Indent && room < textwidth.CharWidth(r) {
			f.flush()
			continue
		}

		var head string
		head, rest = textwidth.Truncate(rest, room)
		f.cur += head
		f.curW += textwidth.StringWidth(head)
		f.hasToken = true
		if rest != "" {
			f.flush()
		}
	}
}

// flush emits the current line. A bare lead-in is emitted without its
// trailing space; a bare indent is dropped.
func (f *filler) flush() {
	switch {
	case f.hasToken:
		f.lines = append(f.lines, f.cur)
	case strings.TrimSpace(f.cur) != "":
		f.lines = append(f.lines, strings.TrimRight(f.cur, " "))
	}
	f.cur, f.curW, f.hasToken = "", 0, false
}
