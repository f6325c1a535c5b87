// Package markdown flattens Markdown into plain text for the bubble.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// renderWidth is wide enough that glamour never breaks a paragraph; the
// bubble does its own wrapping afterwards.
const renderWidth = 1024

// ToPlain renders text with glamour's plain-terminal style and returns the
// result without escape sequences, common indentation or trailing spaces.
func ToPlain(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return tidy(ansi.Strip(out)), nil
}

// tidy trims trailing spaces, removes the indentation shared by all
// non-blank lines, and drops leading and trailing blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		lines[i] = line
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent == -1 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}

	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
