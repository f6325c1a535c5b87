// Package bubble frames wrapped lines in a speech bubble.
package bubble

import (
	"strings"

	"github.com/fsmiamoto/quokka-say/internal/textwidth"
)

const (
	// MinInterior keeps even a one-character message visibly framed.
	MinInterior = 10
	// MaxInterior bounds the bubble width regardless of content.
	MaxInterior = 60
	// MaxHeight is the tallest bubble, borders included.
	MaxHeight = 15
	// MaxContentLines is the number of message lines a bubble can hold.
	// Extra lines are dropped.
	MaxContentLines = MaxHeight - 2
)

// Box-drawing glyphs. All are single width.
const (
	topLeft     = "┌"
	topRight    = "┐"
	bottomLeft  = "└"
	bottomRight = "┘"
	horizontal  = "─"
	vertical    = "│"
)

// Bubble is a rectangular block of framed lines.
type Bubble struct {
	Lines    []string
	Interior int // content width, excluding the "│ " and " │" frame
}

// Width is the display width shared by every line of the bubble.
func (b Bubble) Width() int { return b.Interior + 4 }

// Height is the number of lines, borders included.
func (b Bubble) Height() int { return len(b.Lines) }

// Build frames lines. The interior is as wide as the widest line,
// clamped to [MinInterior, MaxInterior]; lines past MaxContentLines are
// dropped and lines wider than the interior are cut.
func Build(lines []string) Bubble {
	if len(lines) > MaxContentLines {
		lines = lines[:MaxContentLines]
	}

	interior := MinInterior
	for _, line := range lines {
		if w := textwidth.StringWidth(line); w > interior {
			interior = w
		}
	}
	if interior > MaxInterior {
		interior = MaxInterior
	}

	rule := strings.Repeat(horizontal, interior+2)
	out := make([]string, 0, len(lines)+2)
	out = append(out, topLeft+rule+topRight)
	for _, line := range lines {
		if textwidth.StringWidth(line) > interior {
			line, _ = textwidth.Truncate(line, interior)
		}
		out = append(out, vertical+" "+textwidth.PadToWidth(line, interior)+" "+vertical)
	}
	out = append(out, bottomLeft+rule+bottomRight)

	return Bubble{Lines: out, Interior: interior}
}
