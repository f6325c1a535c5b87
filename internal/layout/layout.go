// Package layout places a speech bubble next to, above or below a figure.
package layout

import (
	"fmt"
	"strings"

	"github.com/fsmiamoto/quokka-say/internal/bubble"
	"github.com/fsmiamoto/quokka-say/internal/figure"
	"github.com/fsmiamoto/quokka-say/internal/textwidth"
)

// Mode selects how the bubble is arranged relative to the figure.
type Mode int

const (
	Auto   Mode = iota // side by side when the terminal is wide enough, else below
	Top                // bubble above the figure
	Side               // always side by side
	Bottom             // bubble below the figure
)

var modeNames = map[Mode]string{
	Auto:   "auto",
	Top:    "top",
	Side:   "side",
	Bottom: "bottom",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "auto", "top", "side" and "bottom". The empty string
// is Auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "top":
		return Top, nil
	case "side":
		return Side, nil
	case "bottom":
		return Bottom, nil
	}
	return Auto, fmt.Errorf("display mode must be \"auto\", \"top\", \"side\", or \"bottom\", got %q", s)
}

// Arrow joins the figure to the bubble in the horizontal layout.
const Arrow = "==> "

const (
	// slack is the spare room required beyond figure plus bubble before
	// the horizontal layout is chosen.
	slack = 10

	minStartRow = 5
	maxStartRow = 15

	// arrowGap is the width of Arrow; non-arrow rows are padded by the
	// same amount so the bubble stays aligned.
	arrowGap = 4
)

var (
	downArrow = []string{"  ||  ", `  \/  `}
	upArrow   = []string{`  /\  `, "  ||  "}
)

// Threshold is the narrowest terminal that gets the horizontal layout.
func Threshold(fig figure.Figure, b bubble.Bubble) int {
	return fig.MaxWidth() + b.Width() + slack
}

// Compose picks the horizontal layout when terminalWidth is at least
// Threshold and the vertical one otherwise.
func Compose(fig figure.Figure, b bubble.Bubble, terminalWidth int) []string {
	if terminalWidth >= Threshold(fig, b) {
		return Horizontal(fig, b)
	}
	return Vertical(fig, b)
}

// ComposeMode is Compose with an explicit display mode.
func ComposeMode(fig figure.Figure, b bubble.Bubble, terminalWidth int, mode Mode) []string {
	switch mode {
	case Side:
		return Horizontal(fig, b)
	case Bottom:
		return Vertical(fig, b)
	case Top:
		return Stacked(fig, b)
	default:
		return Compose(fig, b, terminalWidth)
	}
}

// Horizontal draws the bubble to the right of the figure, roughly
// centred on it but starting between rows 5 and 15. Rows beyond the
// figure are added when the bubble would otherwise be cut.
func Horizontal(fig figure.Figure, b bubble.Bubble) []string {
	fw := fig.MaxWidth()
	bh := b.Height()
	start := min(max(fig.Height()/2-bh/2, minStartRow), maxStartRow)
	arrowRow := start + bh/2

	rows := max(fig.Height(), start+bh)
	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		line := fig.Line(i)
		j := i - start
		switch {
		case j < 0 || j >= bh:
			out = append(out, line)
		case i == arrowRow:
			out = append(out, textwidth.PadToWidth(line, fw+2)+Arrow+b.Lines[j])
		default:
			out = append(out, textwidth.PadToWidth(line, fw+2+arrowGap)+b.Lines[j])
		}
	}
	return out
}

// Vertical draws the figure, a downward arrow, then the bubble.
func Vertical(fig figure.Figure, b bubble.Bubble) []string {
	out := make([]string, 0, fig.Height()+len(downArrow)+b.Height())
	out = append(out, fig.Lines()...)
	out = append(out, downArrow...)
	return append(out, b.Lines...)
}

// Stacked draws the bubble, an upward arrow, then the figure.
func Stacked(fig figure.Figure, b bubble.Bubble) []string {
	out := make([]string, 0, fig.Height()+len(upArrow)+b.Height())
	out = append(out, b.Lines...)
	out = append(out, upArrow...)
	return append(out, fig.Lines()...)
}
