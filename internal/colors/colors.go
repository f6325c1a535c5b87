// Package colors decorates rendered output with ANSI colours.
//
// Decoration only adds escape sequences: stripping them gives back the
// input exactly, and the line count never changes.
package colors

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is a named terminal colour.
type Color struct {
	Name string
	code lipgloss.Color
}

var palette = map[string]lipgloss.Color{
	"red":     lipgloss.Color("1"),
	"orange":  lipgloss.Color("208"),
	"yellow":  lipgloss.Color("3"),
	"green":   lipgloss.Color("2"),
	"blue":    lipgloss.Color("4"),
	"indigo":  lipgloss.Color("93"),
	"violet":  lipgloss.Color("165"),
	"cyan":    lipgloss.Color("6"),
	"magenta": lipgloss.Color("5"),
	"white":   lipgloss.Color("7"),
	"black":   lipgloss.Color("0"),
}

// rainbow is ROYGBIV.
var rainbow = []string{"red", "orange", "yellow", "green", "blue", "indigo", "violet"}

// Names lists the accepted colour names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor looks up a colour by name. The empty string is the zero
// Color, meaning no colour.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Color{}, nil
	}
	code, ok := palette[name]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return Color{Name: name, code: code}, nil
}

// RainbowMode selects how rainbow colours are spread over the text.
type RainbowMode int

const (
	RainbowOff  RainbowMode = iota
	RainbowChar             // a new colour for every visible character
	RainbowLine             // the spectrum spread over the lines
)

func (m RainbowMode) String() string {
	switch m {
	case RainbowChar:
		return "char"
	case RainbowLine:
		return "line"
	default:
		return "off"
	}
}

// ParseRainbow accepts "char" (or "true") and "line"; "", "off" and
// "false" disable the rainbow.
func ParseRainbow(s string) (RainbowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "false":
		return RainbowOff, nil
	case "char", "true":
		return RainbowChar, nil
	case "line":
		return RainbowLine, nil
	}
	return RainbowOff, fmt.Errorf("rainbow mode must be \"char\" or \"line\", got %q", s)
}

// Painter applies colours through a lipgloss renderer pinned to one
// colour profile.
type Painter struct {
	r *lipgloss.Renderer
}

// New returns a Painter for the given profile. termenv.Ascii disables
// colour altogether.
func New(profile termenv.Profile) *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return &Painter{r: r}
}

// Options combines the decorations requested by the user. A rainbow takes
// precedence over a single colour.
type Options struct {
	Color   Color
	Rainbow RainbowMode
}

// Decorate applies opts to text.
func (p *Painter) Decorate(text string, opts Options) string {
	switch {
	case opts.Rainbow != RainbowOff:
		return p.Rainbow(text, opts.Rainbow)
	case opts.Color.Name != "":
		return p.Colorize(text, opts.Color)
	default:
		return text
	}
}

// Colorize paints every line of text in c.
func (p *Painter) Colorize(text string, c Color) string {
	if c.Name == "" {
		return text
	}
	style := p.r.NewStyle().Foreground(c.code)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = p.paint(style, line)
	}
	return strings.Join(lines, "\n")
}

// Rainbow paints text in the colours of the rainbow.
func (p *Painter) Rainbow(text string, mode RainbowMode) string {
	switch mode {
	case RainbowChar:
		return p.rainbowByChar(text)
	case RainbowLine:
		return p.rainbowByLine(text)
	default:
		return text
	}
}

func (p *Painter) rainbowByChar(text string) string {
	styles := p.spectrum()
	var b strings.Builder
	n := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(styles[n%len(styles)].Render(string(r)))
		n++
	}
	return b.String()
}

func (p *Painter) rainbowByLine(text string) string {
	styles := p.spectrum()
	lines := strings.Split(text, "\n")
	perColor := (len(lines) + len(styles) - 1) / len(styles)
	for i, line := range lines {
		lines[i] = p.paint(styles[i/perColor], line)
	}
	return strings.Join(lines, "\n")
}

func (p *Painter) spectrum() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(rainbow))
	for i, name := range rainbow {
		styles[i] = p.r.NewStyle().Foreground(palette[name])
	}
	return styles
}

// paint styles a single line. Empty lines are left alone so no stray
// escape codes end up on them.
func (p *Painter) paint(style lipgloss.Style, line string) string {
	if line == "" {
		return line
	}
	return style.Render(line)
}
