// Package quokka renders a message in a speech bubble beside the quokka.
//
// The pipeline is sanitize, wrap, frame, compose. Render reports failures
// as errors; Format never fails and falls back to the bare figure with a
// short diagnostic.
package quokka

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsmiamoto/quokka-say/internal/bubble"
	"github.com/fsmiamoto/quokka-say/internal/figure"
	"github.com/fsmiamoto/quokka-say/internal/layout"
	"github.com/fsmiamoto/quokka-say/internal/sanitize"
	"github.com/fsmiamoto/quokka-say/internal/termsize"
	"github.com/fsmiamoto/quokka-say/internal/wrap"
)

// ErrEmptyFigure is returned when the formatter has no art to draw.
var ErrEmptyFigure = errors.New("figure is empty")

// maxDiagnostic is the number of runes of an error kept in the fallback.
const maxDiagnostic = 50

// FormatError records the pipeline stage that failed.
type FormatError struct {
	Stage string
	Err   error
}

func (e *FormatError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *FormatError) Unwrap() error { return e.Err }

// Formatter renders messages next to a fixed figure. It holds no mutable
// state and is safe for concurrent use.
type Formatter struct {
	fig       figure.Figure
	wrapWidth int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithWrapWidth sets the column budget of message lines.
func WithWrapWidth(n int) Option {
	return func(f *Formatter) { f.wrapWidth = n }
}

// New returns a Formatter drawing fig.
func New(fig figure.Figure, opts ...Option) *Formatter {
	f := &Formatter{fig: fig, wrapWidth: wrap.DefaultWidth}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Figure returns the art the formatter draws.
func (f *Formatter) Figure() figure.Figure { return f.fig }

// Render lays out text for a terminal of the given width.
func (f *Formatter) Render(text string, width int, mode layout.Mode) (out string, err error) {
	if f.fig.Empty() {
		return "", &FormatError{Stage: "compose", Err: ErrEmptyFigure}
	}

	stage := "sanitize"
	defer func() {
		if r := recover(); r != nil {
			out, err = "", &FormatError{Stage: stage, Err: fmt.Errorf("%v", r)}
		}
	}()

	clean := sanitize.Sanitize(text)

	stage = "wrap"
	lines := wrap.Wrap(clean, f.wrapWidth)
	if len(lines) > bubble.MaxContentLines {
		lines = lines[:bubble.MaxContentLines]
	}

	stage = "bubble"
	b := bubble.Build(lines)

	stage = "compose"
	rows := layout.ComposeMode(f.fig, b, width, mode)
	return strings.Join(rows, "\n"), nil
}

// Format is Render with errors replaced by Fallback. The result is never
// empty.
func (f *Formatter) Format(text string, width int, mode layout.Mode) string {
	out, err := f.Render(text, width, mode)
	if err != nil {
		return Fallback(f.fig, err)
	}
	return out
}

// Fallback is the output used when rendering fails: the figure followed
// by the first 50 runes of the error.
func Fallback(fig figure.Figure, err error) string {
	msg := "Unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	if r := []rune(msg); len(r) > maxDiagnostic {
		msg = string(r[:maxDiagnostic])
	}
	return fig.String() + "\n\nError processing message: " + msg + "..."
}

// FormatMessage renders text beside the built-in quokka, sized for the
// terminal attached to stdout.
func FormatMessage(text string) string {
	return New(figure.Quokka()).Format(text, termsize.Width(os.Stdout.Fd()), layout.Auto)
}
