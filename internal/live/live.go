// Package live shows the quokka full-screen and re-lays it out whenever
// the terminal is resized.
package live

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fsmiamoto/quokka-say/internal/layout"
	"github.com/fsmiamoto/quokka-say/internal/quokka"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("242"))

const statusText = "q quit"

// Model is the Bubble Tea model for the live view.
type Model struct {
	formatter *quokka.Formatter
	text      string
	mode      layout.Mode
	decorate  func(string) string

	width  int
	height int
}

// New creates a live model. decorate may be nil.
func New(f *quokka.Formatter, text string, mode layout.Mode, decorate func(string) string) *Model {
	return &Model{
		formatter: f,
		text:      text,
		mode:      mode,
		decorate:  decorate,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	lines := strings.Split(m.formatter.Format(m.text, m.width, m.mode), "\n")
	// Keep the last row for the status line.
	if room := m.height - 1; room > 0 && len(lines) > room {
		lines = lines[:room]
	}
	body := strings.Join(lines, "\n")
	if m.decorate != nil {
		body = m.decorate(body)
	}
	return body + "\n" + statusStyle.Render(statusText)
}

// Run shows m on the alternate screen until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
