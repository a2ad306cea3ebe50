package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tmarsh/eratos/internal/run"
)

type doneViewModel struct {
	theme         theme
	snap          run.Snapshot
	width, height int
}

func newDoneView(theme theme) screen {
	return &doneViewModel{theme: theme}
}

func (m *doneViewModel) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *doneViewModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	if snap, ok := msg.(snapshotMsg); ok {
		m.snap = run.Snapshot(snap)
	}

	return m, nil
}

func (m *doneViewModel) View() string {
	if m.width == 0 {
		return ""
	}

	infoStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	var headline string
	if m.snap.Err != nil {
		headline = lipgloss.NewStyle().Foreground(m.theme.Bad).
			Render(fmt.Sprintf("Run failed: %v", m.snap.Err))
	} else {
		headline = lipgloss.NewStyle().Foreground(m.theme.Good).
			Render(fmt.Sprintf(
				"Found %d primes below 2^%d in %s",
				m.snap.PrimesWritten, m.snap.Power,
				m.snap.Elapsed.Round(time.Millisecond),
			))
	}

	path := infoStyle.Render("Written to " + m.snap.OutputPath)
	help := infoStyle.Render("Press 'q' to quit.")

	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, headline, path, help))
}
