package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tmarsh/eratos/internal/run"
)

type runViewModel struct {
	theme         theme
	bar           progress.Model
	snap          run.Snapshot
	width, height int
}

func newRunView(theme theme) screen {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)

	return &runViewModel{theme: theme, bar: bar}
}

func (m *runViewModel) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *runViewModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	if snap, ok := msg.(snapshotMsg); ok {
		m.snap = run.Snapshot(snap)
	}

	return m, nil
}

func (m *runViewModel) View() string {
	if m.width == 0 {
		return ""
	}

	logoStyle := lipgloss.NewStyle().Foreground(m.theme.Accent)
	infoStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	header := logoStyle.Render(logo)

	status := infoStyle.Render(fmt.Sprintf(
		"sieving 2^%d · phase: %s", m.snap.Power, m.snap.Status,
	))

	detail := infoStyle.Render(fmt.Sprintf(
		"crossing out multiples of %d · %d primes written",
		m.snap.CurrentPrime, m.snap.PrimesWritten,
	))

	bar := m.bar.ViewAs(m.snap.SieveFraction)

	help := infoStyle.Render("Press 'q' to quit.")

	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, header, status, bar, detail, help))
}
