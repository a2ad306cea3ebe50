package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tmarsh/eratos/internal/run"
)

const logo = `
                    _
  ___ _ __ __ _  __| |_ ___  ___
 / _ \ '__/ _` + "`" + ` |/ _` + "`" + ` | __/ _ \/ __|
|  __/ |  | (_| | (_| | || (_) \__ \
 \___|_|   \__,_|\__,_|\__\___/|___/
`

// Start runs the interactive front-end for one sieve run and blocks until
// the user quits.
func Start(session *run.Session) error {
	p := tea.NewProgram(newModel(session), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

/////////////// Private ///////////////

// snapshotMsg carries the session state sampled on each tick.
type snapshotMsg run.Snapshot

// doneMsg is delivered once when the session's Execute returns.
type doneMsg struct{ err error }

type tickMsg time.Time

type model struct {
	session       *run.Session
	screens       map[viewState]screen
	activeState   viewState
	theme         theme
	finished      bool
	width, height int
}

func newModel(session *run.Session) model {
	theme := newTheme()

	screens := map[viewState]screen{
		runState:  newRunView(theme),
		doneState: newDoneView(theme),
	}

	return model{
		session:     session,
		theme:       theme,
		screens:     screens,
		activeState: runState,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.executeSession(), tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var currScreen screen

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for i := range m.screens {
			m.screens[i].SetSize(m.width, m.height)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		if m.finished {
			return m, nil
		}
		snap := m.session.Snapshot()
		currScreen, _ = m.screens[m.activeState].Update(snapshotMsg(snap))
		m.screens[m.activeState] = currScreen
		return m, tick()
	case doneMsg:
		m.finished = true
		m.activeState = doneState
		snap := m.session.Snapshot()
		currScreen, _ = m.screens[doneState].Update(snapshotMsg(snap))
		m.screens[doneState] = currScreen
		return m, nil
	}

	currScreen, cmd = m.screens[m.activeState].Update(msg)
	m.screens[m.activeState] = currScreen

	return m, cmd
}

func (m model) View() string {
	screenContent := m.screens[m.activeState].View()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screenContent)
}

func (m model) executeSession() tea.Cmd {
	return func() tea.Msg {
		return doneMsg{err: m.session.Execute()}
	}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
