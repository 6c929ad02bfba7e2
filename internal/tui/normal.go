package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/teolivas/tablero/internal/tui/state"
)

// handleNormalKeys handles keyboard input on the dashboard.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings

	switch msg.String() {
	case keys.Quit, "ctrl+c":
		return m, tea.Quit

	case keys.CreateProject:
		m.NotificationState.Clear()
		m.openProjectForm()
		return m, m.FormState.ProjectForm().Init()

	case keys.NextProject:
		m.AppState.SelectNextProject()
		return m, nil

	case keys.PrevProject:
		m.AppState.SelectPrevProject()
		return m, nil

	case keys.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	}

	return m, nil
}

// handleHelpKeys closes the help overlay on any dismissal key.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.Config.KeyMappings.ShowHelp:
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
