package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/teolivas/tablero/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and
// updates the model. This implements the "Update" part of the
// Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	// Submission outcomes are handled regardless of mode: the store call
	// may resolve after the user has been forced out of the form.
	case projectCreatedMsg:
		return m.handleProjectCreated(msg)

	case projectCreateFailedMsg:
		return m.handleProjectCreateFailed(msg)
	}

	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		// Forms need ALL messages, not just KeyMsg
		return m.updateProjectForm(msg)

	case state.HelpMode:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleHelpKeys(keyMsg)
		}

	default:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleNormalKeys(keyMsg)
		}
	}

	return m, nil
}
