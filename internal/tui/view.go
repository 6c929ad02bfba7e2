package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/teolivas/tablero/internal/tui/layers"
	"github.com/teolivas/tablero/internal/tui/notifications"
	"github.com/teolivas/tablero/internal/tui/state"
	"github.com/teolivas/tablero/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Layer-based rendering: the dashboard is always the base, with modal
	// overlays and toasts stacked on top.
	baseView := m.renderDashboard()

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(baseView),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		modalLayer = m.renderProjectFormLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		layerStack = append(layerStack, modalLayer)
	}

	layerStack = append(layerStack,
		m.NotificationState.GetLayers(notifications.Render)...)

	canvas := lipgloss.NewCanvas(layerStack...)
	view.Content = canvas.Render()
	return view
}

// renderProjectFormLayer renders the create-project modal centered over
// the dashboard: the form itself, any submission-time field error inline
// beneath it, and a progress line while the store call is in flight.
func (m Model) renderProjectFormLayer() *lipgloss.Layer {
	form := m.FormState.ProjectForm()
	if form == nil {
		return nil
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Create)).
		Bold(true).
		Render("New Project")

	sections := []string{title, form.View()}

	if _, message := m.FormState.FieldError(); message != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Delete)).
			Render("✕ "+message))
	}

	if m.SubmissionState.IsSubmitting() {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("Creating project…"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
