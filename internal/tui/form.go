package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/teolivas/tablero/internal/tui/state"
)

// projectFormValues holds the extracted values from a completed project form
type projectFormValues struct {
	name      string
	subdomain string
}

// extractProjectFormValues extracts and returns form values from the
// project form. Since forms update pointers in place, we can just read
// from form state.
func (m Model) extractProjectFormValues() projectFormValues {
	return projectFormValues{
		name:      strings.TrimSpace(m.FormState.ProjectName()),
		subdomain: strings.TrimSpace(m.FormState.ProjectSubdomain()),
	}
}

// updateProjectForm handles all messages when in ProjectFormMode.
// This is separated out because forms need to receive ALL messages, not
// just KeyMsg.
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Intercept dismissal before the form sees it
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.dismissProjectForm()
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	// The submit control is disabled while a submission is in flight:
	// drop everything until the outcome message arrives.
	if m.SubmissionState.IsSubmitting() {
		return m, nil
	}

	form := m.FormState.ProjectForm()
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Typing clears any stale submission-time field error
	if _, ok := msg.(tea.KeyMsg); ok {
		m.FormState.ClearFieldError()
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.SetProjectForm(f)
		form = f
	}

	if form.State == huh.StateCompleted {
		return m.submitProjectForm()
	}

	return m, cmd
}

// dismissProjectForm handles the modal's dismiss affordance (esc).
// Presence guard: a user with zero projects cannot dismiss the modal
// without creating one. No message is shown; it simply does not close.
func (m Model) dismissProjectForm() (tea.Model, tea.Cmd) {
	if !m.AppState.HasProjects() {
		return m, nil
	}
	if m.SubmissionState.IsSubmitting() {
		return m, nil
	}

	m.FormState.ClearProjectForm()
	m.UiState.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

// submitProjectForm starts the submission workflow for the completed form.
// The machine refuses re-entry while a submission is already in flight.
func (m Model) submitProjectForm() (tea.Model, tea.Cmd) {
	if !m.SubmissionState.Begin() {
		return m, nil
	}

	values := m.extractProjectFormValues()
	m.FormState.ClearFieldError()
	m.NotificationState.Upsert(ToastCreateProject, state.LevelInfo, "Creating project…")

	return m, m.createProjectCmd(values)
}
