package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/teolivas/tablero/internal/models"
	projectservice "github.com/teolivas/tablero/internal/services/project"
	"github.com/teolivas/tablero/internal/tui/state"
)

// ToastCreateProject is the fixed notification key for the create-project
// workflow. The loading toast and its success/failure replacement share
// this key so later notifications replace earlier ones instead of stacking.
const ToastCreateProject = "create-project"

// msgCreateFailed is the generic failure toast for errors that carry no
// field to attach to.
const msgCreateFailed = "Could not create project"

// projectCreatedMsg is delivered when the store returns a created project.
type projectCreatedMsg struct {
	project *models.Project
}

// projectCreateFailedMsg is delivered when the store call fails.
type projectCreateFailedMsg struct {
	err error
}

// createProjectCmd invokes the store mutation asynchronously. The workflow
// suspends here and resumes through exactly one of the two outcome messages.
func (m Model) createProjectCmd(values projectFormValues) tea.Cmd {
	svc := m.Projects
	parent := m.Ctx

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeoutDB)
		defer cancel()

		project, err := svc.CreateProject(ctx, projectservice.CreateProjectRequest{
			Name:      values.name,
			Subdomain: values.subdomain,
		})
		if err != nil {
			return projectCreateFailedMsg{err: err}
		}
		return projectCreatedMsg{project: project}
	}
}

// handleProjectCreated finishes a successful submission: replace the
// loading toast with a success toast, navigate to the created project's
// dashboard using the subdomain echoed by the store, and close the modal.
//
// A "success" without an identifier is treated as a failure rather than
// silently closing the modal.
func (m Model) handleProjectCreated(msg projectCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.project == nil || msg.project.ID == 0 {
		slog.Error("Project creation returned no identifier")
		m.SubmissionState.Fail()
		m.SubmissionState.Acknowledge()
		m.NotificationState.Upsert(ToastCreateProject, state.LevelError, msgCreateFailed)
		m.FormState.ClearProjectForm()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	m.SubmissionState.Succeed()
	m.SubmissionState.Acknowledge()

	m.NotificationState.Upsert(ToastCreateProject, state.LevelInfo, "Project created")

	m.reloadProjects()
	if !m.AppState.NavigateToSubdomain(msg.project.Subdomain) {
		slog.Error("Created project missing from reload", "subdomain", msg.project.Subdomain)
	}

	m.FormState.ClearProjectForm()
	m.UiState.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

// handleProjectCreateFailed classifies the failure and applies the
// recovery policy: field-shaped errors keep the modal open for correction
// with an inline message and the loading toast removed; anything else
// shows a generic failure toast and force-closes the modal.
func (m Model) handleProjectCreateFailed(msg projectCreateFailedMsg) (tea.Model, tea.Cmd) {
	m.SubmissionState.Fail()
	m.SubmissionState.Acknowledge()

	kind, fieldErr := projectservice.Classify(msg.err)
	switch kind {
	case projectservice.KindConflict:
		m.NotificationState.Remove(ToastCreateProject)
		m.FormState.SetFieldError("subdomain", projectservice.MsgSubdomainTaken)
		m.openProjectForm()
		return m, m.FormState.ProjectForm().Init()

	case projectservice.KindField:
		m.NotificationState.Remove(ToastCreateProject)
		m.FormState.SetFieldError(fieldErr.Field, fieldErr.Message)
		m.openProjectForm()
		return m, m.FormState.ProjectForm().Init()

	default:
		slog.Error("Error creating project", "error", msg.err)
		m.NotificationState.Upsert(ToastCreateProject, state.LevelError, msgCreateFailed)
		m.FormState.ClearProjectForm()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
}
