package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/teolivas/tablero/internal/config"
	"github.com/teolivas/tablero/internal/models"
	projectservice "github.com/teolivas/tablero/internal/services/project"
	"github.com/teolivas/tablero/internal/tui/huhforms"
	"github.com/teolivas/tablero/internal/tui/state"
)

// timeoutDB bounds every store call made from the TUI.
const timeoutDB = 30 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx      context.Context
	Projects projectservice.Service
	Config   *config.Config

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	SubmissionState   *state.SubmissionState
	NotificationState *state.NotificationState
}

// InitialModel creates and initializes the TUI model with data from the store.
// When no projects exist yet the create-project modal opens immediately and,
// per the presence guard, cannot be dismissed until one is created.
func InitialModel(ctx context.Context, svc projectservice.Service, cfg *config.Config) Model {
	loadCtx, cancel := context.WithTimeout(ctx, timeoutDB)
	defer cancel()

	projects, err := svc.GetAllProjects(loadCtx)
	if err != nil {
		slog.Error("Error loading projects", "error", err)
		projects = []*models.Project{}
	}

	m := Model{
		Ctx:               ctx,
		Projects:          svc,
		Config:            cfg,
		AppState:          state.NewAppState(projects),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		SubmissionState:   state.NewSubmissionState(),
		NotificationState: state.NewNotificationState(),
	}

	if !m.AppState.HasProjects() {
		m.openProjectForm()
	}

	return m
}

// Init initializes the Bubble Tea application.
// Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	if form := m.FormState.ProjectForm(); form != nil {
		return form.Init()
	}
	return nil
}

// DbContext returns a context with the standard store timeout applied.
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}

// openProjectForm builds a fresh create-project form bound to the form
// state and switches to ProjectFormMode. Existing field values survive,
// which is what keeps user input around when a conflict reopens the form.
func (m *Model) openProjectForm() {
	form := huhforms.CreateProjectForm(
		m.FormState.ProjectNameRef(),
		m.FormState.ProjectSubdomainRef(),
	).WithTheme(huhforms.CreateTableroTheme(m.Config.ColorScheme))

	m.FormState.SetProjectForm(form)
	m.UiState.SetMode(state.ProjectFormMode)
}

// reloadProjects refreshes the project list from the store.
func (m *Model) reloadProjects() {
	ctx, cancel := m.DbContext()
	defer cancel()

	projects, err := m.Projects.GetAllProjects(ctx)
	if err != nil {
		slog.Error("Error reloading projects", "error", err)
		return
	}
	m.AppState.SetProjects(projects)
}
