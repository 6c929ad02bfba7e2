package state

import "github.com/teolivas/tablero/internal/models"

// AppState holds the loaded projects and the current navigation target.
// Owned exclusively by the model instance; no cross-instance sharing.
type AppState struct {
	projects        []*models.Project
	selectedProject int
	route           models.Route
}

// NewAppState creates an AppState over the given projects. The first
// project (if any) becomes current and sets the route.
func NewAppState(projects []*models.Project) *AppState {
	s := &AppState{
		projects: projects,
		route:    models.HomeRoute,
	}
	if len(projects) > 0 {
		s.route = models.DashboardRoute(projects[0].Subdomain)
	}
	return s
}

// Projects returns all loaded projects.
func (s *AppState) Projects() []*models.Project {
	return s.projects
}

// SetProjects replaces the loaded projects, clamping the selection.
func (s *AppState) SetProjects(projects []*models.Project) {
	s.projects = projects
	if s.selectedProject >= len(projects) {
		s.selectedProject = 0
	}
}

// HasProjects reports whether at least one project exists.
// The presence guard keys off this.
func (s *AppState) HasProjects() bool {
	return len(s.projects) > 0
}

// CurrentProject returns the selected project, or nil when none exist.
func (s *AppState) CurrentProject() *models.Project {
	if len(s.projects) == 0 {
		return nil
	}
	if s.selectedProject >= len(s.projects) {
		return nil
	}
	return s.projects[s.selectedProject]
}

// SelectedIndex returns the index of the current project.
func (s *AppState) SelectedIndex() int {
	return s.selectedProject
}

// SelectProject moves the selection to index i and updates the route.
func (s *AppState) SelectProject(i int) {
	if i < 0 || i >= len(s.projects) {
		return
	}
	s.selectedProject = i
	s.route = models.DashboardRoute(s.projects[i].Subdomain)
}

// SelectNextProject cycles the selection forward.
func (s *AppState) SelectNextProject() {
	if len(s.projects) == 0 {
		return
	}
	s.SelectProject((s.selectedProject + 1) % len(s.projects))
}

// SelectPrevProject cycles the selection backward.
func (s *AppState) SelectPrevProject() {
	if len(s.projects) == 0 {
		return
	}
	s.SelectProject((s.selectedProject - 1 + len(s.projects)) % len(s.projects))
}

// NavigateToSubdomain selects the project with the given subdomain.
// Used after creation, with the subdomain echoed back by the store.
// Returns false when no loaded project matches.
func (s *AppState) NavigateToSubdomain(subdomain string) bool {
	for i, p := range s.projects {
		if p.Subdomain == subdomain {
			s.SelectProject(i)
			return true
		}
	}
	return false
}

// Route returns the current navigation target.
func (s *AppState) Route() models.Route {
	return s.route
}
