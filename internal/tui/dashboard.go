package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/teolivas/tablero/internal/models"
	"github.com/teolivas/tablero/internal/tui/theme"
)

// Cache glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderDashboard renders the base view: a tab bar of projects and the
// current project's dashboard panel.
func (m Model) renderDashboard() string {
	width := m.UiState.Width()

	project := m.AppState.CurrentProject()
	if project == nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(1, 2).
			Render("No projects yet.")
	}

	tabs := m.renderProjectTabs()
	panel := m.renderProjectPanel(project, width)
	status := m.renderStatusLine()

	return lipgloss.JoinVertical(lipgloss.Left, tabs, panel, status)
}

// renderProjectTabs renders one tab per project with the current one
// highlighted.
func (m Model) renderProjectTabs() string {
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Padding(0, 1)
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	tabs := make([]string, 0, len(m.AppState.Projects()))
	for i, p := range m.AppState.Projects() {
		if i == m.AppState.SelectedIndex() {
			tabs = append(tabs, selectedStyle.Render(p.Name))
		} else {
			tabs = append(tabs, normalStyle.Render(p.Name))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderProjectPanel renders the dashboard body for a project.
func (m Model) renderProjectPanel(project *models.Project, width int) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Render(project.Name)

	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("%s · created %s",
			models.DashboardRoute(project.Subdomain),
			project.CreatedAt.Format("Jan 2, 2006")))

	body := renderDashboardBody(project, max(width-8, 20))

	content := lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PanelBorder)).
		Padding(1, 2).
		Width(max(width-4, 30)).
		Render(content)
}

// renderDashboardBody renders the project's getting-started page through
// glamour. Falls back to plain text if the renderer can't be built.
func renderDashboardBody(project *models.Project, width int) string {
	markdown := fmt.Sprintf(`Your project is live at **%s.tablero.dev**.

- Press `+"`tab`"+` to switch between projects
- Press `+"`n`"+` to create another project
- Press `+"`?`"+` for all key bindings
`, project.Subdomain)

	renderer, err := getRenderer(width)
	if err == nil {
		if rendered, err := renderer.Render(markdown); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return markdown
}

// renderStatusLine renders the route indicator at the bottom of the view.
func (m Model) renderStatusLine() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1).
		Render(string(m.AppState.Route()))
}
