package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/teolivas/tablero/internal/tui/layers"
	"github.com/teolivas/tablero/internal/tui/theme"
)

// renderHelpLayer renders the key binding overlay centered on screen.
func (m Model) renderHelpLayer() *lipgloss.Layer {
	keys := m.Config.KeyMappings

	bindings := []struct {
		key  string
		desc string
	}{
		{keys.CreateProject, "create project"},
		{keys.NextProject, "next project"},
		{keys.PrevProject, "previous project"},
		{keys.ShowHelp, "toggle help"},
		{keys.Quit, "quit"},
		{"esc", "dismiss modal"},
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	lines := make([]string, 0, len(bindings)+2)
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Render("Key Bindings"), "")

	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%s%s",
			keyStyle.Render(b.key), descStyle.Render(b.desc)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
