package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/teolivas/tablero/internal/tui/state"
)

// Render renders a notification banner styled for its level.
func Render(n state.Notification) string {
	style := levelStyle(n.Level)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	if n.Level == state.LevelInfo {
		headerStyle = headerStyle.Background(lipgloss.Color(style.background))
	}

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(n.Message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}
