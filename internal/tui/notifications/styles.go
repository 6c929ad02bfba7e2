package notifications

import (
	"github.com/teolivas/tablero/internal/tui/state"
	"github.com/teolivas/tablero/internal/tui/theme"
)

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func levelStyle(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{
			icon:             "⚠",
			title:            "Warning",
			foreground:       theme.WarningFg,
			background:       theme.WarningBg,
			borderForeground: theme.WarningBg,
		}
	case state.LevelError:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorBg,
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       theme.InfoFg,
			background:       theme.InfoBg,
			borderForeground: theme.InfoBg,
		}
	}
}
