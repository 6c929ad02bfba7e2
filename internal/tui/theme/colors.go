package theme

import "github.com/teolivas/tablero/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight   string
	Subtle      string
	Normal      string
	Create      string
	Delete      string
	Title       string
	Background  string
	PanelBorder string
	InfoFg      string
	InfoBg      string
	WarningFg   string
	WarningBg   string
	ErrorFg     string
	ErrorBg     string
)

func init() {
	// Sensible colors before config is loaded, so tests and early renders
	// never style with empty values.
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	Title = colors.Title
	Background = colors.Background
	PanelBorder = colors.PanelBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
