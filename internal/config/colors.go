package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Delete string `yaml:"delete"` // Red - destructive actions, field errors

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Chrome
	Background  string `yaml:"background"`
	PanelBorder string `yaml:"panel_border"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent:      "#7AA2F7",
		Create:      "#9ECE6A",
		Delete:      "#F7768E",
		Title:       "#C0CAF5",
		Subtle:      "#565F89",
		Normal:      "#A9B1D6",
		Background:  "#1A1B26",
		PanelBorder: "#3B4261",
		InfoFg:      "#C0CAF5",
		InfoBg:      "#283457",
		WarningFg:   "#E0AF68",
		WarningBg:   "#3B3052",
		ErrorFg:     "#F7768E",
		ErrorBg:     "#42283B",
	}
}

// ApplyDefaults fills in missing color values with defaults
func (c *ColorScheme) ApplyDefaults() {
	defaults := DefaultColorScheme()

	if c.Accent == "" {
		c.Accent = defaults.Accent
	}
	if c.Create == "" {
		c.Create = defaults.Create
	}
	if c.Delete == "" {
		c.Delete = defaults.Delete
	}
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Subtle == "" {
		c.Subtle = defaults.Subtle
	}
	if c.Normal == "" {
		c.Normal = defaults.Normal
	}
	if c.Background == "" {
		c.Background = defaults.Background
	}
	if c.PanelBorder == "" {
		c.PanelBorder = defaults.PanelBorder
	}
	if c.InfoFg == "" {
		c.InfoFg = defaults.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = defaults.InfoBg
	}
	if c.WarningFg == "" {
		c.WarningFg = defaults.WarningFg
	}
	if c.WarningBg == "" {
		c.WarningBg = defaults.WarningBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = defaults.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = defaults.ErrorBg
	}
}
