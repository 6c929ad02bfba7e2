package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	CreateProject string `yaml:"create_project"`
	NextProject   string `yaml:"next_project"`
	PrevProject   string `yaml:"prev_project"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CreateProject: "n",
		NextProject:   "tab",
		PrevProject:   "shift+tab",
		SaveForm:      "ctrl+s",
		ShowHelp:      "?",
		Quit:          "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.CreateProject == "" {
		k.CreateProject = defaults.CreateProject
	}
	if k.NextProject == "" {
		k.NextProject = defaults.NextProject
	}
	if k.PrevProject == "" {
		k.PrevProject = defaults.PrevProject
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
