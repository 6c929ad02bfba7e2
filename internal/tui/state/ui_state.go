package state

// Mode represents the current interaction mode of the application
type Mode int

const (
	// NormalMode is the default dashboard view
	NormalMode Mode = iota
	// ProjectFormMode is the create-project modal
	ProjectFormMode
	// HelpMode shows the key binding overlay
	HelpMode
)

// UIState manages view-level state: the current mode and window geometry.
type UIState struct {
	mode   Mode
	width  int
	height int
}

// NewUIState creates a UIState in NormalMode with no known window size.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the current window width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current window height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the window dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
