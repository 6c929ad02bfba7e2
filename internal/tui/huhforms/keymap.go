package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap returns the form keymap. Enter advances and submits; esc is
// left unbound here because the modal intercepts it before the form sees it
// (the presence guard decides whether dismissal is allowed).
func CreateKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Input.Next = key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("enter", "next"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}
