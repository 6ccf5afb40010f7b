package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// NewKeyMapWithShiftEnter creates a custom keymap that includes shift+enter
// for newlines in text fields, in addition to the default alt+enter and
// ctrl+j.
func NewKeyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	return keymap
}
