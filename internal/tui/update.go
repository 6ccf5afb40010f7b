package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// The form needs every message, not just key presses
	if m.uiState.Mode() == state.ProjectFormMode {
		return m.handleFormMode(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(keyMsg)
	case state.InvalidInputMode:
		return m.handleInvalidInputMode(keyMsg)
	case state.DetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	}

	return m, nil
}
