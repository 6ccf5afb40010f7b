package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/tui/state"
)

// handleDetailMode handles input on the read-only project detail overlay
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ViewProject, m.config.KeyMappings.Quit, "esc", "enter":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}
