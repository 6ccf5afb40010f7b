package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/tui/state"
)

// handleHelpMode handles input on the help screen
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc", "enter", " ":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// helpContent builds the keymap cheat sheet from the active configuration
func (m Model) helpContent() string {
	km := m.config.KeyMappings

	rows := []struct {
		key  string
		desc string
	}{
		{km.PrevLane + " / " + km.NextLane, "select lane"},
		{km.PrevCard + " / " + km.NextCard, "select card"},
		{km.MoveCardLeft + " / " + km.MoveCardRight, "move card between lanes"},
		{km.AddProject, "add project"},
		{displayKey(km.ViewProject), "view project"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString("Keyboard shortcuts\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-12s %s\n", row.key, row.desc)
	}
	return b.String()
}

// displayKey makes the space binding readable in the help screen
func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
