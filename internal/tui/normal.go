package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddProject:
		return m.openProjectForm()
	case km.ViewProject, "enter":
		if _, ok := m.currentProject(); ok {
			m.uiState.SetMode(state.DetailMode)
		}
		return m, nil
	case km.PrevLane, "left":
		m.navigateLane(-1)
		return m, nil
	case km.NextLane, "right":
		m.navigateLane(1)
		return m, nil
	case km.PrevCard, "up":
		m.navigateCard(-1)
		return m, nil
	case km.NextCard, "down":
		m.navigateCard(1)
		return m, nil
	case km.MoveCardLeft:
		m.moveCard(-1)
		return m, nil
	case km.MoveCardRight:
		m.moveCard(1)
		return m, nil
	}

	return m, nil
}

// navigateLane moves the lane selection by delta, clamped to the board
func (m Model) navigateLane(delta int) {
	target := m.uiState.SelectedLane() + delta
	if target < 0 || target >= len(m.laneStatuses()) {
		return
	}
	m.uiState.SetSelectedLane(target)
	m.uiState.SetSelectedCard(0)
	m.uiState.SetCardScrollOffset(target, 0)
}

// navigateCard moves the card selection by delta within the selected lane
func (m Model) navigateCard(delta int) {
	lane := m.currentLane()
	target := m.uiState.SelectedCard() + delta
	if target < 0 || target >= len(lane) {
		return
	}
	m.uiState.SetSelectedCard(target)
	m.ensureCardVisible(m.uiState.SelectedLane())
}

// moveCard moves the selected card to the adjacent lane in the given
// direction. Each lane has a fixed target status, so moving toward a lane
// the card is already in falls through to the store's no-op semantics.
// Selection follows the moved card.
func (m Model) moveCard(direction int) {
	project, ok := m.currentProject()
	if !ok {
		return
	}

	originLane := m.uiState.SelectedLane()
	targetLane := originLane + direction
	if targetLane < 0 || targetLane >= len(m.laneStatuses()) {
		return
	}
	targetStatus := m.laneStatuses()[targetLane]

	// The store notifies our subscription synchronously, so lanes are
	// repartitioned before this call returns
	m.store.Move(project.ID, targetStatus)

	// The origin lane shrank; pull its viewport back so it cannot show
	// blank space under a nonzero header count
	originSize := len(m.appState.Lane(m.laneStatuses()[originLane]))
	maxOffset := originSize - m.maxVisibleCards()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.uiState.CardScrollOffset(originLane) > maxOffset {
		m.uiState.SetCardScrollOffset(originLane, maxOffset)
	}

	// Follow the card into its new lane
	m.uiState.SetSelectedLane(targetLane)
	for i, p := range m.appState.Lane(targetStatus) {
		if p.ID == project.ID {
			m.uiState.SetSelectedCard(i)
			break
		}
	}
	m.ensureCardVisible(targetLane)
}
