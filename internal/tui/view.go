package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/tui/components"
	"github.com/plankboard/plank/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.ProjectFormMode:
		return m.viewProjectForm()
	case state.InvalidInputMode:
		return m.viewInvalidInput()
	case state.DetailMode:
		return m.viewDetail()
	case state.HelpMode:
		return m.viewHelp()
	default:
		return m.viewBoard()
	}
}

// viewBoard renders the two-lane board with header and status bar
func (m Model) viewBoard() string {
	header := components.HeaderStyle.Render("plank · project board")

	laneHeight := m.uiState.ContentHeight()

	var lanes []string
	for i, status := range m.laneStatuses() {
		projects := m.appState.Lane(status)
		selected := i == m.uiState.SelectedLane()

		selectedCardIdx := -1
		if selected {
			selectedCardIdx = m.uiState.SelectedCard()
		}

		lanes = append(lanes, components.RenderLane(
			status,
			projects,
			selected,
			selectedCardIdx,
			laneHeight,
			m.uiState.CardScrollOffset(i),
		))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, lanes...)

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:         m.uiState.Width(),
		TotalCount:    m.appState.TotalCount(),
		ActiveCount:   len(m.appState.Lane(models.StatusActive)),
		FinishedCount: len(m.appState.Lane(models.StatusFinished)),
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, board, footer)
}

// viewProjectForm shows the huh form in a centered dialog
func (m Model) viewProjectForm() string {
	form := m.formState.ProjectForm()
	if form == nil {
		return m.viewBoard()
	}

	formBox := components.FormBoxStyle.
		Width(m.uiState.Width() / 2).
		Render("New Project\n\n" + form.View())

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		formBox,
	)
}

// viewInvalidInput shows the blocking validation warning.
// The message is deliberately unstructured; the form keeps the rejected
// input for correction.
func (m Model) viewInvalidInput() string {
	warning := components.WarningBoxStyle.Render(
		"Invalid input!\n\npress any key to correct",
	)

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		warning,
	)
}

// viewDetail shows the read-only detail overlay for the selected project
func (m Model) viewDetail() string {
	project, ok := m.currentProject()
	if !ok {
		return m.viewBoard()
	}

	width := m.uiState.Width() / 2
	if width < 40 {
		width = 40
	}

	title := components.TitleStyle.Render(project.Title)
	meta := fmt.Sprintf("%s · %s", components.PeopleLabel(project.People), project.Status.LaneTitle())
	description := components.RenderDescription(components.DescriptionProps{
		Description: project.Description,
		Width:       width - 6,
	})

	box := components.DetailBoxStyle.
		Width(width).
		Render(title + "\n" + meta + "\n\n" + description)

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// viewHelp shows the keymap cheat sheet
func (m Model) viewHelp() string {
	box := components.HelpBoxStyle.Render(m.helpContent())

	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
