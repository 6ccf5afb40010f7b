package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plankboard/plank/internal/config"
	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/store"
	"github.com/plankboard/plank/internal/tui/components"
	"github.com/plankboard/plank/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	store     *store.Store
	config    *config.Config
	appState  *state.AppState
	uiState   *state.UIState
	formState *state.FormState
}

// InitialModel creates the TUI model around the injected store.
// It registers the board's store subscription: every mutation replaces the
// AppState snapshot wholesale, and the per-lane slices are recomputed from
// scratch.
func InitialModel(st *store.Store, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	appState := state.NewAppState(st.Projects())
	uiState := state.NewUIState()
	formState := state.NewFormState()

	st.Subscribe(func(projects []models.Project) {
		appState.SetProjects(projects)

		// Cards move between lanes underneath the selection, so keep it
		// inside the selected lane after every snapshot replacement
		status := models.Statuses()[uiState.SelectedLane()]
		uiState.ClampCard(len(appState.Lane(status)))
	})

	return Model{
		store:     st,
		config:    cfg,
		appState:  appState,
		uiState:   uiState,
		formState: formState,
	}
}

// Init initializes the Bubble Tea application.
// Required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// laneStatuses returns the board statuses in lane order
func (m Model) laneStatuses() []models.Status {
	return models.Statuses()
}

// currentLaneStatus returns the status of the selected lane
func (m Model) currentLaneStatus() models.Status {
	return m.laneStatuses()[m.uiState.SelectedLane()]
}

// currentLane returns the projects in the selected lane
func (m Model) currentLane() []models.Project {
	return m.appState.Lane(m.currentLaneStatus())
}

// currentProject returns the selected project.
// ok is false if the selected lane is empty.
func (m Model) currentProject() (models.Project, bool) {
	lane := m.currentLane()
	if len(lane) == 0 || m.uiState.SelectedCard() >= len(lane) {
		return models.Project{}, false
	}
	return lane[m.uiState.SelectedCard()], true
}

// maxVisibleCards returns how many cards fit in a lane at the current
// terminal height. Must match the capacity math in components.RenderLane.
func (m Model) maxVisibleCards() int {
	n := (m.uiState.ContentHeight() - 5) / components.CardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// ensureCardVisible scrolls the given lane so the selected card is on screen
func (m Model) ensureCardVisible(lane int) {
	offset := m.uiState.CardScrollOffset(lane)
	selected := m.uiState.SelectedCard()
	visible := m.maxVisibleCards()

	if selected < offset {
		m.uiState.SetCardScrollOffset(lane, selected)
	} else if selected >= offset+visible {
		m.uiState.SetCardScrollOffset(lane, selected-visible+1)
	}
}
