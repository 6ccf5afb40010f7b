package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plankboard/plank/internal/config"
	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/store"
	"github.com/plankboard/plank/internal/tui/state"
)

// newTestModel builds a model around a fresh store and a sized terminal
func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st := store.New()
	m := InitialModel(st, config.Default())
	m.uiState.SetSize(120, 40)
	return m, st
}

// keyMsg builds a key press message for a printable key
func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// keyEsc builds an escape key press
func keyEsc() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// press runs one key through Update and returns the updated model
func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(key))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestInitialModelSubscribesToStore(t *testing.T) {
	m, st := newTestModel(t)

	st.Add("Build API", "Design and build the REST API", 3)

	// The subscription replaced the snapshot synchronously
	assert.Equal(t, 1, m.appState.TotalCount())
	assert.Len(t, m.appState.Lane(models.StatusActive), 1)
	assert.Empty(t, m.appState.Lane(models.StatusFinished))
}

func TestSubscriptionClampsSelectionToLane(t *testing.T) {
	m, st := newTestModel(t)
	st.Add("First", "first description", 1)
	st.Add("Second", "second description", 2)
	st.Add("Third", "third description", 3)

	m.uiState.SetSelectedCard(2)

	// The last active card leaves the lane; the selection must follow the
	// lane size down, not point past the end
	st.Move(st.Projects()[2].ID, models.StatusFinished)

	assert.Len(t, m.appState.Lane(models.StatusActive), 2)
	assert.Equal(t, 1, m.uiState.SelectedCard())
}

func TestNavigateBetweenLanes(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Zero(t, m.uiState.SelectedLane())

	m, _ = press(t, m, "l")
	assert.Equal(t, 1, m.uiState.SelectedLane())

	// Already at the rightmost lane
	m, _ = press(t, m, "l")
	assert.Equal(t, 1, m.uiState.SelectedLane())

	m, _ = press(t, m, "h")
	assert.Zero(t, m.uiState.SelectedLane())

	m, _ = press(t, m, "h")
	assert.Zero(t, m.uiState.SelectedLane())
}

func TestNavigateCards(t *testing.T) {
	m, st := newTestModel(t)
	st.Add("First", "first description", 1)
	st.Add("Second", "second description", 2)

	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.uiState.SelectedCard())

	m, _ = press(t, m, "j")
	assert.Equal(t, 1, m.uiState.SelectedCard(), "selection stops at the last card")

	m, _ = press(t, m, "k")
	assert.Zero(t, m.uiState.SelectedCard())
}

func TestMoveCardRightFinishesProject(t *testing.T) {
	m, st := newTestModel(t)
	p := st.Add("Build API", "Design and build the REST API", 3)

	m, _ = press(t, m, "L")

	// Status changed and lanes repartitioned
	assert.Equal(t, models.StatusFinished, st.Projects()[0].Status)
	assert.Empty(t, m.appState.Lane(models.StatusActive))
	require.Len(t, m.appState.Lane(models.StatusFinished), 1)
	assert.Equal(t, p.ID, m.appState.Lane(models.StatusFinished)[0].ID)

	// Selection followed the card
	assert.Equal(t, 1, m.uiState.SelectedLane())
	assert.Zero(t, m.uiState.SelectedCard())
}

func TestMoveCardLeftReactivatesProject(t *testing.T) {
	m, st := newTestModel(t)
	p := st.Add("Build API", "Design and build the REST API", 3)
	st.Move(p.ID, models.StatusFinished)

	m.uiState.SetSelectedLane(1)
	m.uiState.SetSelectedCard(0)

	m, _ = press(t, m, "H")

	assert.Equal(t, models.StatusActive, st.Projects()[0].Status)
	assert.Zero(t, m.uiState.SelectedLane())
}

func TestMoveCardClampsOriginLaneScroll(t *testing.T) {
	m, st := newTestModel(t)
	for i := 1; i <= 7; i++ {
		st.Add(fmt.Sprintf("Project %d", i), "Design and build the REST API", 1)
	}

	// Six cards fit; scroll to the last one
	for i := 0; i < 6; i++ {
		m, _ = press(t, m, "j")
	}
	require.Equal(t, 1, m.uiState.CardScrollOffset(0))

	m, _ = press(t, m, "L")

	// The remaining six cards all fit, so the origin lane scrolls back
	assert.Len(t, m.appState.Lane(models.StatusActive), 6)
	assert.Zero(t, m.uiState.CardScrollOffset(0))
}

func TestMoveCardPastBoardEdgeIsNoOp(t *testing.T) {
	m, st := newTestModel(t)
	st.Add("Build API", "Design and build the REST API", 3)

	notifications := 0
	st.Subscribe(func([]models.Project) { notifications++ })

	// Active lane is leftmost; there is no lane to the left
	m, _ = press(t, m, "H")

	assert.Zero(t, notifications)
	assert.Equal(t, models.StatusActive, st.Projects()[0].Status)
	assert.Zero(t, m.uiState.SelectedLane())
}

func TestMoveOnEmptyLaneIsNoOp(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(t, m, "L")

	assert.Zero(t, st.Count())
	assert.Zero(t, m.uiState.SelectedLane())
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpMode(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.uiState.Mode())

	view := m.View()
	assert.Contains(t, view, "Keyboard shortcuts")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
}

func TestDetailModeRequiresSelectedCard(t *testing.T) {
	m, st := newTestModel(t)

	// Empty board: view key does nothing
	m, _ = press(t, m, " ")
	assert.Equal(t, state.NormalMode, m.uiState.Mode())

	st.Add("Build API", "Design and build the REST API", 3)
	m, _ = press(t, m, " ")
	assert.Equal(t, state.DetailMode, m.uiState.Mode())

	view := m.View()
	assert.Contains(t, view, "Build API")
	assert.Contains(t, view, "3 persons assigned")
}

func TestViewShowsLoadingBeforeFirstResize(t *testing.T) {
	st := store.New()
	m := InitialModel(st, config.Default())

	assert.Equal(t, "Loading...", m.View())
}

func TestBoardViewShowsLanesAndCounts(t *testing.T) {
	m, st := newTestModel(t)
	p := st.Add("Build API", "Design and build the REST API", 3)
	st.Add("Write docs", "Document the public API", 1)
	st.Move(p.ID, models.StatusFinished)

	view := m.View()

	assert.Contains(t, view, "Active Projects (1)")
	assert.Contains(t, view, "Finished Projects (1)")
	assert.Contains(t, view, "Write docs")
	assert.Contains(t, view, "1 person assigned")
	assert.Contains(t, view, "2 projects")
}
