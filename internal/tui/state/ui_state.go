package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is
// displayed.
type Mode int

const (
	NormalMode       Mode = iota // Default navigation mode
	ProjectFormMode              // Creating a new project with huh
	InvalidInputMode             // Blocking warning after failed validation
	DetailMode                   // Read-only project detail overlay
	HelpMode                     // Displaying help screen
)

// UIState manages the user interface state: lane/card selection, terminal
// dimensions, per-lane scrolling and the current interaction mode.
type UIState struct {
	// selectedLane is the index of the currently selected lane
	selectedLane int

	// selectedCard is the index of the selected card within the selected lane
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// cardScrollOffsets tracks the vertical scroll offset per lane index
	cardScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		cardScrollOffsets: make(map[int]int),
	}
}

// SelectedLane returns the index of the currently selected lane
func (s *UIState) SelectedLane() int {
	return s.selectedLane
}

// SetSelectedLane updates the selected lane index
func (s *UIState) SetSelectedLane(index int) {
	s.selectedLane = index
}

// SelectedCard returns the index of the currently selected card
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// ClampCard keeps the card selection inside the given lane size.
// Called after every snapshot replacement, since cards move between lanes
// underneath the selection.
func (s *UIState) ClampCard(laneSize int) {
	if laneSize == 0 {
		s.selectedCard = 0
		return
	}
	if s.selectedCard >= laneSize {
		s.selectedCard = laneSize - 1
	}
	if s.selectedCard < 0 {
		s.selectedCard = 0
	}
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions from a resize event
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight returns the vertical space available to lanes, leaving room
// for the header and the status bar
func (s *UIState) ContentHeight() int {
	h := s.height - 4
	if h < 6 {
		h = 6
	}
	return h
}

// CardScrollOffset returns the scroll offset for the given lane index
func (s *UIState) CardScrollOffset(lane int) int {
	return s.cardScrollOffsets[lane]
}

// SetCardScrollOffset updates the scroll offset for the given lane index
func (s *UIState) SetCardScrollOffset(lane, offset int) {
	if offset < 0 {
		offset = 0
	}
	s.cardScrollOffsets[lane] = offset
}
