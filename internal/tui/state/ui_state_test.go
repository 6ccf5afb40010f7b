package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUIStateDefaults(t *testing.T) {
	s := NewUIState()

	assert.Equal(t, NormalMode, s.Mode())
	assert.Zero(t, s.SelectedLane())
	assert.Zero(t, s.SelectedCard())
}

func TestClampCard(t *testing.T) {
	s := NewUIState()

	s.SetSelectedCard(5)
	s.ClampCard(3)
	assert.Equal(t, 2, s.SelectedCard())

	s.ClampCard(0)
	assert.Zero(t, s.SelectedCard())

	s.SetSelectedCard(-1)
	s.ClampCard(3)
	assert.Zero(t, s.SelectedCard())
}

func TestContentHeightFloor(t *testing.T) {
	s := NewUIState()

	s.SetSize(80, 3)
	assert.Equal(t, 6, s.ContentHeight(), "tiny terminals still get a usable lane height")

	s.SetSize(80, 40)
	assert.Equal(t, 36, s.ContentHeight())
}

func TestCardScrollOffsetNeverNegative(t *testing.T) {
	s := NewUIState()

	s.SetCardScrollOffset(0, -2)
	assert.Zero(t, s.CardScrollOffset(0))

	s.SetCardScrollOffset(1, 4)
	assert.Equal(t, 4, s.CardScrollOffset(1))
}
