package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plankboard/plank/internal/models"
)

func TestAddAppendsActiveProject(t *testing.T) {
	s := New()

	p := s.Add("Build API", "Design and build the REST API", 3)

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, "Build API", p.Title)
	assert.Equal(t, 3, p.People)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	s := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := s.Add("Project", "Some description", 1)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Equal(t, 100, s.Count())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := New()

	first := s.Add("First", "first project", 1)
	second := s.Add("Second", "second project", 2)
	third := s.Add("Third", "third project", 3)

	projects := s.Projects()
	require.Len(t, projects, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{projects[0].ID, projects[1].ID, projects[2].ID})
}

func TestAddNotifiesListenersInRegistrationOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func([]models.Project) { order = append(order, "first") })
	s.Subscribe(func([]models.Project) { order = append(order, "second") })

	s.Add("Project", "description here", 2)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNotificationDeliversFullSequence(t *testing.T) {
	s := New()

	var lastLen int
	s.Subscribe(func(ps []models.Project) { lastLen = len(ps) })

	for i := 1; i <= 5; i++ {
		s.Add("Project", "description here", 1)
		assert.Equal(t, i, lastLen, "every notification carries the whole sequence")
	}
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	s := New()
	s.Add("Project", "description here", 1)

	var delivered []models.Project
	s.Subscribe(func(ps []models.Project) { delivered = ps })
	s.Add("Other", "another description", 2)

	// Tampering with a delivered snapshot must not leak into the store
	delivered[0].Title = "tampered"
	delivered[0].Status = models.StatusFinished

	assert.Equal(t, "Project", s.Projects()[0].Title)
	assert.Equal(t, models.StatusActive, s.Projects()[0].Status)
}

func TestMoveChangesStatusAndNotifies(t *testing.T) {
	s := New()
	p := s.Add("Project", "description here", 1)

	notifications := 0
	s.Subscribe(func([]models.Project) { notifications++ })

	s.Move(p.ID, models.StatusFinished)

	assert.Equal(t, 1, notifications)
	assert.Equal(t, models.StatusFinished, s.Projects()[0].Status)
}

func TestMoveIsIdempotent(t *testing.T) {
	s := New()
	p := s.Add("Project", "description here", 1)

	notifications := 0
	s.Subscribe(func([]models.Project) { notifications++ })

	s.Move(p.ID, models.StatusFinished)
	s.Move(p.ID, models.StatusFinished)

	assert.Equal(t, 1, notifications, "second identical move must not notify")
	assert.Equal(t, models.StatusFinished, s.Projects()[0].Status)
}

func TestMoveToSameStatusIsNoOp(t *testing.T) {
	s := New()
	p := s.Add("Project", "description here", 1)

	notifications := 0
	s.Subscribe(func([]models.Project) { notifications++ })

	s.Move(p.ID, models.StatusActive)

	assert.Zero(t, notifications)
	assert.Equal(t, models.StatusActive, s.Projects()[0].Status)
}

func TestMoveNonexistentIDIsNoOp(t *testing.T) {
	s := New()
	s.Add("Project", "description here", 1)
	before := s.Projects()

	notifications := 0
	s.Subscribe(func([]models.Project) { notifications++ })

	s.Move("no-such-id", models.StatusFinished)

	assert.Zero(t, notifications)
	assert.Equal(t, before, s.Projects())
}

func TestByStatusPartitionsSnapshot(t *testing.T) {
	s := New()
	a := s.Add("A", "first description", 1)
	b := s.Add("B", "second description", 2)
	c := s.Add("C", "third description", 3)
	s.Move(b.ID, models.StatusFinished)

	snapshot := s.Projects()
	active := ByStatus(snapshot, models.StatusActive)
	finished := ByStatus(snapshot, models.StatusFinished)

	// Disjoint, exhaustive, order-preserving
	assert.Len(t, active, 2)
	assert.Len(t, finished, 1)
	assert.Equal(t, len(snapshot), len(active)+len(finished))
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)
	assert.Equal(t, b.ID, finished[0].ID)
}

func TestByStatusEmptySnapshot(t *testing.T) {
	assert.Empty(t, ByStatus(nil, models.StatusActive))
	assert.Empty(t, ByStatus([]models.Project{}, models.StatusFinished))
}
