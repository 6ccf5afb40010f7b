package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plankboard/plank/internal/models"
)

func project(id, title string, status models.Status) models.Project {
	return models.Project{ID: id, Title: title, Description: "description", People: 1, Status: status}
}

func TestAppStateLanesPartitionSnapshot(t *testing.T) {
	s := NewAppState([]models.Project{
		project("1", "A", models.StatusActive),
		project("2", "B", models.StatusFinished),
		project("3", "C", models.StatusActive),
	})

	active := s.Lane(models.StatusActive)
	finished := s.Lane(models.StatusFinished)

	assert.Len(t, active, 2)
	assert.Len(t, finished, 1)
	assert.Equal(t, s.TotalCount(), len(active)+len(finished))

	// Insertion order survives filtering
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)
}

func TestAppStateSetProjectsReplacesLanesWholesale(t *testing.T) {
	s := NewAppState([]models.Project{
		project("1", "A", models.StatusActive),
	})
	assert.Len(t, s.Lane(models.StatusActive), 1)

	s.SetProjects([]models.Project{
		project("1", "A", models.StatusFinished),
		project("2", "B", models.StatusActive),
	})

	assert.Len(t, s.Lane(models.StatusActive), 1)
	assert.Equal(t, "2", s.Lane(models.StatusActive)[0].ID)
	assert.Len(t, s.Lane(models.StatusFinished), 1)
	assert.Equal(t, "1", s.Lane(models.StatusFinished)[0].ID)
}

func TestAppStateEmptySnapshot(t *testing.T) {
	s := NewAppState(nil)

	assert.Zero(t, s.TotalCount())
	assert.Empty(t, s.Lane(models.StatusActive))
	assert.Empty(t, s.Lane(models.StatusFinished))
}
