package state

import (
	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/store"
)

// AppState manages the board's domain data: the latest store snapshot and
// the derived per-lane slices. Lane slices are replaced wholesale on every
// store notification, never patched incrementally.
type AppState struct {
	// projects is the latest full snapshot delivered by the store
	projects []models.Project

	// lanes maps each status to its filtered, order-preserving subset
	lanes map[models.Status][]models.Project
}

// NewAppState creates an AppState from an initial snapshot
func NewAppState(projects []models.Project) *AppState {
	s := &AppState{}
	s.SetProjects(projects)
	return s
}

// SetProjects replaces the snapshot and recomputes every lane from scratch.
// This is the store subscription entry point.
func (s *AppState) SetProjects(projects []models.Project) {
	s.projects = projects

	lanes := make(map[models.Status][]models.Project, len(models.Statuses()))
	for _, status := range models.Statuses() {
		lanes[status] = store.ByStatus(projects, status)
	}
	s.lanes = lanes
}

// Projects returns the latest snapshot
func (s *AppState) Projects() []models.Project {
	return s.projects
}

// Lane returns the projects in the lane for the given status, in store
// insertion order
func (s *AppState) Lane(status models.Status) []models.Project {
	return s.lanes[status]
}

// TotalCount returns the number of projects across all lanes
func (s *AppState) TotalCount() int {
	return len(s.projects)
}
