// Package store holds the authoritative in-memory project list and the
// change-notification mechanism the board views subscribe to.
package store

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plankboard/plank/internal/models"
)

// Listener receives a snapshot of the full project sequence after every
// mutation. Snapshots are value copies; mutating one has no effect on the
// store.
type Listener func(projects []models.Project)

// Store owns the ordered project sequence for the session. Construct exactly
// one with New and pass it to every view that needs it.
//
// All methods must be called from the Bubble Tea update loop. The program is
// single-threaded by construction, so the store takes no locks; mutation and
// notification run to completion before the triggering Update returns.
type Store struct {
	projects  []models.Project
	listeners []Listener
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// Add creates a new active project, appends it to the end of the sequence
// and notifies every listener. The id is freshly generated and unique for
// the session. Add performs no validation; callers validate input first.
func (s *Store) Add(title, description string, people int) models.Project {
	project := models.Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      models.StatusActive,
		CreatedAt:   time.Now(),
	}
	s.projects = append(s.projects, project)

	slog.Debug("project added", "id", project.ID, "title", project.Title, "people", project.People)

	s.notify()
	return project
}

// Move sets the status of the project with the given id. If no project has
// that id, or the project already holds the target status, Move is a silent
// no-op and no notification fires. Listeners are notified exactly once per
// effective move, which makes repeated identical calls idempotent.
func (s *Store) Move(id string, status models.Status) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == status {
			return
		}
		s.projects[i].Status = status

		slog.Debug("project moved", "id", id, "status", status.String())

		s.notify()
		return
	}
}

// Subscribe registers a listener. Listeners are invoked synchronously, in
// registration order, after every effective mutation. There is no
// unsubscribe; views live as long as the store does.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Projects returns a snapshot of the full sequence in insertion order
func (s *Store) Projects() []models.Project {
	return s.snapshot()
}

// Count returns the total number of projects ever created this session
func (s *Store) Count() int {
	return len(s.projects)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.snapshot())
	}
}

// snapshot copies the sequence so listeners can never reach the canonical
// slice. Each listener gets its own copy.
func (s *Store) snapshot() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}
