package store

import "github.com/plankboard/plank/internal/models"

// ByStatus returns the projects holding the given status, preserving the
// snapshot's insertion order. Called with each board status it partitions a
// snapshot into disjoint lane slices.
func ByStatus(projects []models.Project, status models.Status) []models.Project {
	var out []models.Project
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
