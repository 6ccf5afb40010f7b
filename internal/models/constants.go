package models

// Validation limits for new projects.
// These are fixed product rules, not user configuration.
const (
	// MinDescriptionLength is the minimum length of a project description
	MinDescriptionLength = 5

	// MinPeople is the smallest accepted team size
	MinPeople = 0

	// MaxPeople is the largest accepted team size
	MaxPeople = 5

	// MaxTitleLength caps project titles on card rendering and input
	MaxTitleLength = 255
)
